// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidQueryParameter is reported for query parameters that cannot be
// parsed, e.g. full=maybe on POST /api/sync.
var ErrInvalidQueryParameter = errors.New("invalid query parameter")
