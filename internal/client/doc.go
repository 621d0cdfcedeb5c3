// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires storage, the budgeting API adapter and the services
// into one application and exposes what the command line needs: the
// terminal UI, the browser UI, one-shot syncs, cache reads and token
// management.
package client
