// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
)

// CheckHTTPMethod is the router's MethodNotAllowed handler. A known path
// requested with an unregistered method gets 404 instead of chi's 405, so
// callers cannot probe which routes exist. Only exact patterns are matched.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			logger.FromRequest(r).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("method not registered for route")
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
