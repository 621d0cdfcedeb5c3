package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// pages
	router.Get("/", h.payeesPage)
	router.Get("/transactions", h.transactionsPage)

	// json api
	router.Get("/api/payees", h.listPayees)
	router.Get("/api/transactions", h.listTransactions)
	router.Post("/api/sync", h.sync)
	router.Get("/api/version", h.getAppVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
