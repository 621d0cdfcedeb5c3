package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ynab-payee-manager/internal/service"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrNoToken:          http.StatusPreconditionFailed,
	service.ErrSecretKeyNotSet:  http.StatusPreconditionFailed,
	service.ErrTokenUnreadable:  http.StatusPreconditionFailed,
	service.ErrTokenSaltMissing: http.StatusPreconditionFailed,

	service.ErrTokenRejected:        http.StatusBadGateway,
	service.ErrAccessDenied:         http.StatusBadGateway,
	service.ErrInvalidRequest:       http.StatusBadGateway,
	service.ErrBudgetAPIUnavailable: http.StatusBadGateway,
	service.ErrInvalidAPIData:       http.StatusBadGateway,
	service.ErrBudgetNotFound:       http.StatusNotFound,
	service.ErrRateLimited:          http.StatusTooManyRequests,

	store.ErrServerKnowledgeNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
