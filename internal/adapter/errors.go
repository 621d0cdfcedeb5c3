package adapter

import "errors"

// Sentinel errors returned by [BudgetAdapter] implementations. HTTP status
// codes are mapped to them by mapHTTPError; callers match with [errors.Is].
var (
	ErrTokenNotSet         = errors.New("api token is not set")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrRateLimited         = errors.New("too many requests")
	ErrInternalServerError = errors.New("api internal server error")
)
