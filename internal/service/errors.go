package service

import "errors"

var (
	ErrNoToken          = errors.New("no api token configured")
	ErrEmptyToken       = errors.New("api token is empty")
	ErrSecretKeyNotSet  = errors.New("app secret key is not set, cannot seal the api token")
	ErrTokenUnreadable  = errors.New("stored api token cannot be opened with the current secret key")
	ErrTokenSaltMissing = errors.New("stored api token has no salt")

	ErrTokenRejected        = errors.New("api token was rejected")
	ErrAccessDenied         = errors.New("access to the budget denied")
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrRateLimited          = errors.New("api rate limit reached, try again later")
	ErrBudgetAPIUnavailable = errors.New("budgeting api is unavailable")
	ErrInvalidRequest       = errors.New("invalid request to the budgeting api")
	ErrInvalidAPIData       = errors.New("budgeting api returned invalid data")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
