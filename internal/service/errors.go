package service

import "errors"

var (
	ErrClosed                = errors.New("synchronizer is closed")
	ErrInvalidPage           = errors.New("page cannot be negative")
	ErrUnknownStatus         = errors.New("unknown status filter")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrMissingDependency     = errors.New("missing service dependency")

	ErrOffline        = errors.New("remote API is unreachable")
	ErrSessionExpired = errors.New("API token is expired or invalid")
	ErrAccessDenied   = errors.New("access denied")
	ErrRecordNotFound = errors.New("record not found on server")
	ErrRejected       = errors.New("rejected by server")
	ErrServerFailure  = errors.New("server failure")
)
