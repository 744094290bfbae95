package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrUnavailable     = errors.New("remote API unavailable")
	ErrGraphQL         = errors.New("graphql error")
	ErrMissingField    = errors.New("response is missing field")
	ErrDecodingData    = errors.New("error decoding response data")
	ErrDeleteRejected  = errors.New("delete rejected by server")
	ErrInvalidAddress  = errors.New("invalid adapter http address")
	ErrUnsupportedSort = errors.New("entity does not support sorting")
)
