package adapter

import "errors"

// Status-code sentinels produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("request validation failed")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// Client-side failures detected before a request is sent.
var (
	// ErrNoToken is returned by authenticated calls made before Login.
	ErrNoToken = errors.New("no bearer token set")

	// ErrTokenExpired is returned when the stored token's exp claim has
	// passed; the request is not sent.
	ErrTokenExpired = errors.New("bearer token expired")

	// ErrEmptyToken is returned when the server answered 2xx without a token.
	ErrEmptyToken = errors.New("server returned an empty access token")

	// ErrUnreachable wraps every failure to get an HTTP response at all
	// (connection refused, DNS, timeout).
	ErrUnreachable = errors.New("server unreachable")
)
