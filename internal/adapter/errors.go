package adapter

import "errors"

var (
	ErrEndpointNotFound    = errors.New("api endpoint not found")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	// ErrRequestFailed is returned when the server rejects the whole request
	// with a problem-details body (unknownCapability, notJSON, limit, ...).
	ErrRequestFailed    = errors.New("request rejected by server")
	ErrDecodingResponse = errors.New("cannot decode api response")
)
