package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrBusiness     = errors.New("request rejected")
)

// Text codes attached to the go-errors envelope of each classified failure.
const (
	TextCodeUnauthorized     = "UNAUTHORIZED"
	TextCodeRateLimited      = "RATE_LIMITED"
	TextCodeBusinessErrors   = "BUSINESS_ERRORS"
	TextCodeTransportFailure = "TRANSPORT_FAILURE"
)

// User-facing messages issued by the query client.
const (
	MessageSessionExpired  = "Session expired. Please log in again."
	MessageTooManyRequests = "Too many requests. Please slow down."
	MessageConnectionError = "Connection error. Please try again later."
	MessageUnknownError    = "An unknown error occurred"
)
