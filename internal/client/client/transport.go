package client

import (
	"context"
)

// Request is a single GraphQL operation.
type Request struct {
	Query     string
	Variables map[string]any
	// Token is sent as a bearer credential when non-empty.
	Token string
	// RequestID is sent as X-Request-ID for log correlation.
	RequestID string
}

// Response is the raw transport result. Body is not interpreted by transports.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport sends a Request. A returned error means no response was obtained.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req Request) (Response, error)

func (f TransportFunc) Do(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

// pingQuery is the cheapest valid GraphQL operation.
const pingQuery = `query Ping { __typename }`

// Ping reports whether the endpoint answers at all. It bypasses the query
// client so that a probe never notifies or touches the session.
func Ping(ctx context.Context, t Transport) error {
	resp, err := t.Do(ctx, Request{Query: pingQuery, Variables: map[string]any{}})
	if err != nil {
		return ErrUnavailable
	}
	if resp.StatusCode >= 500 {
		return ErrUnavailable
	}
	return nil
}
