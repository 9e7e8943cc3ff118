package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// Kind is the classification of a query result.
type Kind int

const (
	KindSuccess Kind = iota
	KindBusinessErrors
	KindUnauthorized
	KindRateLimited
	KindTransportFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindBusinessErrors:
		return "business_errors"
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	case KindTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// authorizationFailureCode is the extensions.code value that marks an error
// as an authorization failure inside a 200 envelope.
const authorizationFailureCode = 401

// Outcome is the classified result of one query.
type Outcome struct {
	Kind Kind
	// Data is the raw data payload on success; nil or "null" when absent.
	Data json.RawMessage
	// Messages holds business error messages in response order. It is also
	// set for KindUnauthorized when the marker came from the error list.
	Messages []string
	// CausedSessionLoss is set when the session held a token at the start
	// of the call and none after the outcome was handled.
	CausedSessionLoss bool
	// Err is nil on success. It wraps the matching sentinel and a
	// *goerrors.Error envelope.
	Err error
}

type graphQLError struct {
	Message    string `json:"message"`
	Extensions *struct {
		Code json.RawMessage `json:"code"`
	} `json:"extensions,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors *[]graphQLError `json:"errors"`
}

// Classify maps a transport result to an Outcome without side effects.
//
// Order: transport error, status 401, status 429, undecodable body, error list
// (with or without the authorization marker), other non-2xx status, success.
// An error list that is present but empty still counts as a business failure
// and reports the generic unknown-error message; only a missing or null list
// can succeed.
func Classify(resp Response, transportErr error) Outcome {
	if transportErr != nil {
		return transportFailure(transportErr, nil)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return Outcome{
			Kind: KindUnauthorized,
			Err:  envelope(ErrUnauthorized, goerrors.CategoryAuth, http.StatusUnauthorized, TextCodeUnauthorized, "unauthorized", map[string]any{"source": "status"}),
		}
	case http.StatusTooManyRequests:
		return Outcome{
			Kind: KindRateLimited,
			Err:  envelope(ErrRateLimited, goerrors.CategoryRateLimit, http.StatusTooManyRequests, TextCodeRateLimited, "rate limited", nil),
		}
	}

	var body graphQLResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return transportFailure(fmt.Errorf("decode response body: %w", err), map[string]any{"status_code": resp.StatusCode})
	}

	if body.Errors != nil {
		messages := make([]string, 0, len(*body.Errors))
		marked := false
		for _, e := range *body.Errors {
			messages = append(messages, e.Message)
			if e.Extensions != nil && isAuthorizationCode(e.Extensions.Code) {
				marked = true
			}
		}
		meta := map[string]any{"messages": messages, "status_code": resp.StatusCode}
		if marked {
			meta["source"] = "errors"
			return Outcome{
				Kind:     KindUnauthorized,
				Messages: messages,
				Err:      envelope(ErrUnauthorized, goerrors.CategoryAuth, http.StatusUnauthorized, TextCodeUnauthorized, "unauthorized", meta),
			}
		}
		out := Outcome{Kind: KindBusinessErrors, Messages: messages}
		out.Err = envelope(ErrBusiness, goerrors.CategoryValidation, http.StatusBadRequest, TextCodeBusinessErrors, out.FirstMessage(), meta)
		return out
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return transportFailure(fmt.Errorf("unexpected status %d", resp.StatusCode), map[string]any{"status_code": resp.StatusCode})
	}

	return Outcome{Kind: KindSuccess, Data: body.Data}
}

// HasData reports whether a successful outcome carries a non-null payload.
func (o Outcome) HasData() bool {
	trimmed := bytes.TrimSpace(o.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// FirstMessage returns the first business error message, or the generic one
// when the server sent an empty message.
func (o Outcome) FirstMessage() string {
	if len(o.Messages) == 0 || strings.TrimSpace(o.Messages[0]) == "" {
		return MessageUnknownError
	}
	return o.Messages[0]
}

func transportFailure(cause error, meta map[string]any) Outcome {
	rich := goerrors.Wrap(cause, goerrors.CategoryExternal, "transport failure").
		WithCode(http.StatusBadGateway).
		WithTextCode(TextCodeTransportFailure)
	if len(meta) > 0 {
		rich.WithMetadata(meta)
	}
	return Outcome{Kind: KindTransportFailure, Err: fmt.Errorf("%w: %w", ErrUnavailable, rich)}
}

func envelope(sentinel error, category goerrors.Category, code int, textCode, message string, meta map[string]any) error {
	rich := goerrors.New(message, category).
		WithCode(code).
		WithTextCode(textCode)
	if len(meta) > 0 {
		rich.WithMetadata(meta)
	}
	return fmt.Errorf("%w: %w", sentinel, rich)
}

// isAuthorizationCode accepts 401 as a JSON number or a numeric string.
func isAuthorizationCode(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v, err := strconv.Atoi(n.String())
		return err == nil && v == authorizationFailureCode
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		return err == nil && v == authorizationFailureCode
	}
	return false
}
