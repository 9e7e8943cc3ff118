package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/dutch/internal/client/models"
	"github.com/dmitrijs2005/dutch/internal/logging"
	"github.com/dmitrijs2005/dutch/internal/notify"
	"github.com/google/uuid"
)

// SessionState is the part of the session the query client depends on.
type SessionState interface {
	Current() models.Session
	Logout(ctx context.Context)
}

// Navigator moves the user to the login screen.
type Navigator interface {
	RedirectToLogin()
	CurrentPathIsLogin() bool
}

// Executor runs one query and reports its classified outcome. decode is
// called with the data payload on success; a decode error turns the outcome
// into a transport failure.
type Executor interface {
	Do(ctx context.Context, query string, vars map[string]any, decode func(json.RawMessage) error) Outcome
}

// QueryClient is the single entry point for authenticated GraphQL traffic.
// Every failure is surfaced to the user through the notifier, so callers only
// ever see "data or nothing".
type QueryClient struct {
	transport Transport
	session   SessionState
	notifier  notify.Notifier
	nav       Navigator
	log       logging.Logger
}

// NewQueryClient wires a QueryClient. nav may be nil in headless contexts.
func NewQueryClient(t Transport, s SessionState, n notify.Notifier, nav Navigator, log logging.Logger) *QueryClient {
	if log == nil {
		log = logging.NewNop()
	}
	return &QueryClient{transport: t, session: s, notifier: n, nav: nav, log: log}
}

// Do sends the query with the current token, classifies the result and
// applies the user-facing side effects of the outcome.
func (c *QueryClient) Do(ctx context.Context, query string, vars map[string]any, decode func(json.RawMessage) error) Outcome {
	tokenAtStart := c.session.Current().Token
	requestID := uuid.NewString()
	log := c.log.With("request_id", requestID)

	resp, err := c.transport.Do(ctx, Request{
		Query:     query,
		Variables: vars,
		Token:     tokenAtStart,
		RequestID: requestID,
	})
	out := Classify(resp, err)

	if out.Kind == KindSuccess && decode != nil && out.HasData() {
		if err := decode(out.Data); err != nil {
			out = transportFailure(fmt.Errorf("decode data: %w", err), nil)
		}
	}

	switch out.Kind {
	case KindSuccess:
		log.Debug(ctx, "query succeeded")
	case KindRateLimited:
		log.Warn(ctx, "query rate limited", "error", out.Err)
		c.notify(MessageTooManyRequests, notify.SeverityError)
	case KindUnauthorized:
		log.Warn(ctx, "query unauthorized", "error", out.Err)
		c.handleUnauthorized(ctx)
		if len(out.Messages) > 0 {
			c.reportBusiness(out, tokenAtStart)
		}
	case KindBusinessErrors:
		log.Warn(ctx, "query rejected", "error", out.Err)
		c.reportBusiness(out, tokenAtStart)
	case KindTransportFailure:
		log.Error(ctx, "query failed", "error", out.Err)
		if !c.sessionLost(tokenAtStart) {
			c.notify(MessageConnectionError, notify.SeverityError)
		}
	}

	out.CausedSessionLoss = out.Kind != KindSuccess && c.sessionLost(tokenAtStart)
	return out
}

// handleUnauthorized ends a held session and sends the user to the login
// screen. Repeated calls neither log out twice nor re-notify.
func (c *QueryClient) handleUnauthorized(ctx context.Context) {
	if c.session.Current().Token != "" {
		c.session.Logout(ctx)
		c.notify(MessageSessionExpired, notify.SeverityError)
	}
	if c.nav != nil && !c.nav.CurrentPathIsLogin() {
		c.nav.RedirectToLogin()
	}
}

// reportBusiness shows the first business message unless the session was
// lost while the request was in flight.
func (c *QueryClient) reportBusiness(out Outcome, tokenAtStart string) {
	if c.sessionLost(tokenAtStart) {
		return
	}
	c.notify(out.FirstMessage(), notify.SeverityError)
}

func (c *QueryClient) sessionLost(tokenAtStart string) bool {
	return tokenAtStart != "" && c.session.Current().Token == ""
}

func (c *QueryClient) notify(message string, severity notify.Severity) {
	if c.notifier != nil {
		c.notifier.Notify(message, severity)
	}
}

// Execute runs query and decodes the data payload into T. It returns nil on
// any failure or when the server sent no data; the user has already been
// told about the failure.
func Execute[T any](ctx context.Context, e Executor, query string, vars map[string]any) *T {
	var result *T
	out := e.Do(ctx, query, vars, func(data json.RawMessage) error {
		v := new(T)
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		result = v
		return nil
	})
	if out.Kind != KindSuccess {
		return nil
	}
	return result
}
