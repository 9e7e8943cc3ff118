package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultResponseBodyLimit int64 = 10 << 20

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPTransport posts {query, variables} as JSON to a single endpoint.
type HTTPTransport struct {
	Endpoint         string
	Client           HTTPDoer
	Timeout          time.Duration
	MaxResponseBytes int64
}

var _ Transport = (*HTTPTransport)(nil)

func NewHTTPTransport(endpoint string, client HTTPDoer) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{
		Endpoint:         strings.TrimSpace(endpoint),
		Client:           client,
		MaxResponseBytes: defaultResponseBodyLimit,
	}
}

type requestPayload struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func (t *HTTPTransport) Do(ctx context.Context, req Request) (Response, error) {
	vars := req.Variables
	if vars == nil {
		vars = map[string]any{}
	}
	body, err := json.Marshal(requestPayload{Query: req.Query, Variables: vars})
	if err != nil {
		return Response{}, fmt.Errorf("marshal graphql payload: %w", err)
	}

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	if req.RequestID != "" {
		httpReq.Header.Set("X-Request-ID", req.RequestID)
	}

	httpRes, err := t.Client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("execute http request: %w", err)
	}
	defer httpRes.Body.Close()

	limit := t.MaxResponseBytes
	if limit <= 0 {
		limit = defaultResponseBodyLimit
	}
	raw, err := io.ReadAll(io.LimitReader(httpRes.Body, limit+1))
	if err != nil {
		return Response{}, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(raw)) > limit {
		return Response{}, fmt.Errorf("response body exceeds limit of %d bytes", limit)
	}

	return Response{StatusCode: httpRes.StatusCode, Body: raw}, nil
}
