// Package mcp talks to the MCP-style data services the demo answers from.
// Both services expose a single tool-call endpoint that wraps its payload in
// a two-layer envelope: an outer content list whose first entry carries a
// JSON-encoded string.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const toolCallPath = "/mcp/tools/call"

var (
	// ErrUnreachable covers network failures and timeouts.
	ErrUnreachable = errors.New("data service unreachable")
	// ErrProtocol covers non-200 responses and malformed envelopes.
	ErrProtocol = errors.New("data service protocol error")
	// ErrUpstream is an explicit error field inside a valid envelope.
	ErrUpstream = errors.New("data service reported error")
	// ErrNoData is a valid envelope with nothing usable in it.
	ErrNoData = errors.New("data service returned no data")
)

// Client posts tool calls to one MCP endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given base URL with a fixed per-call
// timeout. A timeout resolves the same way any other fetch failure does.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("MCP endpoint cannot be empty")
	}

	dialer := &net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         dialer.DialContext,
				ForceAttemptHTTP2:   true,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}, nil
}

type toolRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type envelope struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Error string `json:"error"`
}

// CallTool invokes one named tool and returns the inner JSON payload,
// still encoded, for the caller to decode into its own shape.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(toolRequest{Name: name, Arguments: args})
	if err != nil {
		return nil, fmt.Errorf("marshal tool request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+toolCallPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build tool request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrProtocol, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", ErrProtocol, err)
	}

	if env.Error != "" {
		slog.Warn("tool call returned error", "tool", name, "error", env.Error)
		return nil, fmt.Errorf("%w: %s", ErrUpstream, env.Error)
	}
	if len(env.Content) == 0 || env.Content[0].Text == "" {
		return nil, fmt.Errorf("%w: empty envelope content", ErrNoData)
	}

	return json.RawMessage(env.Content[0].Text), nil
}
