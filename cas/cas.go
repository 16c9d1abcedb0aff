// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cas

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrAuthFailed covers every unsuccessful validation: network failure,
// a "no" answer, or a malformed response. Callers get no further detail;
// the user simply re-initiates login.
var ErrAuthFailed = errors.New("SSO ticket validation failed")

// maxResponseBytes bounds the validation response read. The protocol is
// two short lines.
const maxResponseBytes = 4096

// Client validates login tickets against a CAS v1 endpoint.
type Client struct {
	ValidateURL string
	HTTPClient  *http.Client
}

func NewClient(validateURL string) *Client {
	return &Client{
		ValidateURL: validateURL,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Validate confirms a login ticket with the CAS server and returns the
// case ID it is bound to. serviceURL must match the callback URL the
// client was originally redirected from.
func (c *Client) Validate(ctx context.Context, ticket, serviceURL string) (string, error) {
	u, err := url.Parse(c.ValidateURL)
	if err != nil {
		return "", fmt.Errorf("invalid CAS validate URL: %w", err)
	}
	q := u.Query()
	q.Set("ticket", ticket)
	q.Set("service", serviceURL)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build CAS request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", ErrAuthFailed
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", ErrAuthFailed
	}

	return parseResponse(body)
}

// parseResponse handles the CAS v1 plain-text protocol: the first line is
// "yes" or "no", and on success the second line carries the identity.
// Anything that is not exactly a "yes" plus an identity fails.
func parseResponse(body []byte) (string, error) {
	text := strings.ReplaceAll(string(body), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) < 2 || lines[0] != "yes" || lines[1] == "" {
		return "", ErrAuthFailed
	}
	return lines[1], nil
}
