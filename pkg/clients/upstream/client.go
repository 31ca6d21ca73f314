// Package upstream is the shared HTTP client for the farm-management REST
// API. It attaches the session's bearer token per request and converts
// upstream failures into the app's error taxonomy.
package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mkamara9/herdsman/internal/apperr"
	"github.com/mkamara9/herdsman/internal/session"
)

const defaultTimeout = 15 * time.Second

// Client wraps a resty client bound to the upstream base URL.
type Client struct {
	httpClient *resty.Client
}

// New builds an upstream API client for the given base URL.
func New(baseURL string) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(defaultTimeout)

	return &Client{httpClient: restyClient}
}

// apiError mirrors the upstream error payload. Some endpoints use "message",
// others "error".
type apiError struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (e *apiError) text() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Err
}

func (c *Client) request(ctx context.Context, sess session.Session, out any) (*resty.Request, *apiError) {
	apiErr := new(apiError)

	req := c.httpClient.R().
		SetContext(ctx).
		SetError(apiErr)

	if sess.Token != "" {
		req.SetHeader("Authorization", fmt.Sprintf("Bearer %s", sess.Token))
	}
	if out != nil {
		req.SetResult(out)
	}

	return req, apiErr
}

func (c *Client) finish(resp *resty.Response, err error, apiErr *apiError, verb, path string) error {
	if err != nil {
		return fmt.Errorf("%s %s: %w", verb, path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return apperr.FromStatus(resp.StatusCode(), apiErr.text())
	}
	return nil
}

// Get issues an authenticated GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, sess session.Session, path string, query map[string]string, out any) error {
	req, apiErr := c.request(ctx, sess, out)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	return c.finish(resp, err, apiErr, "get", path)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, sess session.Session, path string, body, out any) error {
	req, apiErr := c.request(ctx, sess, out)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	return c.finish(resp, err, apiErr, "post", path)
}

// Patch issues an authenticated PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, sess session.Session, path string, body, out any) error {
	req, apiErr := c.request(ctx, sess, out)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Patch(path)
	return c.finish(resp, err, apiErr, "patch", path)
}

// Delete issues an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, sess session.Session, path string) error {
	req, apiErr := c.request(ctx, sess, nil)

	resp, err := req.Delete(path)
	return c.finish(resp, err, apiErr, "delete", path)
}
