// Package gateway is the single HTTP client wrapper for the Kamaru REST
// API. Every remote operation the application performs goes through one
// method on Client; protected calls attach the bearer token, uploads go
// out as multipart, everything else as JSON. Each call is independent:
// no retries, no queueing, no caching.
// File: gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"kamaru-web/logger"
)

// Observer is notified after every completed call, successful or not.
// Used to publish latency metrics without coupling the gateway to any
// metrics backend.
type Observer func(op string, d time.Duration, err error)

// Client talks to the Kamaru API at a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
	observe Observer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithObserver registers a per-call observer.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observe = o }
}

// New creates a Client for the given API base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload carries one file for a multipart request.
type Upload struct {
	FileName string
	Content  io.Reader
}

// errBody is the error envelope the API uses on 4xx/5xx responses.
type errBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ----------------------- request plumbing -----------------------

// doJSON issues a JSON request and decodes the response into out (which
// may be nil). token may be empty: the request is still issued without
// an Authorization header and the server's AuthError is the detection
// point.
func (c *Client) doJSON(ctx context.Context, op, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindNetwork, Message: "could not encode request", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: "could not build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	setBearer(req, token)

	return c.send(req, op, out)
}

// doMultipart issues a multipart/form-data request with optional file
// content under fileField.
func (c *Client) doMultipart(ctx context.Context, op, method, path, token string, fields map[string]string, fileField string, file *Upload, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return &APIError{Kind: KindNetwork, Message: "could not encode form", Err: err}
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(fileField, file.FileName)
		if err != nil {
			return &APIError{Kind: KindNetwork, Message: "could not encode upload", Err: err}
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return &APIError{Kind: KindNetwork, Message: "could not read upload", Err: err}
		}
	}
	if err := writer.Close(); err != nil {
		return &APIError{Kind: KindNetwork, Message: "could not finish form", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: "could not build request", Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	setBearer(req, token)

	return c.send(req, op, out)
}

// send executes the request and classifies the outcome.
func (c *Client) send(req *http.Request, op string, out interface{}) error {
	start := time.Now()
	err := c.exchange(req, out)
	if c.observe != nil {
		c.observe(op, time.Since(start), err)
	}
	if err != nil {
		logger.Warnf("[gateway] %s %s failed: %v", op, req.URL.Path, err)
	}
	return err
}

func (c *Client) exchange(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: "request never reached the server", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindNetwork, Status: resp.StatusCode, Message: "response could not be read", Err: err}
	}

	if resp.StatusCode >= 400 {
		return classify(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			// malformed success body: fail fast with a typed error
			return &APIError{Kind: KindServer, Status: resp.StatusCode, Message: "malformed server response", Err: err}
		}
	}
	return nil
}

// classify maps an HTTP failure status to the error taxonomy.
func classify(status int, raw []byte) *APIError {
	var body errBody
	_ = json.Unmarshal(raw, &body)
	message := body.Error
	if message == "" {
		message = body.Message
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if message == "" {
			message = "not authorized"
		}
		return &APIError{Kind: KindAuth, Status: status, Message: message}
	case status >= 500:
		if message == "" {
			message = "server error"
		}
		return &APIError{Kind: KindServer, Status: status, Message: message}
	default:
		if message == "" {
			message = fmt.Sprintf("request rejected (status %d)", status)
		}
		return &APIError{Kind: KindValidation, Status: status, Message: message}
	}
}

func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
