// Package gateway is the portal's single boundary with the backend REST API.
// It injects the session's bearer token into every outgoing request and tears
// the session down on any 401; per-entity repositories built on it implement
// the core service interfaces the way a database layer otherwise would.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/techcomputer/portal/core"
)

type (
	Client struct {
		baseURL string
		http    *http.Client
		sess    core.SessionStore

		// onUnauthorized runs after the session has been cleared for a 401
		// response; exactly once per response. Optional.
		onUnauthorized func()
	}

	Option func(*Client)

	// apiMessage is the backend's error envelope.
	apiMessage struct {
		Message string `json:"message"`
	}
)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithUnauthorizedHook(hook func()) Option {
	return func(c *Client) { c.onUnauthorized = hook }
}

func NewClient(conf *core.Config, sess core.SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(conf.API.BaseURL, "/"),
		http:    &http.Client{Timeout: conf.API.Timeout},
		sess:    sess,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSession derives a client bound to another session store (the web app
// builds one per request around the caller's cookie). The underlying HTTP
// client is shared.
func (c *Client) WithSession(sess core.SessionStore, opts ...Option) *Client {
	derived := *c
	derived.sess = sess
	for _, opt := range opts {
		opt(&derived)
	}
	return &derived
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, params, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if err = c.checkStatus(resp); err != nil {
		return err
	}
	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "decoding %s %s response", method, path)
		}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	if sess, err := c.sess.Load(); err == nil && sess.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}
	return req, nil
}

// checkStatus maps non-2xx responses to APIErrors. A 401 from any endpoint
// clears the stored session before returning; the hook then forces
// navigation to the login screen. This is global and unconditional.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var msg apiMessage
	_ = json.NewDecoder(resp.Body).Decode(&msg) // absent/invalid bodies fall back to the status text

	if resp.StatusCode == http.StatusUnauthorized {
		_ = c.sess.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	return core.NewAPIError(resp.StatusCode, msg.Message)
}

// Upload sends a multipart file to POST /upload and returns the stored URL.
// Used for admission photos and signatures.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", errors.Wrap(err, "building multipart body")
	}
	if _, err = io.Copy(part, file); err != nil {
		return "", errors.Wrap(err, "reading upload")
	}
	if err = mw.Close(); err != nil {
		return "", errors.Wrap(err, "finalizing multipart body")
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/upload", nil, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "POST /upload")
	}
	defer resp.Body.Close()

	if err = c.checkStatus(resp); err != nil {
		return "", err
	}
	var out struct {
		URL string `json:"url"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "decoding upload response")
	}
	return out.URL, nil
}
