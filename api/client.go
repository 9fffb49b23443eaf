package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout bounds a single request when Config.Timeout is zero.
	DefaultTimeout = 15 * time.Second
	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "gamewatch-cli"

	maxResponseBytes = 1 << 20
)

// Config configures a Client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
	Log        logrus.FieldLogger
}

// Client talks to the backend. It is safe for concurrent use.
type Client struct {
	base      *url.URL
	http      *http.Client
	userAgent string
	log       logrus.FieldLogger

	subsMu sync.RWMutex
	subs   map[string]func(ResponseEvent)
}

// Request describes one call. Query, when set, must be a struct understood by
// go-querystring. Body, when set, is sent as JSON.
type Request struct {
	Method string
	Path   string
	Query  any
	Body   any
	Token  string
}

// New validates cfg and returns a Client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("api: base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api: base URL scheme must be http or https, got %q", base.Scheme)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Client{
		base:      base,
		http:      hc,
		userAgent: ua,
		log:       log.WithField("component", "api"),
		subs:      make(map[string]func(ResponseEvent)),
	}, nil
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Do sends req and decodes a 2xx JSON body into out when out is non-nil. Non-2xx
// responses are returned as *Error.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	target, err := c.resolve(req)
	if err != nil {
		return err
	}

	var body io.Reader
	if req.Body != nil {
		buf, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", req.Method, req.Path, err)
		}
		body = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", req.Method, req.Path, err)
	}

	requestID := requestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set("X-Request-ID", requestID)
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json, text/plain")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	ev := ResponseEvent{Method: req.Method, Path: req.Path, RequestID: requestID}
	log := c.log.WithFields(logrus.Fields{
		"method":     req.Method,
		"path":       req.Path,
		"request_id": requestID,
	})

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		ev.Duration = time.Since(start)
		ev.Err = err
		c.publish(ev)
		log.WithError(err).Debug("request failed")
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	ev.Duration = time.Since(start)
	ev.Status = resp.StatusCode
	ev.Body = data
	if err != nil {
		ev.Err = err
		c.publish(ev)
		log.WithError(err).Debug("reading response failed")
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, req.Method, req.Path, err)
	}
	c.publish(ev)

	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": ev.Duration,
	}).Debug("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Method:    req.Method,
			Path:      req.Path,
			Status:    resp.StatusCode,
			Body:      data,
			RequestID: requestID,
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrDecode, req.Method, req.Path, err)
	}
	return nil
}

func (c *Client) resolve(req Request) (string, error) {
	if req.Method == "" {
		return "", errors.New("api: request method is required")
	}
	if !strings.HasPrefix(req.Path, "/") {
		return "", fmt.Errorf("api: request path %q must start with /", req.Path)
	}

	u := *c.base
	u.Path = c.base.Path + req.Path
	u.RawPath = ""

	if req.Query != nil {
		values, err := query.Values(req.Query)
		if err != nil {
			return "", fmt.Errorf("api: encode query for %s: %w", req.Path, err)
		}
		u.RawQuery = values.Encode()
	}
	return u.String(), nil
}
