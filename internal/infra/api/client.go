package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"reservas-web/internal/pkg/config"
	"reservas-web/internal/pkg/errs"
)

const (
	pathAvailableEvents = "/eventos-disponibles"
	pathReservations    = "/reservas"
	pathCurrentUser     = "/users/me"
	pathLogin           = "/auth/jwt/login"
	pathLogout          = "/auth/jwt/logout"
	pathContact         = "/enviar-contacto"

	maxBodyBytes = 1 << 20
)

// Client talks to the site backend. It keeps a cookie jar so the session
// cookie set at login travels with every later request.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

func NewClient(cfg config.APIConfig, logger *slog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errs.Wrap(err, "create cookie jar")
	}
	httpClient := &http.Client{
		Jar:     jar,
		Timeout: cfg.Timeout,
	}
	return NewClientWithHTTP(cfg.BaseURL, cfg.UserAgent, httpClient, logger)
}

// NewClientWithHTTP uses the given http.Client as is; callers wanting session
// support must give it a cookie jar.
func NewClientWithHTTP(baseURL, userAgent string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errs.Wrap(err, "parse API base URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errs.New("API base URL must be absolute: " + baseURL)
	}
	return &Client{
		baseURL:    u,
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     logger,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// do performs one request. Failing to get any response, or to read its body,
// is reported as errs.ErrConnection; cancellation of ctx is returned as the
// context error instead.
func (c *Client) do(ctx context.Context, method, path string, body []byte, contentType string) (response, error) {
	endpoint := method + " " + path
	target := c.baseURL.JoinPath(path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return response{}, errs.Wrap(err, endpoint)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return response{}, errs.Wrap(ctxErr, endpoint)
		}
		c.logger.Warn("Request failed", "endpoint", endpoint, "error", err)
		return response{}, errs.Mark(errs.Wrap(err, endpoint), errs.ErrConnection)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return response{}, errs.Mark(errs.Wrapf(err, "%s: read body", endpoint), errs.ErrConnection)
	}

	c.logger.Debug("Request completed",
		"endpoint", endpoint,
		"status_code", resp.StatusCode,
		"duration", time.Since(start),
		"response_size", len(data),
	)

	return response{status: resp.StatusCode, body: data}, nil
}
