package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/lyrapkg/lyra/internal/client/models"
	"github.com/lyrapkg/lyra/internal/logging"
)

// maxBody caps how much of a response body is read.
const maxBody = 4 << 20

// HTTPClient talks JSON over HTTP to the registry API. Routes are joined
// onto base, so base may carry a path prefix such as "https://host/api".
type HTTPClient struct {
	base string
	http *http.Client
	log  logging.Logger
}

// NewHTTPClient returns an HTTPClient. A nil hc means http.DefaultClient and
// a nil log discards output.
func NewHTTPClient(base string, hc *http.Client, log logging.Logger) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	if log == nil {
		log = logging.NewNoop()
	}
	return &HTTPClient{base: strings.TrimRight(base, "/"), http: hc, log: log}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}
	return c.token(ctx, http.MethodPost, "auth/login", "", body)
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (string, error) {
	body := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{username, email, password}
	return c.token(ctx, http.MethodPost, "auth/register", "", body)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, token string, req UpdateUserRequest) (string, error) {
	return c.token(ctx, http.MethodPut, "users", token, req)
}

func (c *HTTPClient) GetPackages(ctx context.Context) ([]models.Package, error) {
	raw, err := c.do(ctx, http.MethodGet, "packages", "", nil)
	if err != nil {
		return nil, err
	}
	pkgs, err := models.ParsePackages(raw)
	if err != nil {
		return nil, c.shapeErr(ctx, http.MethodGet, "packages", err)
	}
	return pkgs, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (models.OtherUserProfile, error) {
	route := "users/" + url.PathEscape(id)
	raw, err := c.do(ctx, http.MethodGet, route, "", nil)
	if err != nil {
		return models.OtherUserProfile{}, err
	}
	p, err := models.ParseProfile(raw)
	if err != nil {
		return models.OtherUserProfile{}, c.shapeErr(ctx, http.MethodGet, route, err)
	}
	return p, nil
}

// token runs a credential-issuing call and extracts {"token": "..."}.
func (c *HTTPClient) token(ctx context.Context, method, route, bearer string, in any) (string, error) {
	raw, err := c.do(ctx, method, route, bearer, in)
	if err != nil {
		return "", err
	}
	tok, err := models.ParseAuthResponse(raw)
	if err != nil {
		return "", c.shapeErr(ctx, method, route, err)
	}
	return tok, nil
}

func (c *HTTPClient) shapeErr(ctx context.Context, method, route string, err error) error {
	c.log.Debug(ctx, "response rejected", "method", method, "route", route, "err", err)
	return fmt.Errorf("%w: %s %s: %v", ErrShape, method, route, err)
}

// do sends one request and returns the body of a 2xx answer.
func (c *HTTPClient) do(ctx context.Context, method, route, bearer string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, route, err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+"/"+route, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, route, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "route", route, "err", err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, route, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		c.log.Debug(ctx, "non-2xx response", "method", method, "route", route, "status", resp.StatusCode)
		return nil, &StatusError{Method: method, Route: route, Code: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %v", ErrTransport, method, route, err)
	}
	return raw, nil
}

var _ Client = (*HTTPClient)(nil)
