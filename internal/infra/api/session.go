package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"reservas-web/internal/domain/user"
	"reservas-web/internal/pkg/errs"
)

// CurrentUser probes the session. 401 and 403 yield errs.ErrUnauthenticated.
func (c *Client) CurrentUser(ctx context.Context) (*user.Profile, error) {
	endpoint := "GET " + pathCurrentUser

	resp, err := c.do(ctx, http.MethodGet, pathCurrentUser, nil, "")
	if err != nil {
		return nil, err
	}
	switch {
	case resp.status == http.StatusUnauthorized || resp.status == http.StatusForbidden:
		return nil, errs.Mark(rejected(resp.status, resp.body), errs.ErrUnauthenticated)
	case !resp.ok():
		return nil, errs.Wrap(rejected(resp.status, resp.body), endpoint)
	}

	var payload userResponse
	if err := json.Unmarshal(resp.body, &payload); err != nil {
		return nil, decodeErr(endpoint, err)
	}
	profile, err := payload.toDomain()
	if err != nil {
		return nil, decodeErr(endpoint, err)
	}
	return profile, nil
}

// Login posts the credentials as the login form does; the session cookie is
// kept by the client's jar.
func (c *Client) Login(ctx context.Context, creds user.Credentials) error {
	endpoint := "POST " + pathLogin

	form := url.Values{}
	form.Set("username", creds.Email().Value())
	form.Set("password", creds.Password().Value())

	resp, err := c.do(ctx, http.MethodPost, pathLogin, []byte(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return err
	}
	if !resp.ok() {
		return errs.Wrap(rejected(resp.status, resp.body), endpoint)
	}
	return nil
}

// Logout ends the session. The response body is ignored.
func (c *Client) Logout(ctx context.Context) error {
	endpoint := "POST " + pathLogout

	resp, err := c.do(ctx, http.MethodPost, pathLogout, nil, "")
	if err != nil {
		return err
	}
	switch {
	case resp.status == http.StatusUnauthorized:
		return errs.Mark(rejected(resp.status, resp.body), errs.ErrUnauthenticated)
	case !resp.ok():
		return errs.Wrap(rejected(resp.status, resp.body), endpoint)
	}
	return nil
}
