package apiclient

import (
	"context"
	"net/http"

	"orderflow/web-svc/internal/domain"
)

func (c *Client) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	var result domain.LoginResult

	body, err := jsonBody(map[string]string{"email": email, "password": password})
	if err != nil {
		return result, err
	}

	err = c.do(ctx, call{
		method:      http.MethodPost,
		path:        "/login/",
		body:        body,
		contentType: "application/json",
		anonymous:   true,
		fallback:    "Login failed",
		rawErrors:   true,
	}, &result)
	return result, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/logout/",
		fallback: "Failed to logout",
	}, nil)
}
