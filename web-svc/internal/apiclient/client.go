package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL    string
	AuthScheme string
}

// Client wraps the remote restaurant API. It is stateless; the caller's token travels in the context.
type Client struct {
	config Config
	client HTTPClient
}

func NewClient(config Config, client HTTPClient) *Client {
	if config.AuthScheme == "" {
		config.AuthScheme = "Token"
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		config: config,
		client: client,
	}
}

type tokenKey struct{}

// WithToken returns a context whose API calls carry the given credential.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type call struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	anonymous   bool
	fallback    string
	rawErrors   bool
}

func jsonBody(v interface{}) (io.Reader, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(payload), nil
}

func (c *Client) do(ctx context.Context, spec call, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, spec.method, c.config.BaseURL+spec.path, spec.body)
	if err != nil {
		return &APIError{Message: spec.fallback, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if spec.contentType != "" {
		req.Header.Set("Content-Type", spec.contentType)
	}
	if !spec.anonymous {
		if token := TokenFrom(ctx); token != "" {
			req.Header.Set("Authorization", c.config.AuthScheme+" "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[apiclient] %s %s failed: %v", spec.method, spec.path, err)
		return &APIError{Message: spec.fallback, Err: fmt.Errorf("%w: %v", ErrTransport, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[apiclient] %s %s -> %d", spec.method, spec.path, resp.StatusCode)
		return decodeError(resp, spec.fallback, spec.rawErrors)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: spec.fallback, Err: err}
	}
	return nil
}
