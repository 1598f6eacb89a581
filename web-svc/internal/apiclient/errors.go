package apiclient

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

var ErrTransport = errors.New("remote api unreachable")

// APIError is returned for every failed call. Status is zero when the request never got a response.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// StatusOf reports the remote status carried by err, or zero.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

const maxErrorBody = 64 << 10

func decodeError(resp *http.Response, fallback string, rawText bool) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := fallback
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		message = payload.Detail
	} else if rawText {
		if text := strings.TrimSpace(string(body)); text != "" {
			message = text
		}
	}

	return &APIError{Status: resp.StatusCode, Message: message}
}
