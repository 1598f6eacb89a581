package httpapi

import (
	"io"
	"log"
	"net/http"
	"strings"

	"orderflow/web-svc/internal/apiclient"
)

// Request headers worth passing upstream. Cookies and credentials stay here.
var mediaRequestHeaders = []string{"Accept", "If-None-Match", "If-Modified-Since", "Range"}

// MediaProxy serves menu item images from the remote API, so the browser only ever talks to this service.
type MediaProxy struct {
	baseURL string
	client  apiclient.HTTPClient
}

func NewMediaProxy(baseURL string, client apiclient.HTTPClient) *MediaProxy {
	if client == nil {
		client = http.DefaultClient
	}
	return &MediaProxy{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (p *MediaProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.URL.Path, "..") {
		http.Error(w, "invalid media path", http.StatusBadRequest)
		return
	}

	target := p.baseURL + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, nil)
	if err != nil {
		log.Printf("[media] ERROR: failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	for _, key := range mediaRequestHeaders {
		if value := r.Header.Get(key); value != "" {
			req.Header.Set(key, value)
		}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[media] ERROR: failed to fetch %s: %v", r.URL.Path, err)
		http.Error(w, "media unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		if key == "Set-Cookie" {
			continue
		}
		w.Header()[key] = values
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[media] ERROR: failed to copy response: %v", err)
	}
}
