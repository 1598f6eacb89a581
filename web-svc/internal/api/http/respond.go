package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"orderflow/web-svc/internal/apiclient"
	"orderflow/web-svc/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// writeServiceError maps local sentinels and remote failures onto a response.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case service.IsValidation(err), errors.Is(err, service.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnknownItem):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrIllegalTransition),
		errors.Is(err, service.ErrSubmissionInFlight),
		errors.Is(err, service.ErrAlreadySubmitted),
		errors.Is(err, service.ErrReviewLocked),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrFlowAbandoned):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apiclient.ErrTransport), errors.Is(err, service.ErrNoOrderNumber):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		if status := apiclient.StatusOf(err); status >= 400 {
			writeError(w, status, err.Error())
			return
		}
		log.Printf("[web-svc] request failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
