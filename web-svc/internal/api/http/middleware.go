package httpapi

import (
	"context"
	"net/http"

	"orderflow/web-svc/internal/apiclient"
	"orderflow/web-svc/internal/domain"
	"orderflow/web-svc/internal/service"

	"github.com/google/uuid"
)

const (
	VisitorCookie    = "visitor_id"
	visitorCookieAge = 30 * 24 * 60 * 60
)

type ctxKey int

const (
	visitorKey ctxKey = iota
	sessionKey
)

func visitorID(r *http.Request) string {
	id, _ := r.Context().Value(visitorKey).(string)
	return id
}

func sessionFrom(r *http.Request) domain.Session {
	session, _ := r.Context().Value(sessionKey).(domain.Session)
	return session
}

// visitorMiddleware makes sure every request carries a valid visitor id cookie.
func (h *Handler) visitorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if cookie, err := r.Cookie(VisitorCookie); err == nil {
			if _, err := uuid.Parse(cookie.Value); err == nil {
				id = cookie.Value
			}
		}
		if id == "" {
			id = h.issueVisitor(w)
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), visitorKey, id)))
	})
}

func (h *Handler) issueVisitor(w http.ResponseWriter) string {
	id := service.NewVisitorID()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   visitorCookieAge,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// sessionMiddleware loads the visitor's session and lets API calls made for this request carry its token.
func (h *Handler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := h.Sessions.Current(r.Context(), visitorID(r))
		ctx := context.WithValue(r.Context(), sessionKey, session)
		if session.Authenticated() {
			ctx = apiclient.WithToken(ctx, session.Token)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// guardMiddleware evaluates the route policy on every request.
func (h *Handler) guardMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := h.Policy.Authorize(sessionFrom(r), r.URL.Path)
		if decision.Allowed {
			next.ServeHTTP(w, r)
			return
		}

		status, message := http.StatusForbidden, "insufficient role"
		if decision.Redirect == service.LoginPath {
			status, message = http.StatusUnauthorized, "login required"
		}
		writeJSON(w, status, map[string]string{
			"error":    message,
			"redirect": decision.Redirect,
		})
	})
}
