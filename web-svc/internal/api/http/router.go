package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wraps the routes in CORS. Any origin other than "*" enables credentialed requests,
// which the visitor cookie needs.
func NewRouter(handler *Handler, origins []string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		return cors.Default().Handler(r)
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(r)
}

func StartServer(server *http.Server) {
	log.Printf("Web Service starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
