package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// New builds the HTTP server with the scrape route registered. Write
// timeout leaves headroom over the 30s outbound fetch.
func New(addr string, handler *Handler) *http.Server {
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	return &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}
