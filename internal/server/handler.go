package server

import (
	"context"
	"encoding/json"
	"net/http"

	"sjsage522/kijijiworker/internal/scraper"
	"sjsage522/kijijiworker/logger"
	"sjsage522/kijijiworker/pkg/errors"

	"github.com/gorilla/mux"
)

// CarSource produces a normalized car batch; satisfied by scraper.KijijiScraper
type CarSource interface {
	FetchCars(ctx context.Context) ([]scraper.Car, error)
}

// Handler serves the scrape endpoint
type Handler struct {
	source CarSource
	log    *logger.Logger
}

// NewHandler creates a new handler backed by the given car source
func NewHandler(source CarSource) *Handler {
	return &Handler{
		source: source,
		log:    logger.ForServer(),
	}
}

// RegisterRoutes registers the handler's routes on the router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/scrape_kijiji", h.handleScrapeKijiji).Methods(http.MethodGet)
}

func (h *Handler) handleScrapeKijiji(w http.ResponseWriter, r *http.Request) {
	cars, err := h.source.FetchCars(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Scrape failed")
		writeError(w, http.StatusInternalServerError, errorMessage(err))
		return
	}

	h.log.Info().Int("count", len(cars)).Msg("Scrape succeeded")
	writeJSON(w, http.StatusOK, scraper.ResultEnvelope{
		Count: len(cars),
		Cars:  cars,
	})
}

// errorMessage maps pipeline failures to the fixed client-facing messages
func errorMessage(err error) string {
	switch {
	case errors.IsFetch(err):
		return "Request failed"
	case errors.IsNotFound(err):
		return "Embedded JSON not found"
	default:
		return err.Error()
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
