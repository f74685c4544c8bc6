// Package handlers wires HTTP routes to the season services.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"f1-data-service/internal/app/drivers"
	"f1-data-service/internal/app/races"
	"f1-data-service/internal/app/standings"
	"f1-data-service/internal/extract"
	"f1-data-service/internal/feed"
	"f1-data-service/internal/logging"
	"f1-data-service/internal/poller"
)

// Handler serves the enriched season collections.
type Handler struct {
	drivers   *drivers.Service
	races     *races.Service
	standings *standings.Service
	season    string
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(d *drivers.Service, r *races.Service, s *standings.Service, season string, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		drivers:   d,
		races:     r,
		standings: s,
		season:    season,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// NewRouter registers the HTTP routes on a ServeMux.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/drivers", h.Drivers)
	mux.HandleFunc("/drivers/", h.DriverByID)
	mux.HandleFunc("/races", h.Races)
	mux.HandleFunc("/races/", h.RaceResults)
	mux.HandleFunc("/standings", h.Standings)
	return mux
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the poller's recent health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Drivers returns the enriched season driver list.
func (h *Handler) Drivers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	list := h.drivers.Drivers()
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served drivers", slog.Int(logging.FieldCount, len(list)))
	writeJSON(w, http.StatusOK, list, h.logger)
}

// DriverByID returns one enriched driver.
func (h *Handler) DriverByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/drivers/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
		return
	}
	driver, ok := h.drivers.DriverByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "driver not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, driver, h.logger)
}

// Races returns the enriched season schedule.
func (h *Handler) Races(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	list := h.races.Races()
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served races", slog.Int(logging.FieldCount, len(list)))
	writeJSON(w, http.StatusOK, list, h.logger)
}

// RaceResults serves /races/{round}/results with an on-demand feed fetch.
func (h *Handler) RaceResults(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	round, ok := parseResultsPath(r.URL.Path)
	if !ok {
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
		return
	}
	if _, ok := h.races.RaceByRound(round); !ok {
		writeError(w, r, http.StatusNotFound, "race not found", h.logger)
		return
	}

	resp, err := h.races.Results(r.Context(), h.season, round)
	if err != nil {
		h.writeFeedError(w, r, "race results unavailable", err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Standings serves the constructor table for the round given by the "round"
// query parameter, defaulting to the latest completed round.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	round := strings.TrimSpace(r.URL.Query().Get("round"))
	if round == "" {
		round = "last"
	}

	resp, err := h.standings.Standings(r.Context(), h.season, round)
	if err != nil {
		h.writeFeedError(w, r, "constructor standings unavailable", err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

func (h *Handler) writeFeedError(w http.ResponseWriter, r *http.Request, message string, err error) {
	logger := loggerFromContext(r, h.logger)
	logging.Error(logger, message, err)

	var structural *extract.StructuralError
	if errors.As(err, &structural) {
		writeError(w, r, http.StatusNotFound, message, h.logger)
		return
	}
	if statusErr, ok := feed.AsStatusError(err); ok && statusErr.StatusCode == http.StatusNotFound {
		writeError(w, r, http.StatusNotFound, message, h.logger)
		return
	}
	writeError(w, r, http.StatusBadGateway, message, h.logger)
}

// parseResultsPath accepts /races/{round}/results and returns the round.
func parseResultsPath(path string) (int, bool) {
	rest := strings.TrimPrefix(path, "/races/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != "results" {
		return 0, false
	}
	round, err := strconv.Atoi(parts[0])
	if err != nil || round < 1 {
		return 0, false
	}
	return round, true
}
