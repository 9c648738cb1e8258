package handler

import (
	"encoding/json"
	"net/http"

	"streamflix-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type WatchlistHandler struct {
	svc *service.WatchlistService
}

func NewWatchlistHandler(s *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{svc: s}
}

// @Summary Películas en la watchlist del perfil
// @Tags watchlist
// @Security BearerAuth
// @Produce json
// @Param id path string true "profileId"
// @Success 200 {array} models.MovieDoc
// @Failure 404 {string} string "resource not found"
// @Router /profiles/{id}/watchlist [get]
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	profileID := chi.URLParam(r, "id")

	movies, err := h.svc.List(r.Context(), CurrentUser(r.Context()), profileID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary Agregar película a la watchlist (idempotente)
// @Tags watchlist
// @Security BearerAuth
// @Produce json
// @Param id path string true "profileId"
// @Param movieId path string true "movieId"
// @Success 200 {object} map[string]string
// @Failure 404 {string} string "resource not found"
// @Router /profiles/{id}/watchlist/{movieId} [post]
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	profileID := chi.URLParam(r, "id")
	movieID := chi.URLParam(r, "movieId")

	added, err := h.svc.Add(r.Context(), CurrentUser(r.Context()), profileID, movieID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	msg := "Added to watchlist"
	if !added {
		msg = "Already in watchlist"
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// @Summary Quitar película de la watchlist (no-op si no estaba)
// @Tags watchlist
// @Security BearerAuth
// @Produce json
// @Param id path string true "profileId"
// @Param movieId path string true "movieId"
// @Success 200 {object} map[string]string
// @Failure 404 {string} string "resource not found"
// @Router /profiles/{id}/watchlist/{movieId} [delete]
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	profileID := chi.URLParam(r, "id")
	movieID := chi.URLParam(r, "movieId")

	if err := h.svc.Remove(r.Context(), CurrentUser(r.Context()), profileID, movieID); err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Removed from watchlist"})
}

// @Summary Consultar si una película está en la watchlist
// @Tags watchlist
// @Security BearerAuth
// @Produce json
// @Param id path string true "profileId"
// @Param movieId path string true "movieId"
// @Success 200 {object} map[string]bool
// @Failure 404 {string} string "resource not found"
// @Router /profiles/{id}/watchlist/check/{movieId} [get]
func (h *WatchlistHandler) Check(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	profileID := chi.URLParam(r, "id")
	movieID := chi.URLParam(r, "movieId")

	inList, err := h.svc.Check(r.Context(), CurrentUser(r.Context()), profileID, movieID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"in_watchlist": inList})
}
