package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"streamflix-api/internal/models"
	"streamflix-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type ProgressHandler struct {
	svc *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: s}
}

// @Summary Registrar progreso de reproducción
// @Tags views
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param movieId path string true "movieId"
// @Param profile_id query string true "profileId"
// @Param body body models.ViewProgressRequest true "progreso"
// @Success 200 {object} map[string]string
// @Failure 404 {string} string "resource not found"
// @Router /views/{movieId} [put]
func (h *ProgressHandler) Record(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	movieID := chi.URLParam(r, "movieId")
	profileID := r.URL.Query().Get("profile_id")
	if profileID == "" {
		http.Error(w, "profile_id is required", http.StatusBadRequest)
		return
	}

	var req models.ViewProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Record(r.Context(), CurrentUser(r.Context()), profileID, movieID, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Progress updated successfully"})
}

// @Summary Continue watching del perfil
// @Tags views
// @Security BearerAuth
// @Produce json
// @Param profile_id query string true "profileId"
// @Param limit query int false "límite (default: 10)"
// @Success 200 {array} models.ContinueWatchingItem
// @Failure 404 {string} string "resource not found"
// @Router /views/continue [get]
func (h *ProgressHandler) Continue(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	profileID := r.URL.Query().Get("profile_id")
	if profileID == "" {
		http.Error(w, "profile_id is required", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.svc.ContinueWatching(r.Context(), CurrentUser(r.Context()), profileID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}
