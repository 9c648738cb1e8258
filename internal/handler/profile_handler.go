package handler

import (
	"encoding/json"
	"net/http"

	"streamflix-api/internal/models"
	"streamflix-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	svc *service.ProfileService
}

func NewProfileHandler(s *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: s}
}

// @Summary Listar perfiles del usuario
// @Tags profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ProfileDoc
// @Router /profiles [get]
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	profiles, err := h.svc.List(r.Context(), CurrentUser(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(profiles)
}

// @Summary Crear perfil
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.ProfileCreateRequest true "datos"
// @Success 200 {object} models.ProfileDoc
// @Router /profiles [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req models.ProfileCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), CurrentUser(r.Context()), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}

// @Summary Actualizar perfil (solo campos presentes)
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "profileId"
// @Param body body models.ProfileUpdateRequest true "campos a actualizar"
// @Success 200 {object} models.ProfileDoc
// @Failure 404 {string} string "resource not found"
// @Router /profiles/{id} [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	profileID := chi.URLParam(r, "id")

	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Update(r.Context(), CurrentUser(r.Context()), profileID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}

// @Summary Borrar perfil
// @Tags profiles
// @Security BearerAuth
// @Produce json
// @Param id path string true "profileId"
// @Success 200 {object} map[string]string
// @Failure 404 {string} string "resource not found"
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	profileID := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), CurrentUser(r.Context()), profileID); err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Profile deleted successfully"})
}
