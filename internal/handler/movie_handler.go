package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"streamflix-api/internal/models"
	"streamflix-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: s}
}

// @Summary Listar / buscar películas
// @Tags movies
// @Produce json
// @Param category query string false "categoría"
// @Param year query int false "año de estreno"
// @Param search query string false "texto en título o descripción"
// @Param limit query int false "límite (default: 50)"
// @Success 200 {array} models.MovieDoc
// @Router /movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	category := r.URL.Query().Get("category")
	if category != "" && !models.MovieCategory(category).Valid() {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	search := r.URL.Query().Get("search")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	movies, err := h.svc.List(r.Context(), category, year, search, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary Obtener película por id o slug
// @Tags movies
// @Produce json
// @Param id path string true "movieId o slug"
// @Success 200 {object} models.MovieDoc
// @Failure 404 {string} string "resource not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	key := chi.URLParam(r, "id")

	mv, err := h.svc.GetByKey(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(mv)
}

// @Summary Crear película (ADMIN)
// @Tags movies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.MovieCreateRequest true "datos"
// @Success 201 {object} models.MovieDoc
// @Failure 409 {string} string "movie with this slug already exists"
// @Router /movies [post]
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req models.MovieCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mv, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(mv)
}

// @Summary Actualizar película (ADMIN)
// @Tags movies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "movieId"
// @Param body body models.MovieUpdateRequest true "campos a actualizar"
// @Success 200 {object} models.MovieDoc
// @Failure 404 {string} string "resource not found"
// @Router /movies/{id} [put]
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := chi.URLParam(r, "id")

	var req models.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mv, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(mv)
}

// @Summary Borrar película (ADMIN)
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Param id path string true "movieId"
// @Success 200 {object} map[string]string
// @Failure 404 {string} string "resource not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Movie deleted successfully"})
}
