package handler

import (
	"encoding/json"
	"net/http"

	"streamflix-api/internal/service"
)

type TranslationHandler struct {
	svc *service.TranslationService
}

func NewTranslationHandler(s *service.TranslationService) *TranslationHandler {
	return &TranslationHandler{svc: s}
}

// @Summary Diccionario de UI por idioma
// @Description Un código desconocido devuelve el diccionario por defecto (en)
// @Tags translations
// @Produce json
// @Param lang query string false "código de idioma (default: en)"
// @Success 200 {object} map[string]string
// @Router /translations [get]
func (h *TranslationHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = service.DefaultLanguage
	}
	_ = json.NewEncoder(w).Encode(h.svc.Get(lang))
}
