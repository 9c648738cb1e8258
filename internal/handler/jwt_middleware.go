package handler

import (
	"context"
	"net/http"
	"strings"

	"streamflix-api/internal/models"
	"streamflix-api/internal/service"
)

type ctxKey string

const ctxUser ctxKey = "currentUser"

// Auth valida el token Bearer, carga el usuario (principal) y lo mete
// en el contexto. Un subject que ya no existe también es 401.
func Auth(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "missing or invalid Authorization header", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			userID, err := auth.ParseToken(tokenStr)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			u, err := auth.GetUserByID(r.Context(), userID)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if u == nil {
				http.Error(w, "user not found", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUser, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly solo deja pasar a role == "admin".
func AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := CurrentUser(r.Context())
			if u == nil || u.Role != models.RoleAdmin {
				http.Error(w, "admin access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CurrentUser saca el principal del contexto.
func CurrentUser(ctx context.Context) *models.UserDoc {
	if v := ctx.Value(ctxUser); v != nil {
		if u, ok := v.(*models.UserDoc); ok {
			return u
		}
	}
	return nil
}
