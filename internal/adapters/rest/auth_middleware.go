package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Заголовки авторизации мобильного приложения.
const (
	accessTokenHeader = "ACCESS-TOKEN"
	publicTokenHeader = "PUBLIC-TOKEN"
)

// Кастомный тип для ключа контекста, чтобы избежать коллизий.
type contextKey string

const userIDKey = contextKey("userID")

// UserIDFromContext возвращает GUID пользователя, положенный AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

// AuthMiddleware извлекает GUID пользователя из заголовка ACCESS-TOKEN.
// GUID выдается при регистрации и служит токеном доступа ко всем /api роутам.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := r.Header.Get(accessTokenHeader)
		if accessToken == "" {
			WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		userID, err := uuid.Parse(accessToken)
		if err != nil {
			WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PublicAuthMiddleware проверяет заголовок PUBLIC-TOKEN для /public роутов.
// Токен сравнивается после нормализации через uuid.Parse, регистр не важен.
func PublicAuthMiddleware(publicToken string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := uuid.Parse(r.Header.Get(publicTokenHeader))
			if err != nil || !strings.EqualFold(token.String(), publicToken) {
				WriteEnvelopeError(w, http.StatusUnauthorized, "Invalid public token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
