package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

const userIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

const msgUnauthorized = "Требуется заголовок X-User-ID"

// Auth требует валидный заголовок X-User-ID и кладет идентификатор
// пользователя в контекст запроса. Проверка прав доступа выполняется
// сервисом идентификации выше по цепочке, здесь только пропускной фильтр.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(userIDHeader), 10, 64)
		if err != nil || userID <= 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": msgUnauthorized})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
