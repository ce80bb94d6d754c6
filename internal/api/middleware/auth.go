package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avpetrov/PT-BookingService/internal/api/handlers"
)

const headerTelegramUserID = "X-Telegram-User-ID"

const msgMissingUserID = "отсутствует ID пользователя Telegram"

type contextKey string

const userIDKey contextKey = "telegramUserID"

// Auth проверяет наличие заголовка X-Telegram-User-ID и кладет
// ID пользователя Telegram в контекст запроса.
// Заголовок выставляется фронтендом Mini App из initData.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerTelegramUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя Telegram из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
