package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
)

type ctxKey int

const ctxKeyUserID ctxKey = iota

// UserIDHeader заголовок с идентификатором пользователя.
// Заполняется API-шлюзом после проверки токена.
const UserIDHeader = "X-User-ID"

const msgMissingUserID = "требуется заголовок X-User-ID"

// Auth проверяет наличие корректного идентификатора пользователя
// и кладёт его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста.
// Второе значение false, если запрос прошёл мимо Auth middleware.
func GetUserID(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(ctxKeyUserID).(int64)
	return v, ok
}
