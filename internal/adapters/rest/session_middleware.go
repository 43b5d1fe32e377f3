package rest

import (
	"net/http"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/port"

	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

// SessionMiddleware определяет браузерную сессию по заголовку X-Session-ID.
// Без заголовка (или с некорректным значением) выдается новая сессия,
// ее идентификатор возвращается в том же заголовке ответа.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := uuid.Parse(r.Header.Get(sessionHeader))
		if err != nil {
			sessionID = uuid.New()
		}
		w.Header().Set(sessionHeader, sessionID.String())

		ctx := contextkeys.ContextWithSessionID(r.Context(), sessionID)
		logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"session_id": sessionID.String()})
		ctx = contextkeys.ContextWithLogger(ctx, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromRequest - сессия всегда есть, если запрос прошел через SessionMiddleware.
func sessionFromRequest(r *http.Request) uuid.UUID {
	sessionID, ok := contextkeys.SessionIDFromContext(r.Context())
	if !ok {
		return uuid.Nil
	}
	return sessionID
}
