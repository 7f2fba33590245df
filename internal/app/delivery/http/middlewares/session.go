package middlewares

import (
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/exceptions"
	"audicare-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
)

// Authenticate resolves the bearer token into session data and hangs it on
// the request context. Requests without a valid, live session never reach
// the handler.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorizationHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authorizationHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		token := strings.TrimPrefix(authorizationHeader, constvars.AuthorizationBearerPrefix)

		sessionData, err := m.AuthUsecase.ResolveSession(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, sessionData)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ID_KEY, sessionData.UserID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_TOKEN_KEY, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
