package middlewares

import (
	"context"
	"errors"
	"net/http"
	"stackwise-service/internal/pkg/constvars"
	"stackwise-service/internal/pkg/exceptions"
	"stackwise-service/internal/pkg/utils"
	"strings"
)

// Authenticate parses the bearer token into a request-scoped identity. There
// is no ambient auth state; downstream handlers read the identity from the
// request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get(constvars.HeaderAuthorization)
		if authorization == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("missing authorization header")))
			return
		}
		if !strings.HasPrefix(authorization, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("authorization header is not a bearer token")))
			return
		}

		tokenString := strings.TrimPrefix(authorization, constvars.AuthorizationBearerPrefix)
		identity, err := utils.ParseIdentityJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_IDENTITY_KEY, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
