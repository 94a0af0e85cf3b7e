package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stackwise-service/internal/app/config"
	"stackwise-service/internal/app/models"
	"stackwise-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthenticate(t *testing.T) {
	const secret = "test-signing-secret"

	middlewares := &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: secret},
		},
	}

	signToken := func(t *testing.T, claims jwt.MapClaims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	t.Run("Valid token populates identity", func(t *testing.T) {
		var gotIdentity *models.Identity
		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotIdentity, _ = r.Context().Value(constvars.CONTEXT_IDENTITY_KEY).(*models.Identity)
			w.WriteHeader(http.StatusOK)
		}))

		token := signToken(t, jwt.MapClaims{
			"sub":   "auth0|abc",
			"email": "jordan@example.com",
			"roles": []interface{}{"admin"},
		})

		req := httptest.NewRequest("GET", "/api/v1/stacks", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, gotIdentity)
		assert.Equal(t, "auth0|abc", gotIdentity.UserID)
		assert.Equal(t, "jordan@example.com", gotIdentity.Email)
		assert.Equal(t, []string{"admin"}, gotIdentity.Roles)
	})

	t.Run("Missing header is rejected", func(t *testing.T) {
		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a token")
		}))

		req := httptest.NewRequest("GET", "/api/v1/stacks", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token signed with wrong secret is rejected", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "auth0|abc"}).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run with an invalid token")
		}))

		req := httptest.NewRequest("GET", "/api/v1/stacks", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token without subject is rejected", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"email": "jordan@example.com"})

		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a subject claim")
		}))

		req := httptest.NewRequest("GET", "/api/v1/stacks", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
