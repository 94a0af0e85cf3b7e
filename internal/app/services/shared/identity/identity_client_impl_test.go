package identity

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"stackwise-service/internal/app/config"
	"stackwise-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*httptest.Server, *identityClient) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewIdentityClient(config.Identity{
		Domain:       server.URL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Audience:     "https://tenant.example.com/api/v2/",
	}, zap.NewNop()).(*identityClient)
	return server, client
}

func TestAcquireManagementToken(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotBody map[string]string
		_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/oauth/token", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &gotBody)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "mgmt-token",
				"token_type":   "Bearer",
				"expires_in":   86400,
			})
		}))

		token, err := client.AcquireManagementToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "mgmt-token", token.AccessToken)

		assert.Equal(t, "client-id", gotBody["client_id"])
		assert.Equal(t, "client-secret", gotBody["client_secret"])
		assert.Equal(t, "https://tenant.example.com/api/v2/", gotBody["audience"])
		assert.Equal(t, "client_credentials", gotBody["grant_type"])
	})

	t.Run("Non-2xx carries upstream status and body", func(t *testing.T) {
		_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"access_denied"}`))
		}))

		token, err := client.AcquireManagementToken(context.Background())
		assert.Nil(t, token)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Contains(t, customErr.DevMessage, "403")
		assert.Contains(t, customErr.DevMessage, "access_denied")
	})
}

func TestUpdateUserRecord(t *testing.T) {
	t.Run("Token exchange gates the patch", func(t *testing.T) {
		patchCalls := 0
		_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth/token" {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("token endpoint down"))
				return
			}
			patchCalls++
		}))

		updated, err := client.UpdateUserRecord(context.Background(), "auth0|abc", map[string]interface{}{"email": "x@example.com"})
		assert.Nil(t, updated)
		require.Error(t, err)
		assert.Equal(t, 0, patchCalls, "no patch may be attempted after a failed token exchange")
	})

	t.Run("Patch carries bearer token and body", func(t *testing.T) {
		var gotAuthorization string
		var gotPatch map[string]interface{}
		_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth/token" {
				json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "mgmt-token"})
				return
			}

			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/api/v2/users/auth0%7Cabc", r.URL.EscapedPath())
			gotAuthorization = r.Header.Get("Authorization")

			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &gotPatch)

			json.NewEncoder(w).Encode(map[string]interface{}{
				"user_id": "auth0|abc",
				"email":   "x@example.com",
			})
		}))

		updated, err := client.UpdateUserRecord(context.Background(), "auth0|abc", map[string]interface{}{"email": "x@example.com"})
		require.NoError(t, err)

		assert.Equal(t, "Bearer mgmt-token", gotAuthorization)
		assert.Equal(t, "x@example.com", gotPatch["email"])
		assert.Equal(t, "auth0|abc", updated["user_id"])
	})

	t.Run("Provider rejection passes through verbatim", func(t *testing.T) {
		const rejection = `{"statusCode":400,"message":"Payload validation error"}`
		_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth/token" {
				json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "mgmt-token"})
				return
			}
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(rejection))
		}))

		updated, err := client.UpdateUserRecord(context.Background(), "auth0|abc", map[string]interface{}{"email": "not-an-email"})
		assert.Nil(t, updated)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, rejection, customErr.ClientMessage, "the provider body is surfaced unchanged")
	})
}
