package middlewareprovider

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inventaris/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	auth := NewAuthMiddlewareService("test-secret")

	token, err := auth.GenerateJWT(11, string(models.AdministratorRole))
	require.NoError(t, err)

	var gotUserID int64
	var gotRole string
	handler := auth.JWTAuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotRole, err = auth.GetUserAndRoleFromContext(r)
		require.NoError(t, err)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(11), gotUserID)
	assert.Equal(t, string(models.AdministratorRole), gotRole)
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	auth := NewAuthMiddlewareService("test-secret")
	handler := auth.JWTAuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewAuthMiddlewareService("wrong-secret")
		token, err := other.GenerateJWT(11, string(models.StaffRole))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	auth := NewAuthMiddlewareService("test-secret")

	protected := auth.JWTAuthMiddleware()(
		auth.RequireRole(models.AdministratorRole)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})))

	t.Run("administrator passes", func(t *testing.T) {
		token, err := auth.GenerateJWT(1, string(models.AdministratorRole))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/assets", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("staff forbidden", func(t *testing.T) {
		token, err := auth.GenerateJWT(2, string(models.StaffRole))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/assets", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
