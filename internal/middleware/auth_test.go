package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drivelane/drivelane-backend/internal/auth"
	"github.com/drivelane/drivelane-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRequireAuth_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(auth.NewService())

	handler := m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a token")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(auth.NewService())

	handler := m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with a bad token")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ValidTokenAddsClaims(t *testing.T) {
	svc := auth.NewService()
	m := NewAuthMiddleware(svc)

	user := &models.User{ID: primitive.NewObjectID(), Email: "jess@example.com"}
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	var got *models.Claims
	handler := m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetUserFromContext(r.Context())
		require.True(t, ok)
		got = claims
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, user.ID.Hex(), got.UserID)
	assert.Equal(t, "jess@example.com", got.Email)
}
