package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "user_id": userID})
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	token, err := tokens.Issue(7)
	require.NoError(t, err)

	handler := AuthMiddleware(tokens)(protectedEcho(t))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, float64(7), out["user_id"])
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	expired := NewTokenService("test-secret", -time.Minute)
	expiredToken, err := expired.Issue(7)
	require.NoError(t, err)

	handler := AuthMiddleware(tokens)(protectedEcho(t))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer garbage"},
		{"expired token", "Bearer " + expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var out map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.Equal(t, false, out["success"])
		})
	}
}
