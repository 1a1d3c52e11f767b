package auth_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/auth"
)

// The handler mirrors how feature handlers resolve the caller's id.
func protectedHandler(t *testing.T, wantID uuid.UUID) http.Handler {
	return auth.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := auth.GetUserIDFromContext(r.Context())
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if wantID != uuid.Nil && userID != wantID {
			t.Errorf("Resolved user id %s, want %s", userID, wantID)
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestGetUserIDFromContext(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidUserID", func(t *testing.T) {
		userID := uuid.New()
		token, err := auth.GenerateJWT(userID.String(), "learner", time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		protectedHandler(t, userID).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200 for a valid token, got %d", rec.Code)
		}
	})

	t.Run("NonUUIDUserIDIsUnauthorized", func(t *testing.T) {
		token, err := auth.GenerateJWT("not-a-uuid", "learner", time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		protectedHandler(t, uuid.Nil).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401 for a non-uuid user claim, got %d", rec.Code)
		}
	})

	t.Run("NoToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		protectedHandler(t, uuid.Nil).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401 without a token, got %d", rec.Code)
		}
	})
}
