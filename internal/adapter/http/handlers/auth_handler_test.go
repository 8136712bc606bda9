package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oscell/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

type stubIssuer struct {
	id  auth.Identity
	err error
}

func (s stubIssuer) SignInAnonymously() (auth.Identity, error) {
	return s.id, s.err
}

func TestAuthHandler_SignInAnonymously(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with real signer", func(t *testing.T) {
		svc := auth.New("secret", time.Hour)
		r := gin.New()
		r.POST("/v1/auth/anonymous", NewAuthHandler(svc).SignInAnonymously)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/auth/anonymous", nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body struct {
			Subject string `json:"subject"`
			Token   string `json:"token"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		subject, err := svc.ValidateToken(body.Token)
		if err != nil || subject != body.Subject || subject == "" {
			t.Fatalf("token does not resolve to subject: %q %v", subject, err)
		}
	})

	t.Run("issuer failure", func(t *testing.T) {
		r := gin.New()
		r.POST("/v1/auth/anonymous", NewAuthHandler(stubIssuer{err: errors.New("boom")}).SignInAnonymously)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/auth/anonymous", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
