package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oscell/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newProtectedRouter(t *testing.T, svc *auth.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequireSubject(svc))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(SubjectKey)})
	})
	return router
}

func TestRequireSubject_ValidBearer(t *testing.T) {
	svc := auth.New("test-secret-123", time.Hour)
	token, _, err := svc.GenerateToken("subject-42")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newProtectedRouter(t, svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "subject-42")
}

func TestRequireSubject_QueryToken(t *testing.T) {
	svc := auth.New("test-secret-123", time.Hour)
	token, _, err := svc.GenerateToken("subject-7")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	newProtectedRouter(t, svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "subject-7")
}

func TestRequireSubject_InvalidToken(t *testing.T) {
	signer := auth.New("other-secret", time.Hour)
	token, _, _ := signer.GenerateToken("subject-42")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newProtectedRouter(t, auth.New("test-secret-123", time.Hour)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestRequireSubject_NoToken(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	newProtectedRouter(t, auth.New("secret", time.Hour)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_TOKEN_MISSING")
}

func TestRequireSubject_WrongFormat(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dGVzdA==")
	newProtectedRouter(t, auth.New("secret", time.Hour)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_AUTH_FORMAT")
}
