package middleware

import (
	"log"
	"net/http"
	"strings"

	"oscell/pkg"

	"github.com/gin-gonic/gin"
)

// SubjectKey is the gin context key holding the authenticated subject id.
const SubjectKey = "subject"

var (
	errAuthMissing       = pkg.NewDomainErrorSimple("AUTH_TOKEN_MISSING", "Authentication required", http.StatusUnauthorized)
	errInvalidAuthFormat = pkg.NewDomainErrorSimple("INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'", http.StatusUnauthorized)
	errInvalidToken      = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
)

type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// RequireSubject resolves the subject from a Bearer token. Browsers cannot set
// headers on a websocket handshake, so the token query parameter is accepted
// as a fallback.
func RequireSubject(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, appErr := extractToken(c)
		if appErr != nil {
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		subject, err := v.ValidateToken(token)
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, *pkg.AppError) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		if q := strings.TrimSpace(c.Query("token")); q != "" {
			return q, nil
		}
		return "", errAuthMissing
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errInvalidAuthFormat
	}
	return strings.TrimSpace(token), nil
}
