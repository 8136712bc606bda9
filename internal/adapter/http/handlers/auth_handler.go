package handlers

import (
	"net/http"

	response "oscell/internal/adapter/http/dto/response"
	"oscell/internal/infrastructure/auth"
	"oscell/pkg"

	"github.com/gin-gonic/gin"
)

type IdentityIssuer interface {
	SignInAnonymously() (auth.Identity, error)
}

type AuthHandler struct {
	issuer IdentityIssuer
}

func NewAuthHandler(issuer IdentityIssuer) *AuthHandler {
	return &AuthHandler{issuer: issuer}
}

// SignInAnonymously godoc
// @Summary      Create an anonymous identity
// @Description  Returns a fresh subject and a Bearer token scoping the service ledger.
// @Tags         auth
// @Produce      json
// @Success      201  {object}  response.IdentityResponse
// @Router       /auth/anonymous [post]
func (h *AuthHandler) SignInAnonymously(c *gin.Context) {
	id, err := h.issuer.SignInAnonymously()
	if err != nil {
		appErr := pkg.NewDomainError("AUTH_UNAVAILABLE", "Could not create identity", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.IdentityResponse{Subject: id.Subject, Token: id.Token, ExpiresAt: id.ExpiresAt})
}
