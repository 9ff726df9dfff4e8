package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/middleware"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/config"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
)

type AuthHandler struct {
	svc *application.UserService
}

func NewAuthHandler(svc *application.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login returns the token in the body and also sets it as an http-only cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	usr, token, err := h.svc.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.TokenCookie,
		token,
		int(config.TokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)
	response.OK(c, "login successful", user.TokenOutput{Token: token, User: usr})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(
		middleware.TokenCookie,
		"",
		-1,
		"/",
		"",
		config.IsProduction,
		true,
	)
	response.OK(c, "logout successful", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	usr, err := h.svc.Me(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "", usr)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var input user.ChangePasswordInput
	if !bindJSON(c, &input) {
		return
	}
	if err := h.svc.ChangePassword(c.Request.Context(), actor, input); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "password updated", nil)
}
