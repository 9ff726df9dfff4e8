package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/authz"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
	"gorm.io/gorm"
)

// Auth gates routes by role using the casbin policy.
type Auth struct {
	enforcer *authz.Enforcer
	users    repository.UserRepo
}

func NewAuth(enforcer *authz.Enforcer, users repository.UserRepo) *Auth {
	return &Auth{enforcer: enforcer, users: users}
}

// CurrentUser reloads the caller and replaces the role carried by the token
// with the stored one, so role changes and removed accounts apply before the
// token expires. Must run after JWTAuthMiddleware.
func (a *Auth) CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaims(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		u, err := a.users.GetUserByID(c.Request.Context(), claims.UserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Abort(c, http.StatusUnauthorized, "account no longer exists")
			return
		}
		if err != nil {
			slog.Error("load current user", "error", err, "user_id", claims.UserID)
			response.Abort(c, http.StatusInternalServerError, "internal server error")
			return
		}

		claims.Role = string(u.Role.Name)
		c.Next()
	}
}

// Require allows the request through when the caller's role may perform
// action on resource. Must run after JWTAuthMiddleware.
func (a *Auth) Require(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := utils.GetRoleFromContext(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		ok, err := a.enforcer.Allowed(role, resource, action)
		if err != nil {
			slog.Error("authorization check", "error", err, "role", role, "resource", resource, "action", action)
			response.Abort(c, http.StatusInternalServerError, "authorization check failed")
			return
		}
		if !ok {
			response.Abort(c, http.StatusForbidden, "you do not have permission to perform this action")
			return
		}
		c.Next()
	}
}
