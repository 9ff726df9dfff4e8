package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/types"
	"golang.org/x/crypto/bcrypt"
)

// ClaimsKey is the gin context key the JWT middleware stores claims under.
const ClaimsKey = "claims"

func GetClaims(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

var GetRoleFromContext = func(c *gin.Context) (string, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
