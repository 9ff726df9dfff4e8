package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/storage"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
)

// fieldLabels maps struct fields to the names clients know them by.
var fieldLabels = map[string]string{
	"FirstName":       "first name",
	"LastName":        "last name",
	"RoleID":          "role",
	"OldPassword":     "old password",
	"NewPassword":     "new password",
	"ProjectType":     "project type",
	"ClientID":        "client",
	"ManagerIDs":      "managers",
	"TechnicianIDs":   "technicians",
	"SerialNumber":    "serial number",
	"CategoryID":      "category",
	"CategoryType":    "category type",
	"BrandID":         "brand",
	"PurchasePrice":   "purchase price",
	"PurchaseDate":    "purchase date",
	"WarrantyEndDate": "warranty end date",
	"AssignedToID":    "assigned user",
	"TicketID":        "ticket",
}

// validationMessage turns binding errors into one readable sentence.
func validationMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "invalid input"
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		case "gt":
			msg = fmt.Sprintf("%s must be greater than %s", lbl, fe.Param())
		case "gte":
			msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func parseID(c *gin.Context, what string) (uint, bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid "+what+" id")
		return 0, false
	}
	return id, true
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, storage.ErrNotConfigured):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "method", c.Request.Method, "path", c.FullPath())
		_ = c.Error(err)
		response.Error(c, status, "internal server error")
		return
	}
	response.Error(c, status, err.Error())
}

// actorFrom builds the service caller from the JWT claims.
func actorFrom(c *gin.Context) (application.Actor, bool) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return application.Actor{}, false
	}
	return application.Actor{
		ID:        claims.UserID,
		Role:      user.RoleName(claims.Role),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}, true
}
