package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/audit"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs filters by userId, resourceType, action and an RFC 3339 startTime/endTime window.
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params audit.QueryParams
	var err error
	if params.UserID, err = utils.OptionalQueryUint(c, "userId"); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid userId")
		return
	}
	if v := c.Query("resourceType"); v != "" {
		params.ResourceType = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	for param, dst := range map[string]**time.Time{"startTime": &params.StartTime, "endTime": &params.EndTime} {
		v := c.Query(param)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid "+param+", expected RFC 3339")
			return
		}
		*dst = &t
	}
	page := utils.ParsePage(c)

	logs, total, err := h.svc.QueryAuditLogs(c.Request.Context(), params, page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paginated(c, "", logs, response.NewMeta(page, total))
}
