package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/config"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/ticket"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

func parseTicketFilter(c *gin.Context) (ticket.ListFilter, string) {
	var filter ticket.ListFilter
	var err error
	if filter.StatusID, err = utils.OptionalQueryUint(c, "statusId"); err != nil {
		return filter, "invalid statusId"
	}
	if filter.ProjectID, err = utils.OptionalQueryUint(c, "projectId"); err != nil {
		return filter, "invalid projectId"
	}
	if v := c.Query("type"); v != "" {
		t := ticket.Type(strings.ToUpper(v))
		switch t {
		case ticket.TypeTechnicalIssue, ticket.TypeNewFeature, ticket.TypeEquipmentIssue:
			filter.Type = &t
		default:
			return filter, "type must be one of [TECHNICAL_ISSUE NEW_FEATURE EQUIPMENT_ISSUE]"
		}
	}
	if v := c.Query("priority"); v != "" {
		p := ticket.Priority(strings.ToUpper(v))
		switch p {
		case ticket.PriorityLow, ticket.PriorityMedium, ticket.PriorityHigh, ticket.PriorityCritical:
			filter.Priority = &p
		default:
			return filter, "priority must be one of [LOW MEDIUM HIGH CRITICAL]"
		}
	}
	return filter, ""
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	filter, msg := parseTicketFilter(c)
	if msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}
	page := utils.ParsePage(c)

	tickets, total, err := h.svc.ListTickets(c.Request.Context(), actor, filter, page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paginated(c, "", tickets, response.NewMeta(page, total))
}

func (h *TicketHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.svc.ListStatuses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "", statuses)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "ticket")
	if !ok {
		return
	}
	t, err := h.svc.GetTicket(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "", t)
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var input ticket.CreateTicketDTO
	if !bindJSON(c, &input) {
		return
	}
	t, err := h.svc.CreateTicket(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "ticket created", t)
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "ticket")
	if !ok {
		return
	}
	var input ticket.UpdateTicketDTO
	if !bindJSON(c, &input) {
		return
	}
	t, err := h.svc.UpdateTicket(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "ticket updated", t)
}

func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "ticket")
	if !ok {
		return
	}
	if err := h.svc.DeleteTicket(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "ticket deleted", nil)
}

// UploadAttachment expects a multipart form with a single "file" field.
func (h *TicketHandler) UploadAttachment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "ticket")
	if !ok {
		return
	}
	if config.MaxUploadSize > 0 {
		// Leave room for the multipart envelope around the file itself.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxUploadSize+1<<20)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, application.ErrFileTooLarge)
			return
		}
		respondError(c, application.ErrFileRequired)
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	a, err := h.svc.UploadAttachment(c.Request.Context(), actor, id, application.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "attachment uploaded", a)
}

func (h *TicketHandler) ListAttachments(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "ticket")
	if !ok {
		return
	}
	attachments, err := h.svc.ListAttachments(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "", attachments)
}
