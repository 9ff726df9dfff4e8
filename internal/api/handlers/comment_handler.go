package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/comment"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
)

type CommentHandler struct {
	svc *application.CommentService
}

func NewCommentHandler(svc *application.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	ticketID, err := utils.ParseQueryUintParam(c, "ticketId")
	if errors.Is(err, utils.ErrEmptyParameter) {
		response.Error(c, http.StatusBadRequest, "ticketId is required")
		return
	}
	if err != nil || ticketID == 0 {
		response.Error(c, http.StatusBadRequest, "invalid ticketId")
		return
	}
	page := utils.ParsePage(c)

	comments, total, err := h.svc.ListComments(c.Request.Context(), actor, ticketID, page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paginated(c, "", comments, response.NewMeta(page, total))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var input comment.CreateCommentDTO
	if !bindJSON(c, &input) {
		return
	}
	cm, err := h.svc.CreateComment(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "comment added", cm)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "comment")
	if !ok {
		return
	}
	var input comment.UpdateCommentDTO
	if !bindJSON(c, &input) {
		return
	}
	cm, err := h.svc.UpdateComment(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "comment updated", cm)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "comment")
	if !ok {
		return
	}
	if err := h.svc.DeleteComment(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "comment deleted", nil)
}
