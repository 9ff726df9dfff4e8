package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	roleID, err := utils.OptionalQueryUint(c, "roleId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid roleId")
		return
	}
	page := utils.ParsePage(c)
	filter := user.ListFilter{RoleID: roleID, Search: strings.TrimSpace(c.Query("search"))}

	users, total, err := h.svc.ListUsers(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paginated(c, "", users, response.NewMeta(page, total))
}

func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.svc.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "", roles)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "user")
	if !ok {
		return
	}
	usr, err := h.svc.GetUser(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "", usr)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var input user.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}
	usr, err := h.svc.CreateUser(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "user created", usr)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "user")
	if !ok {
		return
	}
	var input user.UpdateUserInput
	if !bindJSON(c, &input) {
		return
	}
	usr, err := h.svc.UpdateUser(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "user updated", usr)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "user")
	if !ok {
		return
	}
	if err := h.svc.RemoveUser(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "user deleted", nil)
}
