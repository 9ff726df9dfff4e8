package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/equipment"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
)

type EquipmentHandler struct {
	svc *application.EquipmentService
}

func NewEquipmentHandler(svc *application.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	var filter equipment.ListFilter
	var err error
	for param, dst := range map[string]**uint{
		"categoryId":   &filter.CategoryID,
		"brandId":      &filter.BrandID,
		"assignedToId": &filter.AssignedToID,
	} {
		if *dst, err = utils.OptionalQueryUint(c, param); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid "+param)
			return
		}
	}
	if v := c.Query("condition"); v != "" {
		cond := equipment.Condition(strings.ToUpper(v))
		valid := false
		for _, known := range equipment.AllConditions {
			if cond == known {
				valid = true
				break
			}
		}
		if !valid {
			response.Error(c, http.StatusBadRequest, "invalid condition")
			return
		}
		filter.Condition = &cond
	}
	filter.Search = strings.TrimSpace(c.Query("search"))
	page := utils.ParsePage(c)

	items, total, err := h.svc.ListEquipment(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paginated(c, "", items, response.NewMeta(page, total))
}

func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, ok := parseID(c, "equipment")
	if !ok {
		return
	}
	e, err := h.svc.GetEquipment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "", e)
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var input equipment.CreateEquipmentDTO
	if !bindJSON(c, &input) {
		return
	}
	e, err := h.svc.CreateEquipment(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "equipment created", e)
}

func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "equipment")
	if !ok {
		return
	}
	var input equipment.UpdateEquipmentDTO
	if !bindJSON(c, &input) {
		return
	}
	e, err := h.svc.UpdateEquipment(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "equipment updated", e)
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "equipment")
	if !ok {
		return
	}
	if err := h.svc.DeleteEquipment(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "equipment deleted", nil)
}

func (h *EquipmentHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "", categories)
}

func (h *EquipmentHandler) CreateCategory(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var input equipment.CreateCategoryDTO
	if !bindJSON(c, &input) {
		return
	}
	cat, err := h.svc.CreateCategory(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "category created", cat)
}

func (h *EquipmentHandler) ListBrands(c *gin.Context) {
	brands, err := h.svc.ListBrands(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "", brands)
}

func (h *EquipmentHandler) CreateBrand(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var input equipment.CreateBrandDTO
	if !bindJSON(c, &input) {
		return
	}
	b, err := h.svc.CreateBrand(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "brand created", b)
}
