package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/equipment"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"gorm.io/gorm"
)

type EquipmentService struct {
	Repos *repository.Repos
}

func NewEquipmentService(repos *repository.Repos) *EquipmentService {
	return &EquipmentService{Repos: repos}
}

func (s *EquipmentService) ListEquipment(ctx context.Context, filter equipment.ListFilter, page query.Page) ([]equipment.Equipment, int64, error) {
	return s.Repos.Equipment.ListEquipment(ctx, filter, page)
}

func (s *EquipmentService) GetEquipment(ctx context.Context, id uint) (equipment.Equipment, error) {
	e, err := s.Repos.Equipment.GetEquipmentByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return equipment.Equipment{}, ErrEquipmentNotFound
	}
	return e, err
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, actor Actor, input equipment.CreateEquipmentDTO) (equipment.Equipment, error) {
	e := equipment.Equipment{
		Name:            strings.TrimSpace(input.Name),
		SerialNumber:    strings.TrimSpace(input.SerialNumber),
		CategoryID:      input.CategoryID,
		BrandID:         input.BrandID,
		Condition:       equipment.ConditionNew,
		PurchaseDate:    input.PurchaseDate,
		PurchasePrice:   input.PurchasePrice,
		WarrantyEndDate: input.WarrantyEndDate,
		CreatedByID:     actor.ID,
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.Condition != nil {
		e.Condition = *input.Condition
	}
	if input.AssignedToID != nil && *input.AssignedToID != 0 {
		e.AssignedToID = input.AssignedToID
	}
	if err := s.checkReferences(ctx, &e); err != nil {
		return equipment.Equipment{}, err
	}

	if err := s.Repos.Equipment.CreateEquipment(ctx, &e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return equipment.Equipment{}, ErrSerialTaken
		}
		return equipment.Equipment{}, err
	}
	created, err := s.GetEquipment(ctx, e.ID)
	if err != nil {
		return equipment.Equipment{}, err
	}
	recordAudit(ctx, s.Repos, actor, "create", "equipment", fmt.Sprintf("e_id=%d", created.ID), nil, created, "")
	return created, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, actor Actor, id uint, input equipment.UpdateEquipmentDTO) (equipment.Equipment, error) {
	e, err := s.GetEquipment(ctx, id)
	if err != nil {
		return equipment.Equipment{}, err
	}
	before := e

	if input.Name != nil {
		e.Name = strings.TrimSpace(*input.Name)
	}
	if input.SerialNumber != nil {
		e.SerialNumber = strings.TrimSpace(*input.SerialNumber)
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.CategoryID != nil {
		e.CategoryID = *input.CategoryID
	}
	if input.BrandID != nil {
		if *input.BrandID == 0 {
			e.BrandID = nil
		} else {
			e.BrandID = input.BrandID
		}
	}
	if input.Condition != nil {
		e.Condition = *input.Condition
	}
	if input.PurchaseDate != nil {
		e.PurchaseDate = input.PurchaseDate
	}
	if input.PurchasePrice != nil {
		e.PurchasePrice = input.PurchasePrice
	}
	if input.WarrantyEndDate != nil {
		e.WarrantyEndDate = input.WarrantyEndDate
	}
	if input.AssignedToID != nil {
		if *input.AssignedToID == 0 {
			e.AssignedToID = nil
		} else {
			e.AssignedToID = input.AssignedToID
		}
	}
	if err := s.checkReferences(ctx, &e); err != nil {
		return equipment.Equipment{}, err
	}

	if err := s.Repos.Equipment.UpdateEquipment(ctx, &e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return equipment.Equipment{}, ErrSerialTaken
		}
		return equipment.Equipment{}, err
	}
	updated, err := s.GetEquipment(ctx, id)
	if err != nil {
		return equipment.Equipment{}, err
	}
	recordAudit(ctx, s.Repos, actor, "update", "equipment", fmt.Sprintf("e_id=%d", id), before, updated, "")
	return updated, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, actor Actor, id uint) error {
	e, err := s.GetEquipment(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.Repos.Ticket.CountTicketsByEquipment(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrEquipmentInUse
	}
	if err := s.Repos.Equipment.DeleteEquipment(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}
	recordAudit(ctx, s.Repos, actor, "delete", "equipment", fmt.Sprintf("e_id=%d", id), e, nil, "")
	return nil
}

// checkReferences makes sure category, brand and assignee point at existing rows.
func (s *EquipmentService) checkReferences(ctx context.Context, e *equipment.Equipment) error {
	if _, err := s.Repos.Equipment.GetCategoryByID(ctx, e.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	if e.BrandID != nil {
		if _, err := s.Repos.Equipment.GetBrandByID(ctx, *e.BrandID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBrandNotFound
			}
			return err
		}
	}
	if e.AssignedToID != nil {
		if _, err := s.Repos.User.GetUserByID(ctx, *e.AssignedToID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssigneeNotFound
			}
			return err
		}
	}
	return nil
}

func (s *EquipmentService) ListCategories(ctx context.Context) ([]equipment.Category, error) {
	return s.Repos.Equipment.ListCategories(ctx)
}

func (s *EquipmentService) CreateCategory(ctx context.Context, actor Actor, input equipment.CreateCategoryDTO) (equipment.Category, error) {
	c := equipment.Category{Name: strings.TrimSpace(input.Name), CategoryType: input.CategoryType}
	if err := s.Repos.Equipment.CreateCategory(ctx, &c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return equipment.Category{}, ErrCategoryTaken
		}
		return equipment.Category{}, err
	}
	recordAudit(ctx, s.Repos, actor, "create", "equipment_category", fmt.Sprintf("c_id=%d", c.ID), nil, c, "")
	return c, nil
}

func (s *EquipmentService) ListBrands(ctx context.Context) ([]equipment.Brand, error) {
	return s.Repos.Equipment.ListBrands(ctx)
}

func (s *EquipmentService) CreateBrand(ctx context.Context, actor Actor, input equipment.CreateBrandDTO) (equipment.Brand, error) {
	b := equipment.Brand{Name: strings.TrimSpace(input.Name)}
	if err := s.Repos.Equipment.CreateBrand(ctx, &b); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return equipment.Brand{}, ErrBrandTaken
		}
		return equipment.Brand{}, err
	}
	recordAudit(ctx, s.Repos, actor, "create", "equipment_brand", fmt.Sprintf("b_id=%d", b.ID), nil, b, "")
	return b, nil
}
