package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/equipment"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupEquipmentServiceMocks(t *testing.T) (*EquipmentService, *repoMocks) {
	m := setupRepoMocks(t)
	return NewEquipmentService(m.repos), m
}

func TestCreateEquipment_Success(t *testing.T) {
	svc, m := setupEquipmentServiceMocks(t)
	ctx := context.Background()

	m.equipment.EXPECT().GetCategoryByID(ctx, uint(1)).Return(equipment.Category{ID: 1}, nil)
	m.user.EXPECT().GetUserByID(ctx, uint(3)).Return(user.User{ID: 3}, nil)
	m.equipment.EXPECT().CreateEquipment(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *equipment.Equipment) error {
		assert.Equal(t, equipment.ConditionNew, e.Condition)
		assert.Equal(t, "SN-1", e.SerialNumber)
		e.ID = 8
		return nil
	})
	m.equipment.EXPECT().GetEquipmentByID(ctx, uint(8)).Return(equipment.Equipment{ID: 8}, nil)

	e, err := svc.CreateEquipment(ctx, staffActor, equipment.CreateEquipmentDTO{
		Name:         "Laptop",
		SerialNumber: " SN-1 ",
		CategoryID:   1,
		AssignedToID: ptr(uint(3)),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(8), e.ID)
}

func TestCreateEquipment_DuplicateSerial(t *testing.T) {
	svc, m := setupEquipmentServiceMocks(t)
	ctx := context.Background()

	m.equipment.EXPECT().GetCategoryByID(ctx, uint(1)).Return(equipment.Category{ID: 1}, nil)
	m.equipment.EXPECT().CreateEquipment(ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.CreateEquipment(ctx, adminActor, equipment.CreateEquipmentDTO{Name: "Laptop", SerialNumber: "SN-1", CategoryID: 1})
	assert.ErrorIs(t, err, ErrSerialTaken)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateEquipment_UnknownReferences(t *testing.T) {
	t.Run("category", func(t *testing.T) {
		svc, m := setupEquipmentServiceMocks(t)
		m.equipment.EXPECT().GetCategoryByID(gomock.Any(), uint(1)).Return(equipment.Category{}, gorm.ErrRecordNotFound)

		_, err := svc.CreateEquipment(context.Background(), adminActor, equipment.CreateEquipmentDTO{CategoryID: 1})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
	t.Run("brand", func(t *testing.T) {
		svc, m := setupEquipmentServiceMocks(t)
		m.equipment.EXPECT().GetCategoryByID(gomock.Any(), uint(1)).Return(equipment.Category{ID: 1}, nil)
		m.equipment.EXPECT().GetBrandByID(gomock.Any(), uint(2)).Return(equipment.Brand{}, gorm.ErrRecordNotFound)

		_, err := svc.CreateEquipment(context.Background(), adminActor, equipment.CreateEquipmentDTO{CategoryID: 1, BrandID: ptr(uint(2))})
		assert.ErrorIs(t, err, ErrBrandNotFound)
	})
	t.Run("assignee", func(t *testing.T) {
		svc, m := setupEquipmentServiceMocks(t)
		m.equipment.EXPECT().GetCategoryByID(gomock.Any(), uint(1)).Return(equipment.Category{ID: 1}, nil)
		m.user.EXPECT().GetUserByID(gomock.Any(), uint(9)).Return(user.User{}, gorm.ErrRecordNotFound)

		_, err := svc.CreateEquipment(context.Background(), adminActor, equipment.CreateEquipmentDTO{CategoryID: 1, AssignedToID: ptr(uint(9))})
		assert.ErrorIs(t, err, ErrAssigneeNotFound)
	})
}

func TestUpdateEquipment_ClearsAssignee(t *testing.T) {
	svc, m := setupEquipmentServiceMocks(t)
	ctx := context.Background()

	m.equipment.EXPECT().GetEquipmentByID(ctx, uint(8)).Return(equipment.Equipment{ID: 8, CategoryID: 1, AssignedToID: ptr(uint(3))}, nil)
	m.equipment.EXPECT().GetCategoryByID(ctx, uint(1)).Return(equipment.Category{ID: 1}, nil)
	m.equipment.EXPECT().UpdateEquipment(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *equipment.Equipment) error {
		assert.Nil(t, e.AssignedToID)
		assert.Equal(t, equipment.ConditionDamaged, e.Condition)
		return nil
	})
	m.equipment.EXPECT().GetEquipmentByID(ctx, uint(8)).Return(equipment.Equipment{ID: 8}, nil)

	_, err := svc.UpdateEquipment(ctx, staffActor, 8, equipment.UpdateEquipmentDTO{
		AssignedToID: ptr(uint(0)),
		Condition:    ptr(equipment.ConditionDamaged),
	})
	assert.NoError(t, err)
}

func TestDeleteEquipment_InUse(t *testing.T) {
	svc, m := setupEquipmentServiceMocks(t)
	ctx := context.Background()
	m.equipment.EXPECT().GetEquipmentByID(ctx, uint(8)).Return(equipment.Equipment{ID: 8}, nil)
	m.ticket.EXPECT().CountTicketsByEquipment(ctx, uint(8)).Return(int64(1), nil)

	assert.ErrorIs(t, svc.DeleteEquipment(ctx, adminActor, 8), ErrEquipmentInUse)
}

func TestDeleteEquipment_Missing(t *testing.T) {
	svc, m := setupEquipmentServiceMocks(t)
	ctx := context.Background()
	m.equipment.EXPECT().GetEquipmentByID(ctx, uint(8)).Return(equipment.Equipment{}, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteEquipment(ctx, adminActor, 8), ErrEquipmentNotFound)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	svc, m := setupEquipmentServiceMocks(t)
	ctx := context.Background()
	m.equipment.EXPECT().CreateCategory(ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.CreateCategory(ctx, adminActor, equipment.CreateCategoryDTO{Name: "Laptops", CategoryType: equipment.CategoryHardware})
	assert.ErrorIs(t, err, ErrCategoryTaken)
}

func TestCreateBrand_Duplicate(t *testing.T) {
	svc, m := setupEquipmentServiceMocks(t)
	ctx := context.Background()
	m.equipment.EXPECT().CreateBrand(ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.CreateBrand(ctx, adminActor, equipment.CreateBrandDTO{Name: "Dell"})
	assert.ErrorIs(t, err, ErrBrandTaken)
}
