package repository

import (
	"context"
	"strings"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/equipment"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=equipment.go -destination=mock/equipment_mock.go -package=mock

type EquipmentRepo interface {
	ListEquipment(ctx context.Context, filter equipment.ListFilter, page query.Page) ([]equipment.Equipment, int64, error)
	GetEquipmentByID(ctx context.Context, id uint) (equipment.Equipment, error)
	CreateEquipment(ctx context.Context, e *equipment.Equipment) error
	UpdateEquipment(ctx context.Context, e *equipment.Equipment) error
	DeleteEquipment(ctx context.Context, id uint) error

	ListCategories(ctx context.Context) ([]equipment.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (equipment.Category, error)
	CreateCategory(ctx context.Context, c *equipment.Category) error

	ListBrands(ctx context.Context) ([]equipment.Brand, error)
	GetBrandByID(ctx context.Context, id uint) (equipment.Brand, error)
	CreateBrand(ctx context.Context, b *equipment.Brand) error

	WithTx(tx *gorm.DB) EquipmentRepo
}

type DBEquipmentRepo struct {
	db *gorm.DB
}

func NewEquipmentRepo(db *gorm.DB) *DBEquipmentRepo {
	return &DBEquipmentRepo{
		db: db,
	}
}

func (r *DBEquipmentRepo) ListEquipment(ctx context.Context, filter equipment.ListFilter, page query.Page) ([]equipment.Equipment, int64, error) {
	q := r.db.WithContext(ctx).Model(&equipment.Equipment{})

	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		q = q.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.Condition != nil {
		q = q.Where("condition = ?", *filter.Condition)
	}
	if filter.AssignedToID != nil {
		q = q.Where("assigned_to_id = ?", *filter.AssignedToID)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(serial_number) LIKE ?)", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []equipment.Equipment
	err := q.Preload("Category").
		Preload("Brand").
		Preload("AssignedTo").
		Order("id DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&items).Error
	return items, total, err
}

func (r *DBEquipmentRepo) GetEquipmentByID(ctx context.Context, id uint) (equipment.Equipment, error) {
	var e equipment.Equipment
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Preload("AssignedTo").
		First(&e, id).Error
	return e, err
}

func (r *DBEquipmentRepo) CreateEquipment(ctx context.Context, e *equipment.Equipment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *DBEquipmentRepo) UpdateEquipment(ctx context.Context, e *equipment.Equipment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error
}

func (r *DBEquipmentRepo) DeleteEquipment(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&equipment.Equipment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBEquipmentRepo) ListCategories(ctx context.Context) ([]equipment.Category, error) {
	var out []equipment.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *DBEquipmentRepo) GetCategoryByID(ctx context.Context, id uint) (equipment.Category, error) {
	var c equipment.Category
	err := r.db.WithContext(ctx).First(&c, id).Error
	return c, err
}

func (r *DBEquipmentRepo) CreateCategory(ctx context.Context, c *equipment.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *DBEquipmentRepo) ListBrands(ctx context.Context) ([]equipment.Brand, error) {
	var out []equipment.Brand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *DBEquipmentRepo) GetBrandByID(ctx context.Context, id uint) (equipment.Brand, error) {
	var b equipment.Brand
	err := r.db.WithContext(ctx).First(&b, id).Error
	return b, err
}

func (r *DBEquipmentRepo) CreateBrand(ctx context.Context, b *equipment.Brand) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *DBEquipmentRepo) WithTx(tx *gorm.DB) EquipmentRepo {
	if tx == nil {
		return r
	}
	return &DBEquipmentRepo{
		db: tx,
	}
}
