package equipment

import (
	"time"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
)

type Condition string

const (
	ConditionNew          Condition = "NEW"
	ConditionFunctional   Condition = "FUNCTIONAL"
	ConditionDamaged      Condition = "DAMAGED"
	ConditionInRepair     Condition = "IN_REPAIR"
	ConditionOutOfService Condition = "OUT_OF_SERVICE"
)

var AllConditions = []Condition{
	ConditionNew, ConditionFunctional, ConditionDamaged, ConditionInRepair, ConditionOutOfService,
}

type CategoryType string

const (
	CategoryHardware CategoryType = "HARDWARE"
	CategorySoftware CategoryType = "SOFTWARE"
)

type Category struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Name         string       `json:"name" gorm:"size:100;uniqueIndex;not null"`
	CategoryType CategoryType `json:"categoryType" gorm:"size:16;not null"`
}

func (Category) TableName() string {
	return "equipment_categories"
}

type Brand struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null"`
}

func (Brand) TableName() string {
	return "equipment_brands"
}

type Equipment struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" gorm:"size:150;not null"`
	SerialNumber    string     `json:"serialNumber" gorm:"size:100;uniqueIndex;not null"`
	Description     string     `json:"description" gorm:"type:text"`
	CategoryID      uint       `json:"categoryId" gorm:"not null;index"`
	Category        Category   `json:"category" gorm:"foreignKey:CategoryID"`
	BrandID         *uint      `json:"brandId" gorm:"index"`
	Brand           *Brand     `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Condition       Condition  `json:"condition" gorm:"size:20;not null;default:'NEW'"`
	PurchaseDate    *time.Time `json:"purchaseDate"`
	PurchasePrice   *float64   `json:"purchasePrice"`
	WarrantyEndDate *time.Time `json:"warrantyEndDate"`
	AssignedToID    *uint      `json:"assignedToId" gorm:"index"`
	AssignedTo      *user.User `json:"assignedTo,omitempty" gorm:"foreignKey:AssignedToID"`
	CreatedByID     uint       `json:"createdById"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (Equipment) TableName() string {
	return "equipment"
}
