package equipment

import "time"

type CreateEquipmentDTO struct {
	Name            string     `json:"name" binding:"required,max=150"`
	SerialNumber    string     `json:"serialNumber" binding:"required,max=100"`
	Description     *string    `json:"description"`
	CategoryID      uint       `json:"categoryId" binding:"required"`
	BrandID         *uint      `json:"brandId"`
	Condition       *Condition `json:"condition" binding:"omitempty,oneof=NEW FUNCTIONAL DAMAGED IN_REPAIR OUT_OF_SERVICE"`
	PurchaseDate    *time.Time `json:"purchaseDate"`
	PurchasePrice   *float64   `json:"purchasePrice" binding:"omitempty,gte=0"`
	WarrantyEndDate *time.Time `json:"warrantyEndDate"`
	AssignedToID    *uint      `json:"assignedToId"`
}

type UpdateEquipmentDTO struct {
	Name            *string    `json:"name" binding:"omitempty,max=150"`
	SerialNumber    *string    `json:"serialNumber" binding:"omitempty,max=100"`
	Description     *string    `json:"description"`
	CategoryID      *uint      `json:"categoryId"`
	BrandID         *uint      `json:"brandId"`
	Condition       *Condition `json:"condition" binding:"omitempty,oneof=NEW FUNCTIONAL DAMAGED IN_REPAIR OUT_OF_SERVICE"`
	PurchaseDate    *time.Time `json:"purchaseDate"`
	PurchasePrice   *float64   `json:"purchasePrice" binding:"omitempty,gte=0"`
	WarrantyEndDate *time.Time `json:"warrantyEndDate"`
	// AssignedToID of 0 clears the assignment.
	AssignedToID *uint `json:"assignedToId"`
}

type CreateCategoryDTO struct {
	Name         string       `json:"name" binding:"required,max=100"`
	CategoryType CategoryType `json:"categoryType" binding:"required,oneof=HARDWARE SOFTWARE"`
}

type CreateBrandDTO struct {
	Name string `json:"name" binding:"required,max=100"`
}

type ListFilter struct {
	CategoryID   *uint
	BrandID      *uint
	Condition    *Condition
	AssignedToID *uint
	Search       string
}
