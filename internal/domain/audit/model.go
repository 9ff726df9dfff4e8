package audit

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"userId" gorm:"index"`
	Action       string         `json:"action" gorm:"size:16;not null;index"`
	ResourceType string         `json:"resourceType" gorm:"size:32;not null;index"`
	ResourceID   string         `json:"resourceId" gorm:"size:64"`
	OldData      datatypes.JSON `json:"oldData,omitempty"`
	NewData      datatypes.JSON `json:"newData,omitempty"`
	IPAddress    string         `json:"ipAddress" gorm:"size:64"`
	UserAgent    string         `json:"userAgent" gorm:"size:255"`
	Description  string         `json:"description" gorm:"type:text"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"index"`
}

type QueryParams struct {
	UserID       *uint
	ResourceType *string
	Action       *string
	StartTime    *time.Time
	EndTime      *time.Time
}
