package utils

import (
	"encoding/json"
	"log/slog"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/audit"
)

// NewAuditLog snapshots before/after as JSON. Marshal failures are logged and
// leave the corresponding column empty.
func NewAuditLog(
	userID uint,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
) *audit.AuditLog {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			slog.Warn("audit marshal old data", "error", err, "resource_type", resourceType)
			oldData = nil
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			slog.Warn("audit marshal new data", "error", err, "resource_type", resourceType)
			newData = nil
		}
	}

	return &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}
}
