package project

import (
	"time"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
)

// Type decides which fields a project must carry and how its tickets get routed.
type Type string

const (
	TypeInternal Type = "INTERNAL"
	TypeExternal Type = "EXTERNAL"
)

func (t Type) IsValid() bool {
	return t == TypeInternal || t == TypeExternal
}

type Project struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"size:150;not null"`
	Description string      `json:"description" gorm:"type:text"`
	ProjectType Type        `json:"projectType" gorm:"size:16;not null;index"`
	ClientID    *uint       `json:"clientId" gorm:"index"`
	Client      *user.User  `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Managers    []user.User `json:"managers" gorm:"many2many:project_managers;"`
	Technicians []user.User `json:"technicians" gorm:"many2many:project_technicians;"`
	CreatedByID uint        `json:"createdById"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// HasManager reports whether uid is one of the project's managers.
func (p *Project) HasManager(uid uint) bool {
	for _, m := range p.Managers {
		if m.ID == uid {
			return true
		}
	}
	return false
}

func (p *Project) HasTechnician(uid uint) bool {
	for _, t := range p.Technicians {
		if t.ID == uid {
			return true
		}
	}
	return false
}

func (p *Project) IsClient(uid uint) bool {
	return p.ClientID != nil && *p.ClientID == uid
}

// PrimaryManager returns the manager with the lowest id, the one external tickets are routed to.
func (p *Project) PrimaryManager() *user.User {
	var primary *user.User
	for i := range p.Managers {
		if primary == nil || p.Managers[i].ID < primary.ID {
			primary = &p.Managers[i]
		}
	}
	return primary
}

// MemberIDs returns manager and technician ids, without duplicates.
func (p *Project) MemberIDs() []uint {
	seen := make(map[uint]struct{})
	var ids []uint
	for _, list := range [][]user.User{p.Managers, p.Technicians} {
		for _, u := range list {
			if _, ok := seen[u.ID]; ok {
				continue
			}
			seen[u.ID] = struct{}{}
			ids = append(ids, u.ID)
		}
	}
	return ids
}
