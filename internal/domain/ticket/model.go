package ticket

import (
	"time"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/equipment"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
)

type StatusName string

const (
	StatusOpen       StatusName = "OPEN"
	StatusInProgress StatusName = "IN_PROGRESS"
	StatusResolved   StatusName = "RESOLVED"
	StatusClosed     StatusName = "CLOSED"
)

var AllStatuses = []StatusName{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

type Type string

const (
	TypeTechnicalIssue Type = "TECHNICAL_ISSUE"
	TypeNewFeature     Type = "NEW_FEATURE"
	TypeEquipmentIssue Type = "EQUIPMENT_ISSUE"
)

// NeedsProject reports whether tickets of this type must reference a project.
func (t Type) NeedsProject() bool {
	return t == TypeTechnicalIssue || t == TypeNewFeature
}

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

type Status struct {
	ID   uint       `json:"id" gorm:"primaryKey"`
	Name StatusName `json:"name" gorm:"size:32;uniqueIndex;not null"`
}

func (Status) TableName() string {
	return "ticket_statuses"
}

type Ticket struct {
	ID              uint                 `json:"id" gorm:"primaryKey"`
	Title           string               `json:"title" gorm:"size:200;not null"`
	Description     string               `json:"description" gorm:"type:text"`
	DescriptionHTML string               `json:"descriptionHtml" gorm:"type:text"`
	Type            Type                 `json:"type" gorm:"size:32;not null;index"`
	Priority        Priority             `json:"priority" gorm:"size:16;not null;default:'MEDIUM';index"`
	StatusID        uint                 `json:"statusId" gorm:"not null;index"`
	Status          Status               `json:"status" gorm:"foreignKey:StatusID"`
	ProjectID       *uint                `json:"projectId" gorm:"index"`
	Project         *project.Project     `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	EquipmentID     *uint                `json:"equipmentId" gorm:"index"`
	Equipment       *equipment.Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
	CreatedByID     uint                 `json:"createdById" gorm:"not null;index"`
	CreatedBy       user.User            `json:"createdBy" gorm:"foreignKey:CreatedByID"`
	ManagerID       *uint                `json:"managerId" gorm:"index"`
	Manager         *user.User           `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	AssignedUsers   []user.User          `json:"assignedUsers" gorm:"many2many:ticket_assignees;"`
	ResolvedAt      *time.Time           `json:"resolvedAt"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func (t *Ticket) IsManager(uid uint) bool {
	return t.ManagerID != nil && *t.ManagerID == uid
}

func (t *Ticket) IsAssigned(uid uint) bool {
	for _, u := range t.AssignedUsers {
		if u.ID == uid {
			return true
		}
	}
	return false
}

// ParticipantIDs returns creator, manager and assigned technicians, deduplicated.
func (t *Ticket) ParticipantIDs() []uint {
	seen := map[uint]struct{}{}
	var ids []uint
	add := func(id uint) {
		if id == 0 {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	add(t.CreatedByID)
	if t.ManagerID != nil {
		add(*t.ManagerID)
	}
	for _, u := range t.AssignedUsers {
		add(u.ID)
	}
	return ids
}

// Attachment is a file stored in object storage and linked to a ticket.
type Attachment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TicketID     uint      `json:"ticketId" gorm:"not null;index"`
	FileName     string    `json:"fileName" gorm:"size:255;not null"`
	ObjectKey    string    `json:"-" gorm:"size:255;uniqueIndex;not null"`
	ContentType  string    `json:"contentType" gorm:"size:128"`
	Size         int64     `json:"size"`
	UploadedByID uint      `json:"uploadedById"`
	CreatedAt    time.Time `json:"createdAt"`
	URL          string    `json:"url,omitempty" gorm:"-"`
}

func (Attachment) TableName() string {
	return "ticket_attachments"
}
