package notification

import (
	"time"

	"gorm.io/datatypes"
)

type Type string

const (
	TypeTicketCreated       Type = "TICKET_CREATED"
	TypeTicketAssigned      Type = "TICKET_ASSIGNED"
	TypeTicketStatusChanged Type = "TICKET_STATUS_CHANGED"
	TypeCommentAdded        Type = "COMMENT_ADDED"
	TypeProjectAssigned     Type = "PROJECT_ASSIGNED"
)

// EventNewNotification is the websocket event name clients listen for.
const EventNewNotification = "newNotification"

// Notification is one recipient's copy of an event.
type Notification struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"userId" gorm:"not null;index"`
	Type      Type           `json:"type" gorm:"size:32;not null"`
	Message   string         `json:"message" gorm:"size:500;not null"`
	TicketID  *uint          `json:"ticketId" gorm:"index"`
	ProjectID *uint          `json:"projectId" gorm:"index"`
	Data      datatypes.JSON `json:"data,omitempty"`
	IsRead    bool           `json:"isRead" gorm:"not null;default:false;index"`
	ReadAt    *time.Time     `json:"readAt"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Payload is what gets pushed over the realtime channel. It carries no
// recipient-specific ids so one payload can be broadcast to a whole room.
type Payload struct {
	Type      Type           `json:"type"`
	Message   string         `json:"message"`
	TicketID  *uint          `json:"ticketId,omitempty"`
	ProjectID *uint          `json:"projectId,omitempty"`
	Data      datatypes.JSON `json:"data,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// For builds the persisted copy of p for a single recipient.
func (p Payload) For(userID uint) Notification {
	return Notification{
		UserID:    userID,
		Type:      p.Type,
		Message:   p.Message,
		TicketID:  p.TicketID,
		ProjectID: p.ProjectID,
		Data:      p.Data,
		CreatedAt: p.CreatedAt,
	}
}

type ListFilter struct {
	UnreadOnly bool
}
