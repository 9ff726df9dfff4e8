package comment

import (
	"time"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
)

type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	ContentHTML string    `json:"contentHtml" gorm:"type:text"`
	TicketID    uint      `json:"ticketId" gorm:"not null;index"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	User        user.User `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
