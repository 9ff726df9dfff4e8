package application

import "github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"

// Actor is the authenticated caller of a service method.
type Actor struct {
	ID        uint
	Role      user.RoleName
	IP        string
	UserAgent string
}

func (a Actor) Is(role user.RoleName) bool {
	return a.Role == role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}
