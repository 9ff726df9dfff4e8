package user

import "time"

type RoleName string

const (
	RoleAdmin      RoleName = "ADMIN"
	RoleStaff      RoleName = "STAFF"
	RoleTechnician RoleName = "TECHNICIAN"
	RoleClient     RoleName = "CLIENT"
)

// AllRoles lists the reference roles created at migration time.
var AllRoles = []RoleName{RoleAdmin, RoleStaff, RoleTechnician, RoleClient}

func (r RoleName) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleTechnician, RoleClient:
		return true
	}
	return false
}

type Role struct {
	ID   uint     `json:"id" gorm:"primaryKey"`
	Name RoleName `json:"name" gorm:"size:32;uniqueIndex;not null"`
}

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"size:100;not null"`
	LastName  string    `json:"lastName" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Phone     *string   `json:"phone,omitempty" gorm:"size:32"`
	RoleID    uint      `json:"roleId" gorm:"not null;index"`
	Role      Role      `json:"role" gorm:"foreignKey:RoleID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u User) HasRole(r RoleName) bool {
	return u.Role.Name == r
}
