package project

type CreateProjectDTO struct {
	Name          string  `json:"name" binding:"required,max=150"`
	Description   *string `json:"description"`
	ProjectType   Type    `json:"projectType" binding:"required,oneof=INTERNAL EXTERNAL"`
	ClientID      *uint   `json:"clientId"`
	ManagerIDs    []uint  `json:"managerIds" binding:"omitempty,dive,gt=0"`
	TechnicianIDs []uint  `json:"technicianIds" binding:"omitempty,dive,gt=0"`
}

type UpdateProjectDTO struct {
	Name        *string `json:"name" binding:"omitempty,max=150"`
	Description *string `json:"description"`
	ProjectType *Type   `json:"projectType" binding:"omitempty,oneof=INTERNAL EXTERNAL"`
	// ClientID of 0 clears the client. Switching to INTERNAL clears it too.
	ClientID      *uint   `json:"clientId"`
	ManagerIDs    *[]uint `json:"managerIds"`
	TechnicianIDs *[]uint `json:"technicianIds"`
}

type ListFilter struct {
	ProjectType *Type
	Search      string
}

// Scope restricts project queries to what a given user may see.
// A zero Scope means no restriction.
type Scope struct {
	ManagerID    *uint
	TechnicianID *uint
	ClientID     *uint
}
