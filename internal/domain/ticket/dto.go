package ticket

type CreateTicketDTO struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"required"`
	Type        Type      `json:"type" binding:"required,oneof=TECHNICAL_ISSUE NEW_FEATURE EQUIPMENT_ISSUE"`
	Priority    *Priority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	ProjectID   *uint     `json:"projectId"`
	EquipmentID *uint     `json:"equipmentId"`
}

type UpdateTicketDTO struct {
	Title         *string   `json:"title" binding:"omitempty,max=200"`
	Description   *string   `json:"description"`
	Priority      *Priority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	StatusID      *uint     `json:"statusId"`
	ManagerID     *uint     `json:"managerId"`
	TechnicianIDs *[]uint   `json:"technicianIds"`
}

type ListFilter struct {
	StatusID  *uint
	Type      *Type
	Priority  *Priority
	ProjectID *uint
}

// Scope restricts ticket queries to what a given user may see.
// A zero Scope means no restriction.
type Scope struct {
	// CreatedBy includes tickets created by this user.
	CreatedBy *uint
	// ManagedBy includes tickets managed by this user and tickets on projects they manage.
	ManagedBy *uint
	// AssignedTo includes tickets this user is assigned to.
	AssignedTo *uint
}

func (s Scope) IsZero() bool {
	return s.CreatedBy == nil && s.ManagedBy == nil && s.AssignedTo == nil
}
