package user

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type CreateUserInput struct {
	FirstName string  `json:"firstName" binding:"required,max=100"`
	LastName  string  `json:"lastName" binding:"required,max=100"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
	RoleID    uint    `json:"roleId" binding:"required"`
}

type UpdateUserInput struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
	RoleID    *uint   `json:"roleId"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
}

type ListFilter struct {
	RoleID *uint
	Search string
}

type TokenOutput struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
