package application

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to status codes with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrRoleNotFound      = fmt.Errorf("%w: role does not exist", ErrValidation)
	ErrEmailTaken        = fmt.Errorf("%w: email already in use", ErrConflict)
	ErrIncorrectPassword = fmt.Errorf("%w: old password is incorrect", ErrValidation)
	ErrCannotDeleteSelf  = fmt.Errorf("%w: you cannot delete your own account", ErrForbidden)
	ErrRoleChange        = fmt.Errorf("%w: only an admin can change roles", ErrForbidden)
	ErrPasswordChange    = fmt.Errorf("%w: use the change password endpoint", ErrForbidden)
	ErrUserInUse         = fmt.Errorf("%w: user is still referenced by projects, tickets, comments or equipment", ErrConflict)

	ErrProjectNotFound  = fmt.Errorf("project %w", ErrNotFound)
	ErrClientRequired   = fmt.Errorf("%w: external projects require a client", ErrValidation)
	ErrClientNotAllowed = fmt.Errorf("%w: internal projects cannot have a client", ErrValidation)
	ErrManagerRequired  = fmt.Errorf("%w: external projects require at least one manager", ErrValidation)
	ErrInvalidClient    = fmt.Errorf("%w: client must be a user with role CLIENT", ErrValidation)
	ErrInvalidManager   = fmt.Errorf("%w: managers must be users with role STAFF", ErrValidation)
	ErrInvalidTech      = fmt.Errorf("%w: technicians must be users with role TECHNICIAN", ErrValidation)
	ErrProjectInUse     = fmt.Errorf("%w: project still has tickets", ErrConflict)

	ErrEquipmentNotFound = fmt.Errorf("equipment %w", ErrNotFound)
	ErrCategoryNotFound  = fmt.Errorf("%w: equipment category does not exist", ErrValidation)
	ErrBrandNotFound     = fmt.Errorf("%w: equipment brand does not exist", ErrValidation)
	ErrAssigneeNotFound  = fmt.Errorf("%w: assigned user does not exist", ErrValidation)
	ErrSerialTaken       = fmt.Errorf("%w: serial number already in use", ErrConflict)
	ErrCategoryTaken     = fmt.Errorf("%w: category already exists", ErrConflict)
	ErrBrandTaken        = fmt.Errorf("%w: brand already exists", ErrConflict)
	ErrEquipmentInUse    = fmt.Errorf("%w: equipment still has tickets", ErrConflict)

	ErrTicketNotFound      = fmt.Errorf("ticket %w", ErrNotFound)
	ErrStatusNotFound      = fmt.Errorf("%w: ticket status does not exist", ErrValidation)
	ErrProjectRequired     = fmt.Errorf("%w: this ticket type requires a project", ErrValidation)
	ErrEquipmentRequired   = fmt.Errorf("%w: equipment issues require equipment", ErrValidation)
	ErrTicketTargetInvalid = fmt.Errorf("%w: ticket must reference exactly what its type requires", ErrValidation)
	ErrTicketFieldDenied   = fmt.Errorf("%w: you cannot change this field on the ticket", ErrForbidden)
	ErrTicketNotOpen       = fmt.Errorf("%w: only open tickets can be changed by their creator", ErrForbidden)

	ErrCommentNotFound      = fmt.Errorf("comment %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)
	ErrFileRequired         = fmt.Errorf("%w: file is required", ErrValidation)
	ErrFileTooLarge         = fmt.Errorf("%w: file exceeds the upload limit", ErrValidation)
)
