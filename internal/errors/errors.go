package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a state-transition conflict, such as reviewing a
// registration request that is no longer pending
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ExternalError represents a failure of an external collaborator (Central API)
type ExternalError struct {
	System  string
	Message string
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s: %s", e.System, e.Message)
}

// Entity Not Found Errors
var (
	ErrTeamNotFound                = &NotFoundError{Entity: "team"}
	ErrRegistrationRequestNotFound = &NotFoundError{Entity: "registration request"}
	ErrApplicationNotFound         = &NotFoundError{Entity: "application"}
	ErrSubApplicationNotFound      = &NotFoundError{Entity: "sub-application"}
	ErrTurnoverNotFound            = &NotFoundError{Entity: "turnover"}
	ErrTurnoverEntryNotFound       = &NotFoundError{Entity: "turnover entry"}
	ErrDraftNotFound               = &NotFoundError{Entity: "turnover draft"}
	ErrSnapshotNotFound            = &NotFoundError{Entity: "turnover snapshot"}
	ErrLinkNotFound                = &NotFoundError{Entity: "link"}
	ErrLinkCategoryNotFound        = &NotFoundError{Entity: "link category"}
	ErrLinkTagNotFound             = &NotFoundError{Entity: "link tag"}
	ErrToolSettingsNotFound        = &NotFoundError{Entity: "tool settings"}
)

// Already Exists Errors
var (
	ErrTeamExists           = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrRegistrationPending  = &AlreadyExistsError{Entity: "registration request", Context: "pending for this team name"}
	ErrTLAExists            = &AlreadyExistsError{Entity: "application", Context: "with this TLA in the team"}
	ErrSubApplicationExists = &AlreadyExistsError{Entity: "sub-application", Context: "with this name in the application"}
	ErrSnapshotExists       = &AlreadyExistsError{Entity: "turnover snapshot", Context: "for this scope and date"}
	ErrLinkTagExists        = &AlreadyExistsError{Entity: "link tag", Context: "with this name"}
)

// State / Business Logic Errors
var (
	ErrRequestNotPending = &ConflictError{Message: "registration request is not pending"}
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidEntryType  = errors.New("invalid entry type")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrNoEntryIDs        = errors.New("no entry ids provided")
	ErrTeamInactive      = errors.New("team is not active")
)

// External Dependency Errors
var (
	ErrCentralAPIUnavailable = &ExternalError{System: "central api", Message: "request failed"}
	ErrCentralAPIBadResponse = &ExternalError{System: "central api", Message: "malformed response"}
)

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsExternal checks if an error is an ExternalError
func IsExternal(err error) bool {
	var externalErr *ExternalError
	return errors.As(err, &externalErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewExternalError creates a new ExternalError
func NewExternalError(system, message string) error {
	return &ExternalError{System: system, Message: message}
}
