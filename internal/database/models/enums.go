package models

// RegistrationStatus defines the lifecycle of a team registration request
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// IsValid checks if the RegistrationStatus is valid
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusRejected:
		return true
	}
	return false
}

// ApplicationStatus defines the types of application states
type ApplicationStatus string

const (
	ApplicationStatusActive   ApplicationStatus = "active"
	ApplicationStatusInactive ApplicationStatus = "inactive"
	ApplicationStatusArchived ApplicationStatus = "archived"
	ApplicationStatusDeleted  ApplicationStatus = "deleted"
)

// IsValid checks if the ApplicationStatus is valid
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusActive, ApplicationStatusInactive, ApplicationStatusArchived, ApplicationStatusDeleted:
		return true
	}
	return false
}

// SubApplicationStatus defines the types of sub-application states
type SubApplicationStatus string

const (
	SubApplicationStatusActive   SubApplicationStatus = "active"
	SubApplicationStatusInactive SubApplicationStatus = "inactive"
	SubApplicationStatusArchived SubApplicationStatus = "archived"
)

// IsValid checks if the SubApplicationStatus is valid
func (s SubApplicationStatus) IsValid() bool {
	switch s {
	case SubApplicationStatusActive, SubApplicationStatusInactive, SubApplicationStatusArchived:
		return true
	}
	return false
}

// TurnoverStatus defines the lifecycle of a turnover
type TurnoverStatus string

const (
	TurnoverStatusDraft     TurnoverStatus = "draft"
	TurnoverStatusActive    TurnoverStatus = "active"
	TurnoverStatusCompleted TurnoverStatus = "completed"
	TurnoverStatusArchived  TurnoverStatus = "archived"
)

// IsValid checks if the TurnoverStatus is valid
func (s TurnoverStatus) IsValid() bool {
	switch s {
	case TurnoverStatusDraft, TurnoverStatusActive, TurnoverStatusCompleted, TurnoverStatusArchived:
		return true
	}
	return false
}

// EntryType defines the types of turnover entries
type EntryType string

const (
	EntryTypeRFC        EntryType = "rfc"
	EntryTypeINC        EntryType = "inc"
	EntryTypeAlert      EntryType = "alert"
	EntryTypeMIM        EntryType = "mim"
	EntryTypeEmailSlack EntryType = "email_slack"
	EntryTypeFYI        EntryType = "fyi"
)

// IsValid checks if the EntryType is valid
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeRFC, EntryTypeINC, EntryTypeAlert, EntryTypeMIM, EntryTypeEmailSlack, EntryTypeFYI:
		return true
	}
	return false
}

// EntryPriority defines the flagging states of a turnover entry
type EntryPriority string

const (
	EntryPriorityNormal      EntryPriority = "normal"
	EntryPriorityImportant   EntryPriority = "important"
	EntryPriorityFlagged     EntryPriority = "flagged"
	EntryPriorityNeedsAction EntryPriority = "needs_action"
	EntryPriorityLongPending EntryPriority = "long_pending"
)

// IsValid checks if the EntryPriority is valid
func (p EntryPriority) IsValid() bool {
	switch p {
	case EntryPriorityNormal, EntryPriorityImportant, EntryPriorityFlagged, EntryPriorityNeedsAction, EntryPriorityLongPending:
		return true
	}
	return false
}

// SyncStatus records the outcome of the last Central API sync for an application
type SyncStatus string

const (
	SyncStatusNever   SyncStatus = "never"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

// IsValid checks if the SyncStatus is valid
func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncStatusNever, SyncStatusSuccess, SyncStatusFailed:
		return true
	}
	return false
}
