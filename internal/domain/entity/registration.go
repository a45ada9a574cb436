package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus is the review state of a shop registration.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// IsValid checks if the RegistrationStatus is a declared value.
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationPending, RegistrationApproved, RegistrationRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the registration has been reviewed.
func (s RegistrationStatus) IsTerminal() bool {
	return s == RegistrationApproved || s == RegistrationRejected
}

// ShopRegistration is a shopkeeper's application to open a shop.
// No Shop exists until an admin approves it.
type ShopRegistration struct {
	ID           uuid.UUID          `json:"id"`
	ShopkeeperID uuid.UUID          `json:"shopkeeper_id"`
	ShopName     string             `json:"shop_name"`
	Address      string             `json:"address"`
	Location     Location           `json:"location"`
	MachineID    *uuid.UUID         `json:"machine_id,omitempty"` // Existing machine to install, if any.
	Status       RegistrationStatus `json:"status"`
	RejectReason string             `json:"reject_reason,omitempty"`
	ReviewedBy   *uuid.UUID         `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time         `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}
