package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop is an approved (or previously approved) juice stall.
// Shops only come into existence by approving a ShopRegistration.
type Shop struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	OwnerID    uuid.UUID  `json:"owner_id"`
	Location   Location   `json:"location"`
	Address    string     `json:"address"`
	Rating     float64    `json:"rating"`               // Static; nothing updates it.
	MachineID  *uuid.UUID `json:"machine_id,omitempty"` // The vending machine installed at this shop.
	IsApproved bool       `json:"is_approved"`
	CreatedAt  time.Time  `json:"created_at"`
}
