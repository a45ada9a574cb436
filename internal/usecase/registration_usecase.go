package usecase

import (
	"context"

	"solarjuice/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitRegistrationInput represents a shopkeeper's application
type SubmitRegistrationInput struct {
	ShopName  string          `json:"shop_name"`
	Address   string          `json:"address"`
	Location  entity.Location `json:"location"`
	MachineID *uuid.UUID      `json:"machine_id,omitempty"`
}

// ApprovalResult is everything an approval produced
type ApprovalResult struct {
	Registration *entity.ShopRegistration `json:"registration"`
	Shop         *entity.Shop             `json:"shop"`
	Machine      *entity.Machine          `json:"machine,omitempty"` // Nil when the referenced machine does not exist
}

// RegistrationUsecase defines the shop registration workflow
type RegistrationUsecase interface {
	Submit(ctx context.Context, shopkeeperID uuid.UUID, input *SubmitRegistrationInput) (*entity.ShopRegistration, error)

	// ListRegistrations is the admin view. A nil status lists everything.
	ListRegistrations(ctx context.Context, status *entity.RegistrationStatus) ([]*entity.ShopRegistration, error)
	ListMyRegistrations(ctx context.Context, shopkeeperID uuid.UUID) ([]*entity.ShopRegistration, error)

	// Approve and Reject only act on pending registrations.
	Approve(ctx context.Context, adminID, registrationID uuid.UUID) (*ApprovalResult, error)
	Reject(ctx context.Context, adminID, registrationID uuid.UUID, reason string) (*entity.ShopRegistration, error)
}
