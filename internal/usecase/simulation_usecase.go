package usecase

import (
	"context"

	"solarjuice/internal/domain/entity"
)

// SimulationUsecase advances the battery simulation
type SimulationUsecase interface {
	// Step applies one tick to every machine and returns the new values.
	Step(ctx context.Context) ([]entity.Machine, error)
}
