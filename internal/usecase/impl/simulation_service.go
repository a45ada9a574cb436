package impl

import (
	"context"
	"log/slog"
	"sync"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/domain/repository"
	"solarjuice/internal/domain/simulation"
	"solarjuice/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type simulationService struct {
	machineRepo repository.MachineRepository
	logger      *slog.Logger

	mu       sync.Mutex
	depleted map[uuid.UUID]bool
}

// SimulationServiceParams holds dependencies for SimulationService, injected by Fx.
type SimulationServiceParams struct {
	fx.In

	MachineRepo repository.MachineRepository
	Logger      *slog.Logger
}

// NewSimulationService creates a new simulation service instance
func NewSimulationService(params SimulationServiceParams) usecase.SimulationUsecase {
	return &simulationService{
		machineRepo: params.MachineRepo,
		logger:      params.Logger,
		depleted:    make(map[uuid.UUID]bool),
	}
}

// Step ticks every machine in a single store update.
func (s *simulationService) Step(ctx context.Context) ([]entity.Machine, error) {
	machines, err := s.machineRepo.UpdateAll(ctx, simulation.Tick)
	if err != nil {
		return nil, translate(err, "tick machines")
	}

	s.reportDepleted(machines)

	return machines, nil
}

// reportDepleted warns once each time a machine battery runs flat.
func (s *simulationService) reportDepleted(machines []entity.Machine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range machines {
		empty := m.BatteryPercentage <= 0
		if empty && !s.depleted[m.ID] {
			s.logger.Warn("machine battery depleted",
				slog.String("machine_id", m.ID.String()),
				slog.String("shop_id", m.ShopID.String()),
			)
		}
		if empty {
			s.depleted[m.ID] = true
		} else {
			delete(s.depleted, m.ID)
		}
	}
}
