// Package simulator runs the battery simulation in the background.
package simulator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"solarjuice/config"
	"solarjuice/internal/delivery"
	"solarjuice/internal/usecase"

	"github.com/facebookgo/clock"
	"go.uber.org/fx"
)

const defaultTickInterval = time.Second

type simulator struct {
	simulationUC usecase.SimulationUsecase
	clock        clock.Clock
	interval     time.Duration
	enabled      bool
	logger       *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// Params holds dependencies for the simulator, injected by Fx.
type Params struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	SimulationUC usecase.SimulationUsecase
	Clock        clock.Clock
	Logger       *slog.Logger
}

// New builds the simulator and registers its stop hook.
func New(params Params) delivery.Delivery {
	s := newSimulator(params.SimulationUC, params.Clock, params.Cfg.Simulation, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func newSimulator(uc usecase.SimulationUsecase, clk clock.Clock, cfg config.SimulationConfig, logger *slog.Logger) *simulator {
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = defaultTickInterval
	}

	return &simulator{
		simulationUC: uc,
		clock:        clk,
		interval:     interval,
		enabled:      cfg.Enabled,
		logger:       logger,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Serve ticks every machine once per interval until stopped or ctx ends.
func (s *simulator) Serve(ctx context.Context) error {
	defer close(s.doneCh)

	if !s.enabled {
		s.logger.Info("Battery simulation disabled")
		return nil
	}

	ticker := s.clock.Ticker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Starting battery simulation", slog.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			machines, err := s.simulationUC.Step(ctx)
			if err != nil {
				s.logger.Error("Simulation tick failed", slog.Any("error", err))
				continue
			}
			s.logger.Debug("Simulation tick", slog.Int("machines", len(machines)))
		}
	}
}

func (s *simulator) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	s.logger.Info("Stopping battery simulation")

	select {
	case <-s.doneCh:
	case <-ctx.Done():
	}

	return nil
}
