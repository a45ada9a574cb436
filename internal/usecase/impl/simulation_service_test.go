package impl

import (
	"testing"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationService_Step(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSimulationService(SimulationServiceParams{
		MachineRepo: env.machines,
		Logger:      env.logger,
	})

	machines, err := svc.Step(t.Context())
	require.NoError(t, err)
	require.Len(t, machines, 2)

	byID := make(map[string]entity.Machine)
	for _, m := range machines {
		byID[m.ID.String()] = m
	}

	// Machine 1: +0.05*0.8 charge, -0.001 payment, -0.005 medium fan.
	assert.InDelta(t, 75.034, byID[memory.SeedMachine1ID.String()].BatteryPercentage, 1e-9)
	// Machine 2: +0.05*0.6 charge, -0.001 payment, -0.002 light, -0.003 low fan.
	assert.InDelta(t, 45.024, byID[memory.SeedMachine2ID.String()].BatteryPercentage, 1e-9)

	stored, err := env.machines.FindByID(t.Context(), memory.SeedMachine1ID)
	require.NoError(t, err)
	assert.InDelta(t, 75.034, stored.BatteryPercentage, 1e-9)
}

func TestSimulationService_Step_ClampsAtZero(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSimulationService(SimulationServiceParams{
		MachineRepo: env.machines,
		Logger:      env.logger,
	})

	_, err := env.machines.Update(t.Context(), memory.SeedMachine2ID, func(m *entity.Machine) error {
		m.BatteryPercentage = 0.001
		m.IsCharging = false
		return nil
	})
	require.NoError(t, err)

	for range 3 {
		_, err = svc.Step(t.Context())
		require.NoError(t, err)
	}

	machine, err := env.machines.FindByID(t.Context(), memory.SeedMachine2ID)
	require.NoError(t, err)
	assert.Zero(t, machine.BatteryPercentage)
}
