package impl

import (
	"testing"

	"solarjuice/internal/domain/entity"
	domainerrors "solarjuice/internal/domain/errors"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/infra/persistence/memory"
	"solarjuice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRegistrationService(t *testing.T) (usecase.RegistrationUsecase, *testEnv) {
	t.Helper()

	env := newTestEnv(t)
	svc := NewRegistrationService(RegistrationServiceParams{
		RegistrationRepo: env.registrations,
		TxManager:        env.txManager,
		Effects:          env.effects,
		Clock:            env.clock,
		Logger:           env.logger,
	})

	return svc, env
}

func submitTestRegistration(t *testing.T, svc usecase.RegistrationUsecase, machineID *uuid.UUID) *entity.ShopRegistration {
	t.Helper()

	registration, err := svc.Submit(t.Context(), memory.SeedShopkeeper1ID, &usecase.SubmitRegistrationInput{
		ShopName:  "Cane Corner",
		Address:   "1 Cane Rd, Delhi",
		Location:  entity.Location{Lat: 28.60, Lng: 77.20},
		MachineID: machineID,
	})
	require.NoError(t, err)

	return registration
}

func TestRegistrationService_Submit(t *testing.T) {
	svc, env := createTestRegistrationService(t)

	registration := submitTestRegistration(t, svc, nil)
	assert.Equal(t, entity.RegistrationPending, registration.Status)
	assert.Equal(t, env.clock.Now(), registration.CreatedAt)

	toasts := env.notifier.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Registration submitted", toasts[0].Title)
	assert.Equal(t, "Your shop registration has been submitted for approval", toasts[0].Description)

	events := env.publisher.events()
	require.Len(t, events, 1)
	assert.Equal(t, service.EventRegistrationSubmitted, events[0].Type)

	_, err := svc.Submit(t.Context(), memory.SeedShopkeeper1ID, &usecase.SubmitRegistrationInput{Address: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRegistrationService_ListRegistrations(t *testing.T) {
	svc, _ := createTestRegistrationService(t)
	submitTestRegistration(t, svc, nil)

	all, err := svc.ListRegistrations(t.Context(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending := entity.RegistrationPending
	list, err := svc.ListRegistrations(t.Context(), &pending)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	approved := entity.RegistrationApproved
	list, err = svc.ListRegistrations(t.Context(), &approved)
	require.NoError(t, err)
	assert.Empty(t, list)

	mine, err := svc.ListMyRegistrations(t.Context(), memory.SeedShopkeeper2ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, memory.SeedRegistrationID, mine[0].ID)

	bogus := entity.RegistrationStatus("archived")
	_, err = svc.ListRegistrations(t.Context(), &bogus)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRegistrationService_Approve_DefaultMachine(t *testing.T) {
	svc, env := createTestRegistrationService(t)
	registration := submitTestRegistration(t, svc, nil)

	result, err := svc.Approve(t.Context(), memory.SeedAdminID, registration.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.RegistrationApproved, result.Registration.Status)
	require.NotNil(t, result.Registration.ReviewedBy)
	assert.Equal(t, memory.SeedAdminID, *result.Registration.ReviewedBy)

	assert.True(t, result.Shop.IsApproved)
	assert.Zero(t, result.Shop.Rating)
	assert.Equal(t, "Cane Corner", result.Shop.Name)
	assert.Equal(t, memory.SeedShopkeeper1ID, result.Shop.OwnerID)

	require.NotNil(t, result.Machine)
	assert.Equal(t, entity.NewDefaultMachine(result.Machine.ID, result.Shop.ID), *result.Machine)
	require.NotNil(t, result.Shop.MachineID)
	assert.Equal(t, result.Machine.ID, *result.Shop.MachineID)

	stored, err := env.machines.FindByShopID(t.Context(), result.Shop.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Machine.ID, stored.ID)

	shops, err := env.shops.ListApproved(t.Context())
	require.NoError(t, err)
	assert.Len(t, shops, 3)

	_, err = svc.Approve(t.Context(), memory.SeedAdminID, registration.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotPending)

	shops, err = env.shops.ListApproved(t.Context())
	require.NoError(t, err)
	assert.Len(t, shops, 3, "a failed approval writes nothing")
}

func TestRegistrationService_Approve_ExistingMachine(t *testing.T) {
	svc, env := createTestRegistrationService(t)
	registration := submitTestRegistration(t, svc, &memory.SeedMachine2ID)

	result, err := svc.Approve(t.Context(), memory.SeedAdminID, registration.ID)
	require.NoError(t, err)

	require.NotNil(t, result.Machine)
	assert.Equal(t, memory.SeedMachine2ID, result.Machine.ID)
	assert.Equal(t, result.Shop.ID, result.Machine.ShopID)
	assert.Equal(t, 45.0, result.Machine.BatteryPercentage)

	previous, err := env.shops.FindByID(t.Context(), memory.SeedShop2ID)
	require.NoError(t, err)
	assert.Nil(t, previous.MachineID)
}

func TestRegistrationService_Approve_MissingMachine(t *testing.T) {
	svc, env := createTestRegistrationService(t)

	result, err := svc.Approve(t.Context(), memory.SeedAdminID, memory.SeedRegistrationID)
	require.NoError(t, err)

	assert.Nil(t, result.Machine)
	require.NotNil(t, result.Shop.MachineID)
	assert.Equal(t, memory.SeedMachine3ID, *result.Shop.MachineID)
	assert.Equal(t, "Eco Juice Corner", result.Shop.Name)

	machines, err := env.machines.List(t.Context())
	require.NoError(t, err)
	assert.Len(t, machines, 2)
}

func TestRegistrationService_Reject(t *testing.T) {
	svc, env := createTestRegistrationService(t)

	registration, err := svc.Reject(t.Context(), memory.SeedAdminID, memory.SeedRegistrationID, " Incomplete address ")
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationRejected, registration.Status)
	assert.Equal(t, "Incomplete address", registration.RejectReason)
	require.NotNil(t, registration.ReviewedAt)
	assert.Equal(t, env.clock.Now(), *registration.ReviewedAt)

	toasts := env.notifier.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, memory.SeedShopkeeper2ID, toasts[0].RecipientID)

	_, err = svc.Reject(t.Context(), memory.SeedAdminID, memory.SeedRegistrationID, "")
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotPending)

	_, err = svc.Approve(t.Context(), memory.SeedAdminID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
}
