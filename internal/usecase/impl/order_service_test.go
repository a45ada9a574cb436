package impl

import (
	"testing"
	"time"

	"solarjuice/internal/domain/entity"
	domainerrors "solarjuice/internal/domain/errors"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/infra/persistence/memory"
	"solarjuice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrderService(t *testing.T, requireBattery bool) (usecase.OrderUsecase, *testEnv) {
	t.Helper()

	env := newTestEnv(t)
	env.config.Orders.RequireBattery = requireBattery

	svc := NewOrderService(OrderServiceParams{
		OrderRepo:   env.orders,
		ShopRepo:    env.shops,
		MachineRepo: env.machines,
		Effects:     env.effects,
		Clock:       env.clock,
		Config:      env.config,
		Logger:      env.logger,
	})

	return svc, env
}

func TestOrderService_CreateOrder(t *testing.T) {
	svc, env := createTestOrderService(t, false)

	order, err := svc.CreateOrder(t.Context(), memory.SeedCustomer2ID, &usecase.CreateOrderInput{
		ShopID:     memory.SeedShop2ID,
		GlassCount: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, memory.SeedCustomer2ID, order.CustomerID)
	assert.Equal(t, env.clock.Now(), order.CreatedAt)

	toasts := env.notifier.toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, memory.SeedShopkeeper2ID, toasts[0].RecipientID)

	events := env.publisher.events()
	require.Len(t, events, 1)
	assert.Equal(t, service.EventOrderCreated, events[0].Type)
	assert.Equal(t, order.ID.String(), events[0].AggregateID)
	assert.Equal(t, "3", events[0].Attributes["glass_count"])
}

func TestOrderService_CreateOrder_Errors(t *testing.T) {
	svc, _ := createTestOrderService(t, false)

	_, err := svc.CreateOrder(t.Context(), memory.SeedCustomer1ID, &usecase.CreateOrderInput{ShopID: memory.SeedShop1ID})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.CreateOrder(t.Context(), memory.SeedCustomer1ID, &usecase.CreateOrderInput{ShopID: uuid.New(), GlassCount: 1})
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestOrderService_CreateOrder_RequireBattery(t *testing.T) {
	svc, _ := createTestOrderService(t, true)

	// Shop 2's machine sits at 45%, enough for 90 glasses.
	_, err := svc.CreateOrder(t.Context(), memory.SeedCustomer1ID, &usecase.CreateOrderInput{
		ShopID:     memory.SeedShop2ID,
		GlassCount: 90,
	})
	require.NoError(t, err)

	_, err = svc.CreateOrder(t.Context(), memory.SeedCustomer1ID, &usecase.CreateOrderInput{
		ShopID:     memory.SeedShop2ID,
		GlassCount: 91,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBattery)
}

func TestOrderService_Lifecycle(t *testing.T) {
	svc, env := createTestOrderService(t, false)
	ctx := t.Context()

	order, err := svc.CreateOrder(ctx, memory.SeedCustomer1ID, &usecase.CreateOrderInput{
		ShopID:     memory.SeedShop1ID,
		GlassCount: 2,
	})
	require.NoError(t, err)

	_, err = svc.CompleteOrder(ctx, memory.SeedShopkeeper1ID, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderTransition, "pending cannot skip processing")

	env.clock.Add(time.Minute)
	processed, err := svc.ProcessOrder(ctx, memory.SeedShopkeeper1ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderProcessing, processed.Status)
	assert.Equal(t, order.CreatedAt, processed.CreatedAt)
	assert.Equal(t, env.clock.Now(), processed.UpdatedAt)

	completed, err := svc.CompleteOrder(ctx, memory.SeedShopkeeper1ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, completed.Status)

	_, err = svc.ProcessOrder(ctx, memory.SeedShopkeeper1ID, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderTransition)

	toasts := env.notifier.toasts()
	require.Len(t, toasts, 5)
	assert.Equal(t, "Order status updated", toasts[1].Title)
	assert.Equal(t, "Order #"+order.ShortID()+" is now being processed", toasts[1].Description)
	assert.Equal(t, memory.SeedShopkeeper1ID, toasts[1].RecipientID)
	assert.Equal(t, memory.SeedCustomer1ID, toasts[2].RecipientID)
	assert.Equal(t, "Order completed", toasts[3].Title)
	assert.Equal(t, "Order #"+order.ShortID()+" has been completed", toasts[4].Description)

	events := env.publisher.events()
	require.Len(t, events, 3)
	assert.Equal(t, service.EventOrderStatusChanged, events[2].Type)
	assert.Equal(t, "completed", events[2].Attributes["status"])
}

func TestOrderService_ProcessOrder_OtherShop(t *testing.T) {
	svc, _ := createTestOrderService(t, false)

	_, err := svc.ProcessOrder(t.Context(), memory.SeedShopkeeper2ID, memory.SeedOrder2ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = svc.ProcessOrder(t.Context(), memory.SeedShopkeeper1ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListShopOrders(t *testing.T) {
	svc, _ := createTestOrderService(t, false)

	orders, err := svc.ListShopOrders(t.Context(), memory.SeedShopkeeper1ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, memory.SeedOrder2ID, orders[0].ID, "newest first")
	assert.Equal(t, 1, orders[0].SugarcanesNeeded)
	assert.Equal(t, 2, orders[1].SugarcanesNeeded)
	assert.Equal(t, "00002", orders[0].ShortID)

	orders, err = svc.ListShopOrders(t.Context(), memory.SeedShopkeeper2ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_ListCustomerOrders(t *testing.T) {
	svc, _ := createTestOrderService(t, false)

	orders, err := svc.ListCustomerOrders(t.Context(), memory.SeedCustomer1ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, memory.SeedOrder1ID, orders[0].ID)
}
