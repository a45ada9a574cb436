package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"solarjuice/config"
	deliverycontext "solarjuice/internal/delivery/context"
	"solarjuice/internal/domain/calc"
	"solarjuice/internal/domain/entity"
	domainerrors "solarjuice/internal/domain/errors"
	"solarjuice/internal/domain/repository"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/usecase"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo      repository.OrderRepository
	shopRepo       repository.ShopRepository
	machineRepo    repository.MachineRepository
	effects        *Effects
	clock          clock.Clock
	requireBattery bool
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ShopRepo    repository.ShopRepository
	MachineRepo repository.MachineRepository
	Effects     *Effects
	Clock       clock.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:      params.OrderRepo,
		shopRepo:       params.ShopRepo,
		machineRepo:    params.MachineRepo,
		effects:        params.Effects,
		clock:          params.Clock,
		requireBattery: params.Config.Orders.RequireBattery,
		logger:         params.Logger,
	}
}

// CreateOrder places a pending order at an approved shop.
func (s *orderService) CreateOrder(ctx context.Context, customerID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if input == nil || input.GlassCount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("glass_count must be greater than zero")
	}

	shop, err := s.shopRepo.FindByID(ctx, input.ShopID)
	if err != nil {
		return nil, translate(err, "find shop")
	}
	if !shop.IsApproved {
		return nil, domainerrors.ErrShopNotFound
	}

	if s.requireBattery {
		if err := s.checkBattery(ctx, shop, input.GlassCount); err != nil {
			return nil, err
		}
	}

	now := s.clock.Now()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		ShopID:     shop.ID,
		GlassCount: input.GlassCount,
		Status:     entity.OrderPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, translate(err, "create order")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("order created",
		slog.String("order_id", order.ID.String()),
		slog.String("shop_id", shop.ID.String()),
		slog.Int("glass_count", order.GlassCount),
	)

	s.effects.toast(ctx, shop.OwnerID, "New order",
		fmt.Sprintf("Order #%s for %d glass(es)", order.ShortID(), order.GlassCount),
		orderData(order))
	s.effects.publish(ctx, service.EventOrderCreated, order.ID, map[string]string{
		"shop_id":     shop.ID.String(),
		"customer_id": customerID.String(),
		"glass_count": strconv.Itoa(order.GlassCount),
		"status":      string(order.Status),
	})

	return order, nil
}

func (s *orderService) checkBattery(ctx context.Context, shop *entity.Shop, glassCount int) error {
	machine, err := s.machineRepo.FindByShopID(ctx, shop.ID)
	if err != nil {
		return translate(err, "find shop machine")
	}

	if !calc.HasEnoughBattery(glassCount, machine.BatteryPercentage) {
		return domainerrors.ErrInsufficientBattery.WithDetails(
			fmt.Sprintf("machine can produce at most %d glass(es)", calc.MaxGlassesWithBattery(machine.BatteryPercentage)))
	}

	return nil
}

func (s *orderService) ProcessOrder(ctx context.Context, shopkeeperID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.advance(ctx, shopkeeperID, orderID, entity.OrderProcessing)
	if err != nil {
		return nil, err
	}

	s.notifyStatus(ctx, shopkeeperID, order, "Order status updated",
		fmt.Sprintf("Order #%s is now being processed", order.ShortID()))

	return order, nil
}

func (s *orderService) CompleteOrder(ctx context.Context, shopkeeperID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.advance(ctx, shopkeeperID, orderID, entity.OrderCompleted)
	if err != nil {
		return nil, err
	}

	s.notifyStatus(ctx, shopkeeperID, order, "Order completed",
		fmt.Sprintf("Order #%s has been completed", order.ShortID()))

	return order, nil
}

// advance moves the order to next if the caller owns its shop and the
// transition is allowed. The status check runs inside the store update.
func (s *orderService) advance(ctx context.Context, shopkeeperID, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translate(err, "find order")
	}

	shop, err := s.shopRepo.FindByID(ctx, order.ShopID)
	if err != nil {
		return nil, translate(err, "find order shop")
	}
	if shop.OwnerID != shopkeeperID {
		return nil, domainerrors.ErrForbidden.WithDetails("order belongs to another shop")
	}

	now := s.clock.Now()
	updated, err := s.orderRepo.Update(ctx, orderID, func(o *entity.Order) error {
		if o.Status.IsTerminal() {
			return domainerrors.ErrInvalidOrderTransition.WithDetails("order is already " + string(o.Status))
		}
		if !o.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidOrderTransition.WithDetails(
				fmt.Sprintf("cannot move order from %s to %s", o.Status, next))
		}
		o.Status = next
		o.UpdatedAt = now

		return nil
	})
	if err != nil {
		return nil, translate(err, "update order")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("order status changed",
		slog.String("order_id", updated.ID.String()),
		slog.String("status", string(updated.Status)),
	)

	return updated, nil
}

func (s *orderService) notifyStatus(ctx context.Context, shopkeeperID uuid.UUID, order *entity.Order, title, description string) {
	data := orderData(order)
	s.effects.toast(ctx, shopkeeperID, title, description, data)
	s.effects.toast(ctx, order.CustomerID, title, description, data)

	s.effects.publish(ctx, service.EventOrderStatusChanged, order.ID, map[string]string{
		"shop_id":     order.ShopID.String(),
		"customer_id": order.CustomerID.String(),
		"status":      string(order.Status),
	})
}

// ListShopOrders lists the orders of the shopkeeper's shop, newest first.
func (s *orderService) ListShopOrders(ctx context.Context, shopkeeperID uuid.UUID) ([]*usecase.ShopOrder, error) {
	shop, err := findOwnedShop(ctx, s.shopRepo, shopkeeperID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		return nil, translate(err, "list shop orders")
	}

	result := make([]*usecase.ShopOrder, 0, len(orders))
	for _, order := range orders {
		result = append(result, &usecase.ShopOrder{
			Order:            order,
			ShortID:          order.ShortID(),
			SugarcanesNeeded: calc.SugarcanesNeeded(order.GlassCount),
		})
	}

	return result, nil
}

func (s *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, translate(err, "list customer orders")
	}

	return orders, nil
}

func orderData(order *entity.Order) map[string]string {
	return map[string]string{
		"order_id": order.ID.String(),
		"status":   string(order.Status),
	}
}
