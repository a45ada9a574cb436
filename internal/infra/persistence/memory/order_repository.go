package memory

import (
	"cmp"
	"context"
	"slices"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/domain/repository"
	"solarjuice/internal/errors"

	"github.com/google/uuid"
)

type orderRepository struct {
	acc accessor
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.acc.update(ctx, func(s *state) error {
		if slices.ContainsFunc(s.orders, func(o entity.Order) bool { return o.ID == order.ID }) {
			return errors.Errorf("order %s already exists", order.ID)
		}
		s.orders = append(s.orders, *order)

		return nil
	})
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var found *entity.Order
	err := r.acc.view(ctx, func(s *state) error {
		i := slices.IndexFunc(s.orders, func(o entity.Order) bool { return o.ID == id })
		if i < 0 {
			return repository.ErrOrderNotFound
		}
		o := s.orders[i]
		found = &o

		return nil
	})

	return found, err
}

func (r *orderRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Order, error) {
	return r.newestFirst(ctx, func(o entity.Order) bool { return o.ShopID == shopID })
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	return r.newestFirst(ctx, func(o entity.Order) bool { return o.CustomerID == customerID })
}

func (r *orderRepository) Update(ctx context.Context, id uuid.UUID, fn func(*entity.Order) error) (*entity.Order, error) {
	var updated *entity.Order
	err := r.acc.update(ctx, func(s *state) error {
		i := slices.IndexFunc(s.orders, func(o entity.Order) bool { return o.ID == id })
		if i < 0 {
			return repository.ErrOrderNotFound
		}

		o := s.orders[i]
		createdAt := o.CreatedAt
		if err := fn(&o); err != nil {
			return err
		}
		// Identity and creation time are immutable.
		o.ID = id
		o.CreatedAt = createdAt
		s.orders[i] = o
		updated = &o

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// newestFirst returns matching orders by descending creation time.
// Orders created at the same instant keep reverse insertion order.
func (r *orderRepository) newestFirst(ctx context.Context, match func(entity.Order) bool) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := r.acc.view(ctx, func(s *state) error {
		for i := len(s.orders) - 1; i >= 0; i-- {
			if o := s.orders[i]; match(o) {
				orders = append(orders, &o)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(orders, func(a, b *entity.Order) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return orders, nil
}
