package memory

import (
	"context"
	"slices"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/domain/repository"
	"solarjuice/internal/errors"

	"github.com/google/uuid"
)

type shopRepository struct {
	acc accessor
}

func (r *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	return r.acc.update(ctx, func(s *state) error {
		if slices.ContainsFunc(s.shops, func(existing entity.Shop) bool { return existing.ID == shop.ID }) {
			return errors.Errorf("shop %s already exists", shop.ID)
		}
		s.shops = append(s.shops, *shop)

		return nil
	})
}

func (r *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var found *entity.Shop
	err := r.acc.view(ctx, func(s *state) error {
		i := slices.IndexFunc(s.shops, func(shop entity.Shop) bool { return shop.ID == id })
		if i < 0 {
			return repository.ErrShopNotFound
		}
		shop := s.shops[i]
		found = &shop

		return nil
	})

	return found, err
}

func (r *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	return r.filter(ctx, func(shop entity.Shop) bool { return shop.OwnerID == ownerID })
}

func (r *shopRepository) ListApproved(ctx context.Context) ([]*entity.Shop, error) {
	return r.filter(ctx, func(shop entity.Shop) bool { return shop.IsApproved })
}

func (r *shopRepository) Update(ctx context.Context, id uuid.UUID, fn func(*entity.Shop) error) (*entity.Shop, error) {
	var updated *entity.Shop
	err := r.acc.update(ctx, func(s *state) error {
		i := slices.IndexFunc(s.shops, func(shop entity.Shop) bool { return shop.ID == id })
		if i < 0 {
			return repository.ErrShopNotFound
		}

		shop := s.shops[i]
		if err := fn(&shop); err != nil {
			return err
		}
		shop.ID = id
		s.shops[i] = shop
		updated = &shop

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *shopRepository) filter(ctx context.Context, match func(entity.Shop) bool) ([]*entity.Shop, error) {
	var shops []*entity.Shop
	err := r.acc.view(ctx, func(s *state) error {
		for _, shop := range s.shops {
			if match(shop) {
				shops = append(shops, &shop)
			}
		}

		return nil
	})

	return shops, err
}
