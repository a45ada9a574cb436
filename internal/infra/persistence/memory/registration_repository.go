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

type registrationRepository struct {
	acc accessor
}

func (r *registrationRepository) Create(ctx context.Context, registration *entity.ShopRegistration) error {
	return r.acc.update(ctx, func(s *state) error {
		if slices.ContainsFunc(s.registrations, func(reg entity.ShopRegistration) bool { return reg.ID == registration.ID }) {
			return errors.Errorf("registration %s already exists", registration.ID)
		}
		s.registrations = append(s.registrations, *registration)

		return nil
	})
}

func (r *registrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShopRegistration, error) {
	var found *entity.ShopRegistration
	err := r.acc.view(ctx, func(s *state) error {
		i := slices.IndexFunc(s.registrations, func(reg entity.ShopRegistration) bool { return reg.ID == id })
		if i < 0 {
			return repository.ErrRegistrationNotFound
		}
		reg := s.registrations[i]
		found = &reg

		return nil
	})

	return found, err
}

func (r *registrationRepository) List(ctx context.Context, filter repository.RegistrationFilter) ([]*entity.ShopRegistration, error) {
	var regs []*entity.ShopRegistration
	err := r.acc.view(ctx, func(s *state) error {
		for i := len(s.registrations) - 1; i >= 0; i-- {
			reg := s.registrations[i]
			if filter.Status != nil && reg.Status != *filter.Status {
				continue
			}
			if filter.ShopkeeperID != nil && reg.ShopkeeperID != *filter.ShopkeeperID {
				continue
			}
			regs = append(regs, &reg)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(regs, func(a, b *entity.ShopRegistration) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return regs, nil
}

func (r *registrationRepository) Update(ctx context.Context, id uuid.UUID, fn func(*entity.ShopRegistration) error) (*entity.ShopRegistration, error) {
	var updated *entity.ShopRegistration
	err := r.acc.update(ctx, func(s *state) error {
		i := slices.IndexFunc(s.registrations, func(reg entity.ShopRegistration) bool { return reg.ID == id })
		if i < 0 {
			return repository.ErrRegistrationNotFound
		}

		reg := s.registrations[i]
		if err := fn(&reg); err != nil {
			return err
		}
		reg.ID = id
		s.registrations[i] = reg
		updated = &reg

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
