package memory

import (
	"context"
	"slices"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/domain/repository"
	"solarjuice/internal/errors"

	"github.com/google/uuid"
)

type machineRepository struct {
	acc accessor
}

func (r *machineRepository) Create(ctx context.Context, machine *entity.Machine) error {
	return r.acc.update(ctx, func(s *state) error {
		if slices.ContainsFunc(s.machines, func(m entity.Machine) bool { return m.ID == machine.ID }) {
			return errors.Errorf("machine %s already exists", machine.ID)
		}
		s.machines = append(s.machines, *machine)

		return nil
	})
}

func (r *machineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error) {
	return r.find(ctx, func(m entity.Machine) bool { return m.ID == id })
}

func (r *machineRepository) FindByShopID(ctx context.Context, shopID uuid.UUID) (*entity.Machine, error) {
	return r.find(ctx, func(m entity.Machine) bool { return m.ShopID == shopID })
}

func (r *machineRepository) List(ctx context.Context) ([]*entity.Machine, error) {
	var machines []*entity.Machine
	err := r.acc.view(ctx, func(s *state) error {
		machines = make([]*entity.Machine, 0, len(s.machines))
		for _, m := range s.machines {
			machines = append(machines, &m)
		}

		return nil
	})

	return machines, err
}

func (r *machineRepository) Update(ctx context.Context, id uuid.UUID, fn func(*entity.Machine) error) (*entity.Machine, error) {
	var updated *entity.Machine
	err := r.acc.update(ctx, func(s *state) error {
		i := slices.IndexFunc(s.machines, func(m entity.Machine) bool { return m.ID == id })
		if i < 0 {
			return repository.ErrMachineNotFound
		}

		m := s.machines[i]
		if err := fn(&m); err != nil {
			return err
		}
		m.ID = id
		s.machines[i] = m
		updated = &m

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *machineRepository) UpdateAll(ctx context.Context, fn func(entity.Machine) entity.Machine) ([]entity.Machine, error) {
	var updated []entity.Machine
	err := r.acc.update(ctx, func(s *state) error {
		for i, m := range s.machines {
			next := fn(m)
			next.ID = m.ID
			s.machines[i] = next
		}
		updated = slices.Clone(s.machines)

		return nil
	})

	return updated, err
}

func (r *machineRepository) find(ctx context.Context, match func(entity.Machine) bool) (*entity.Machine, error) {
	var found *entity.Machine
	err := r.acc.view(ctx, func(s *state) error {
		i := slices.IndexFunc(s.machines, match)
		if i < 0 {
			return repository.ErrMachineNotFound
		}
		m := s.machines[i]
		found = &m

		return nil
	})

	return found, err
}
