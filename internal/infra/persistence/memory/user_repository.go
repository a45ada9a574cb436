package memory

import (
	"context"
	"slices"
	"strings"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	acc accessor
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.acc.update(ctx, func(s *state) error {
		if slices.ContainsFunc(s.users, func(u entity.User) bool { return strings.EqualFold(u.Email, user.Email) }) {
			return repository.ErrUserEmailTaken
		}
		s.users = append(s.users, *user)

		return nil
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(ctx, func(u entity.User) bool { return u.ID == id })
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(ctx, func(u entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *userRepository) FindByEmailAndRole(ctx context.Context, email string, role entity.Role) (*entity.User, error) {
	return r.find(ctx, func(u entity.User) bool {
		return u.Role == role && strings.EqualFold(u.Email, email)
	})
}

func (r *userRepository) find(ctx context.Context, match func(entity.User) bool) (*entity.User, error) {
	var found *entity.User
	err := r.acc.view(ctx, func(s *state) error {
		i := slices.IndexFunc(s.users, match)
		if i < 0 {
			return repository.ErrUserNotFound
		}
		u := s.users[i]
		found = &u

		return nil
	})

	return found, err
}
