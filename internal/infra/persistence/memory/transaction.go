package memory

import (
	"context"

	"solarjuice/internal/domain/repository"
	"solarjuice/internal/errors"
)

// transactionManager implements the domain's TransactionManager on top of the Store.
type transactionManager struct {
	store *Store
}

// repositoryFactory hands out repositories bound to one accessor.
type repositoryFactory struct {
	acc accessor
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{acc: f.acc}
}

func (f *repositoryFactory) NewShopRepository() repository.ShopRepository {
	return &shopRepository{acc: f.acc}
}

func (f *repositoryFactory) NewMachineRepository() repository.MachineRepository {
	return &machineRepository{acc: f.acc}
}

func (f *repositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{acc: f.acc}
}

func (f *repositoryFactory) NewRegistrationRepository() repository.RegistrationRepository {
	return &registrationRepository{acc: f.acc}
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute holds the store write lock while fn runs against a private draft.
// The draft replaces the current snapshot only when fn returns nil.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	draft := tm.store.snap.clone()
	if err := fn(&repositoryFactory{acc: &txAccessor{draft: draft}}); err != nil {
		return err
	}
	tm.store.snap = draft

	return nil
}

// NewUserRepository returns a user repository working on the committed state.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{acc: store}
}

// NewShopRepository returns a shop repository working on the committed state.
func NewShopRepository(store *Store) repository.ShopRepository {
	return &shopRepository{acc: store}
}

// NewMachineRepository returns a machine repository working on the committed state.
func NewMachineRepository(store *Store) repository.MachineRepository {
	return &machineRepository{acc: store}
}

// NewOrderRepository returns an order repository working on the committed state.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{acc: store}
}

// NewRegistrationRepository returns a registration repository working on the committed state.
func NewRegistrationRepository(store *Store) repository.RegistrationRepository {
	return &registrationRepository{acc: store}
}
