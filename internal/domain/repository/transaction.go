package repository

import "context"

// TransactionManager runs a group of repository operations atomically.
// The use case layer depends on it without knowing how the state is stored.
type TransactionManager interface {
	// Execute runs fn within a transaction.
	// If fn returns an error nothing it wrote becomes visible. Otherwise every write is committed together.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewShopRepository() ShopRepository
	NewMachineRepository() MachineRepository
	NewOrderRepository() OrderRepository
	NewRegistrationRepository() RegistrationRepository
}
