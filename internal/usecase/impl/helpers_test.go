package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"solarjuice/config"
	"solarjuice/internal/domain/repository"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/infra/persistence/memory"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, toast *service.Toast) error {
	args := m.Called(ctx, toast)
	return args.Error(0)
}

// toasts returns every toast passed to Notify, in call order.
func (m *mockNotifier) toasts() []*service.Toast {
	var out []*service.Toast
	for _, call := range m.Calls {
		if call.Method == "Notify" {
			out = append(out, call.Arguments.Get(1).(*service.Toast))
		}
	}

	return out
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}

func (m *mockPublisher) events() []*service.DomainEvent {
	var out []*service.DomainEvent
	for _, call := range m.Calls {
		if call.Method == "Publish" {
			out = append(out, call.Arguments.Get(1).(*service.DomainEvent))
		}
	}

	return out
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Check(password, hash string) bool     { return hash == "hashed:"+password }

// testEnv is a seeded in-memory store with mocked side effects.
type testEnv struct {
	store     *memory.Store
	clock     *clock.Mock
	notifier  *mockNotifier
	publisher *mockPublisher
	effects   *Effects
	config    *config.Config
	logger    *slog.Logger

	users         repository.UserRepository
	shops         repository.ShopRepository
	machines      repository.MachineRepository
	orders        repository.OrderRepository
	registrations repository.RegistrationRepository
	txManager     repository.TransactionManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clk := clock.NewMock()
	clk.Add(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).Sub(clk.Now()))

	store := memory.NewStore()
	require.NoError(t, memory.Seed(t.Context(), store, plainHasher{}, clk, "password"))

	notifier := &mockNotifier{}
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Maybe()
	publisher := &mockPublisher{}
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	logger := newDiscardLogger()

	return &testEnv{
		store:     store,
		clock:     clk,
		notifier:  notifier,
		publisher: publisher,
		effects: NewEffects(EffectsParams{
			Notifier:  notifier,
			Publisher: publisher,
			Clock:     clk,
			Logger:    logger,
		}),
		config: &config.Config{
			Geolocation: config.GeolocationConfig{FallbackLat: 28.6139, FallbackLng: 77.2090},
		},
		logger:        logger,
		users:         memory.NewUserRepository(store),
		shops:         memory.NewShopRepository(store),
		machines:      memory.NewMachineRepository(store),
		orders:        memory.NewOrderRepository(store),
		registrations: memory.NewRegistrationRepository(store),
		txManager:     memory.NewTransactionManager(store),
	}
}
