package customer

import (
	"context"
	"errors"
	"testing"

	appErrors "digiwallet/internal/errors"
	"digiwallet/internal/models"
	"digiwallet/internal/repositories/cache"
	"digiwallet/internal/repositories/cache/cachetest"
	"digiwallet/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockCache) Generation(ctx context.Context, family string) (int64, error) {
	args := m.Called(ctx, family)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCache) Bump(ctx context.Context, family string) error {
	return m.Called(ctx, family).Error(0)
}

func (m *MockCache) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func seed(t *testing.T, store *memory.Store) *models.Customer {
	t.Helper()
	c := &models.Customer{TrIdentityNo: "12345678901", Name: "Ada", Surname: "Lovelace", Email: "ada@example.com", Password: "hash"}
	require.NoError(t, store.Customers().Create(context.Background(), c))
	return c
}

func TestService_GetByTrIdentityNo(t *testing.T) {
	store := memory.New()
	seeded := seed(t, store)
	svc := NewService(store, nil)

	got, err := svc.GetByTrIdentityNo(context.Background(), "12345678901")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)

	_, err = svc.GetByTrIdentityNo(context.Background(), "99999999999")
	require.Error(t, err)
	assert.True(t, appErrors.IsKind(err, appErrors.KindNotFound))
	assert.Equal(t, "No customer found with the TR Identity No: 99999999999", err.Error())
}

func TestService_GetByEmail(t *testing.T) {
	store := memory.New()
	seed(t, store)
	svc := NewService(store, nil)

	got, err := svc.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.FullName())

	_, err = svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, appErrors.ErrCustomerNotFound)
}

func TestService_GetByID_ReadThrough(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(c *MockCache, id uint)
	}{
		{
			name: "miss populates current generation",
			setupMock: func(c *MockCache, id uint) {
				key := cache.EntryKey(cache.CustomerKey(id), 2)
				c.On("Generation", mock.Anything, cache.CustomerKey(id)).Return(int64(2), nil)
				c.On("Get", mock.Anything, key, mock.Anything).Return(false, nil)
				c.On("Set", mock.Anything, key, mock.AnythingOfType("*models.Customer")).Return(nil)
			},
		},
		{
			name: "cache failure falls back to store",
			setupMock: func(c *MockCache, id uint) {
				key := cache.EntryKey(cache.CustomerKey(id), 0)
				c.On("Generation", mock.Anything, cache.CustomerKey(id)).Return(int64(0), nil)
				c.On("Get", mock.Anything, key, mock.Anything).Return(false, errors.New("redis down"))
				c.On("Set", mock.Anything, key, mock.Anything).Return(errors.New("redis down"))
			},
		},
		{
			name: "unknown generation bypasses cache",
			setupMock: func(c *MockCache, id uint) {
				c.On("Generation", mock.Anything, cache.CustomerKey(id)).Return(int64(0), errors.New("redis down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			seeded := seed(t, store)
			c := new(MockCache)
			tt.setupMock(c, seeded.ID)

			got, err := NewService(store, c).GetByID(context.Background(), seeded.ID)
			require.NoError(t, err)
			assert.Equal(t, seeded.Email, got.Email)
			c.AssertExpectations(t)
		})
	}
}

func TestService_GetByID_Hit(t *testing.T) {
	c := new(MockCache)
	c.On("Generation", mock.Anything, cache.CustomerKey(5)).Return(int64(3), nil)
	c.On("Get", mock.Anything, cache.EntryKey(cache.CustomerKey(5), 3), mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*models.Customer)
			dest.ID = 5
			dest.Email = "cached@example.com"
		}).
		Return(true, nil)

	got, err := NewService(memory.New(), c).GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "cached@example.com", got.Email)
	c.AssertExpectations(t)
}

func TestService_GetByID_NotFound(t *testing.T) {
	_, err := NewService(memory.New(), nil).GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, appErrors.ErrCustomerNotFound)
}

func TestService_Invalidate(t *testing.T) {
	c := new(MockCache)
	c.On("Bump", mock.Anything, cache.CustomerKey(3)).Return(nil)

	NewService(memory.New(), c).Invalidate(context.Background(), 3)
	c.AssertExpectations(t)
}

func TestService_GetByID_InvalidateDuringFill(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seeded := seed(t, store)
	c := cachetest.New()
	svc := NewService(store, c)

	entered, release := c.PauseNextSet()
	defer release()
	done := make(chan *models.Customer, 1)
	go func() {
		got, err := svc.GetByID(ctx, seeded.ID)
		assert.NoError(t, err)
		done <- got
	}()

	<-entered
	require.NoError(t, store.Customers().IncrementTokenVersion(ctx, seeded.ID))
	svc.Invalidate(ctx, seeded.ID)
	release()
	assert.Equal(t, 1, (<-done).TokenVersion)

	got, err := svc.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TokenVersion)
	assert.True(t, c.Has(cache.EntryKey(cache.CustomerKey(seeded.ID), 1)))
}
