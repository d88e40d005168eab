package wallet

import (
	"context"
	"errors"
	"testing"

	appErrors "digiwallet/internal/errors"
	"digiwallet/internal/models"
	"digiwallet/internal/repositories/cache"
	"digiwallet/internal/repositories/cache/cachetest"
	"digiwallet/internal/repositories/memory"
	"digiwallet/internal/services/customer"
	"digiwallet/internal/services/transaction"

	"github.com/shopspring/decimal"
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

func setup(t *testing.T, c cache.Cache) (*memory.Store, Service, *models.Customer) {
	t.Helper()
	store := memory.New()
	owner := &models.Customer{TrIdentityNo: "11111111111", Name: "Ada", Surname: "Lovelace", Email: "ada@example.com", Password: "hash"}
	require.NoError(t, store.Customers().Create(context.Background(), owner))
	return store, NewService(store, customer.NewService(store, nil), c), owner
}

func TestService_AddWallet(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateWalletRequest
		wantErr error
		wantMsg string
	}{
		{
			name: "keeps requested flags",
			req:  CreateWalletRequest{WalletName: "groceries", Currency: "TRY", ActiveForShopping: true, ActiveForWithdraw: true},
		},
		{
			name: "flags default to false",
			req:  CreateWalletRequest{WalletName: "savings", Currency: "USD"},
		},
		{
			name:    "unknown currency",
			req:     CreateWalletRequest{WalletName: "gold", Currency: "XAU"},
			wantErr: appErrors.ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, svc, owner := setup(t, nil)

			resp, err := svc.AddWallet(ctx, owner, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.NotEmpty(t, resp.WalletID)
			assert.Equal(t, tt.req.WalletName, resp.WalletName)
			assert.Equal(t, "Ada Lovelace", resp.Customer)
			assert.Equal(t, models.Currency(tt.req.Currency), resp.Currency)
			assert.Equal(t, tt.req.ActiveForShopping, resp.ActiveForShopping)
			assert.Equal(t, tt.req.ActiveForWithdraw, resp.ActiveForWithdraw)
			assert.True(t, resp.Balance.IsZero())
			assert.True(t, resp.UsableBalance.IsZero())

			stored, err := store.Wallets().GetByWalletID(ctx, resp.WalletID)
			require.NoError(t, err)
			assert.Equal(t, owner.ID, stored.CustomerID)
			assert.Equal(t, tt.req.ActiveForShopping, stored.ActiveForShopping)
			assert.Equal(t, tt.req.ActiveForWithdraw, stored.ActiveForWithdraw)
		})
	}
}

func TestService_AddWallet_DuplicateName(t *testing.T) {
	ctx := context.Background()
	store, svc, owner := setup(t, nil)

	_, err := svc.AddWallet(ctx, owner, CreateWalletRequest{WalletName: "main", Currency: "EUR"})
	require.NoError(t, err)

	other := &models.Customer{TrIdentityNo: "22222222222", Name: "Bob", Surname: "Smith", Email: "bob@example.com", Password: "hash"}
	require.NoError(t, store.Customers().Create(ctx, other))

	_, err = svc.AddWallet(ctx, other, CreateWalletRequest{WalletName: "main", Currency: "EUR"})
	require.ErrorIs(t, err, appErrors.ErrDuplicateWalletName)
	assert.True(t, appErrors.IsKind(err, appErrors.KindConflict))
	assert.Equal(t, "Wallet name main is already in use", err.Error())
}

func TestService_ListWallets(t *testing.T) {
	ctx := context.Background()
	store, svc, owner := setup(t, nil)

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.AddWallet(ctx, owner, CreateWalletRequest{WalletName: name, Currency: "TRY"})
		require.NoError(t, err)
	}

	other := &models.Customer{TrIdentityNo: "22222222222", Name: "Bob", Surname: "Smith", Email: "bob@example.com", Password: "hash"}
	require.NoError(t, store.Customers().Create(ctx, other))
	_, err := svc.AddWallet(ctx, other, CreateWalletRequest{WalletName: "bobs", Currency: "TRY"})
	require.NoError(t, err)

	wallets, err := svc.ListWallets(ctx, owner)
	require.NoError(t, err)
	require.Len(t, wallets, 3)
	assert.Equal(t, "first", wallets[0].WalletName)
	assert.Equal(t, "third", wallets[2].WalletName)

	wallets, err = svc.ListWalletsFor(ctx, "22222222222")
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, "Bob Smith", wallets[0].Customer)

	_, err = svc.ListWalletsFor(ctx, "33333333333")
	assert.ErrorIs(t, err, appErrors.ErrCustomerNotFound)
}

func TestService_ListWallets_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("hit skips the store", func(t *testing.T) {
		c := new(MockCache)
		_, svc, owner := setup(t, c)
		c.On("Generation", mock.Anything, cache.WalletsKey(owner.ID)).Return(int64(0), nil)
		c.On("Get", mock.Anything, cache.EntryKey(cache.WalletsKey(owner.ID), 0), mock.Anything).
			Run(func(args mock.Arguments) {
				dest := args.Get(2).(*[]WalletResponse)
				*dest = []WalletResponse{{WalletID: "cached", Balance: decimal.NewFromInt(3)}}
			}).
			Return(true, nil)

		wallets, err := svc.ListWallets(ctx, owner)
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.Equal(t, "cached", wallets[0].WalletID)
		c.AssertExpectations(t)
	})

	t.Run("miss populates and cache errors are tolerated", func(t *testing.T) {
		c := new(MockCache)
		_, svc, owner := setup(t, c)
		family := cache.WalletsKey(owner.ID)
		key := cache.EntryKey(family, 1)
		c.On("Bump", mock.Anything, family).Return(errors.New("redis down"))
		c.On("Generation", mock.Anything, family).Return(int64(1), nil)
		c.On("Get", mock.Anything, key, mock.Anything).Return(false, errors.New("redis down"))
		c.On("Set", mock.Anything, key, mock.AnythingOfType("[]wallet.WalletResponse")).Return(nil)

		_, err := svc.AddWallet(ctx, owner, CreateWalletRequest{WalletName: "main", Currency: "USD"})
		require.NoError(t, err)

		wallets, err := svc.ListWallets(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, wallets, 1)
		c.AssertExpectations(t)
	})

	t.Run("failed create does not invalidate", func(t *testing.T) {
		c := new(MockCache)
		_, svc, owner := setup(t, c)

		_, err := svc.AddWallet(ctx, owner, CreateWalletRequest{WalletName: "main", Currency: "GBP"})
		require.Error(t, err)
		c.AssertNotCalled(t, "Bump", mock.Anything, mock.Anything)
	})

	t.Run("unknown generation bypasses cache", func(t *testing.T) {
		c := new(MockCache)
		_, svc, owner := setup(t, c)
		c.On("Generation", mock.Anything, cache.WalletsKey(owner.ID)).Return(int64(0), errors.New("redis down"))

		wallets, err := svc.ListWallets(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, wallets)
		c.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
		c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_ListWallets_DepositDuringCacheFill(t *testing.T) {
	ctx := context.Background()
	c := cachetest.New()
	store, svc, owner := setup(t, c)
	ledger := transaction.NewService(store, customer.NewService(store, nil), svc)

	created, err := svc.AddWallet(ctx, owner, CreateWalletRequest{WalletName: "main", Currency: "TRY", ActiveForShopping: true, ActiveForWithdraw: true})
	require.NoError(t, err)

	entered, release := c.PauseNextSet()
	defer release()
	done := make(chan []WalletResponse, 1)
	go func() {
		wallets, err := svc.ListWallets(ctx, owner)
		assert.NoError(t, err)
		done <- wallets
	}()

	<-entered
	amount := decimal.NewFromInt(500)
	_, err = ledger.Deposit(ctx, owner, transaction.DepositRequest{
		Amount: &amount, WalletID: created.WalletID, SourceType: "IBAN", Source: "TR330006100519786457841326",
	})
	require.NoError(t, err)
	release()

	stale := <-done
	require.Len(t, stale, 1)
	assert.True(t, stale[0].Balance.IsZero())

	wallets, err := svc.ListWallets(ctx, owner)
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.True(t, wallets[0].Balance.Equal(amount), "got %s", wallets[0].Balance)
	assert.True(t, wallets[0].UsableBalance.Equal(amount), "got %s", wallets[0].UsableBalance)
}
