// Package memory is a process-local implementation of repositories.Store.
// A unit of work holds the store mutex for its whole duration and restores a
// snapshot when it fails, so units of work are serialized.
package memory

import (
	"context"
	"sync"

	"digiwallet/internal/models"
	"digiwallet/internal/repositories"
)

type state struct {
	customers    map[uint]*models.Customer
	wallets      map[uint]*models.Wallet
	transactions map[uint]*models.Transaction

	nextCustomerID    uint
	nextWalletID      uint
	nextTransactionID uint
}

func newState() *state {
	return &state{
		customers:    make(map[uint]*models.Customer),
		wallets:      make(map[uint]*models.Wallet),
		transactions: make(map[uint]*models.Transaction),
	}
}

func (st *state) clone() *state {
	c := &state{
		customers:         make(map[uint]*models.Customer, len(st.customers)),
		wallets:           make(map[uint]*models.Wallet, len(st.wallets)),
		transactions:      make(map[uint]*models.Transaction, len(st.transactions)),
		nextCustomerID:    st.nextCustomerID,
		nextWalletID:      st.nextWalletID,
		nextTransactionID: st.nextTransactionID,
	}
	for id, v := range st.customers {
		cp := *v
		c.customers[id] = &cp
	}
	for id, v := range st.wallets {
		cp := *v
		c.wallets[id] = &cp
	}
	for id, v := range st.transactions {
		cp := *v
		c.transactions[id] = &cp
	}
	return c
}

type shared struct {
	mu sync.Mutex
	st *state
}

// Store keeps customers, wallets and transactions in maps.
type Store struct {
	sh   *shared
	inTx bool
}

var _ repositories.Store = (*Store)(nil)

func New() *Store {
	return &Store{sh: &shared{st: newState()}}
}

func (s *Store) Customers() repositories.CustomerRepository {
	return &customerRepository{s: s}
}

func (s *Store) Wallets() repositories.WalletRepository {
	return &walletRepository{s: s}
}

func (s *Store) Transactions() repositories.TransactionRepository {
	return &transactionRepository{s: s}
}

// ExecuteInTransaction joins the running unit of work when called on the
// Store handed to fn.
func (s *Store) ExecuteInTransaction(ctx context.Context, fn func(tx repositories.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.sh.mu.Lock()
	defer s.sh.mu.Unlock()

	snapshot := s.sh.st.clone()
	committed := false
	defer func() {
		if !committed {
			s.sh.st = snapshot
		}
	}()

	if err := fn(&Store{sh: s.sh, inTx: true}); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// view runs fn against the current state, taking the mutex unless a unit of
// work already holds it.
func (s *Store) view(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.inTx {
		s.sh.mu.Lock()
		defer s.sh.mu.Unlock()
	}
	return fn(s.sh.st)
}
