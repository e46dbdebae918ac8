// Package ledger keeps the account set in memory and writes the whole set
// back to its store after every change.
package ledger

import (
	"fmt"
	"math"
	"sync"

	"github.com/hance08/bankbook/internal/constants"
	"github.com/hance08/bankbook/internal/model"
	"github.com/hance08/bankbook/internal/store"
	"github.com/rs/zerolog"
)

// Ledger serialises every load-mutate-save sequence behind one mutex so the
// stored snapshot always matches memory after a call returns.
type Ledger struct {
	mu       sync.Mutex
	store    store.Store
	accounts map[string]*model.Account
	order    []string

	ids      IDGenerator
	policies map[model.AccountType]Policy
	log      zerolog.Logger
}

type Option func(*Ledger)

func WithLogger(log zerolog.Logger) Option {
	return func(l *Ledger) {
		l.log = log
	}
}

func WithIDGenerator(g IDGenerator) Option {
	return func(l *Ledger) {
		l.ids = g
	}
}

func WithPolicies(policies map[model.AccountType]Policy) Option {
	return func(l *Ledger) {
		for t, p := range policies {
			l.policies[t] = p
		}
	}
}

// WithOverdraft sets AllowOverdraft on every account type.
func WithOverdraft(allow bool) Option {
	return func(l *Ledger) {
		for t, p := range l.policies {
			p.AllowOverdraft = allow
			l.policies[t] = p
		}
	}
}

// New loads the account set from s. A store that has never been written
// yields an empty ledger.
func New(s store.Store, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store:    s,
		accounts: make(map[string]*model.Account),
		ids:      NewUUIDGenerator(),
		policies: DefaultPolicies(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With().Str("component", "ledger").Logger()

	if err := l.load(); err != nil {
		return nil, err
	}

	l.log.Debug().Int("accounts", len(l.order)).Msg("ledger loaded")
	return l, nil
}

// Reload discards in-memory state and reads the store again.
func (l *Ledger) Reload() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.load()
}

func (l *Ledger) load() error {
	snap, err := l.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	accounts := make(map[string]*model.Account, len(snap))
	order := make([]string, 0, len(snap))
	for _, e := range snap {
		if e.Record.Type != model.Checking.String() && e.Record.Type != model.Savings.String() {
			l.log.Warn().
				Str("account_id", e.ID).
				Str("type", e.Record.Type).
				Msg("unrecognized account type, loading as savings")
		}
		accounts[e.ID] = model.AccountFromRecord(e.ID, e.Record)
		order = append(order, e.ID)
	}

	l.accounts = accounts
	l.order = order
	return nil
}

// CreateAccount opens an account with a zero balance and returns its ID.
func (l *Ledger) CreateAccount(name, accType string) (string, error) {
	t, err := model.ParseAccountType(accType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id, err := l.newID()
	if err != nil {
		return "", err
	}

	l.accounts[id] = model.NewAccount(id, name, t)
	l.order = append(l.order, id)

	err = l.commit(func() {
		delete(l.accounts, id)
		l.order = l.order[:len(l.order)-1]
	})
	if err != nil {
		return "", err
	}

	l.log.Debug().Str("op", constants.OpCreate).Str("account_id", id).Str("type", t.String()).Msg("account created")
	return id, nil
}

func (l *Ledger) newID() (string, error) {
	for range constants.MaxIDAttempts {
		id := l.ids.Generate()
		if id == "" {
			continue
		}
		if _, exists := l.accounts[id]; !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique account id after %d attempts", constants.MaxIDAttempts)
}

// ViewAccount returns a copy of the account.
func (l *Ledger) ViewAccount(id string) (*model.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, err := l.get(id)
	if err != nil {
		return nil, err
	}
	return acc.Clone(), nil
}

// DisplayAllAccounts returns copies of every account in creation order.
func (l *Ledger) DisplayAllAccounts() []*model.Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*model.Account, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.accounts[id].Clone())
	}
	return out
}

func (l *Ledger) Deposit(id string, amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acc, err := l.get(id)
	if err != nil {
		return err
	}

	balance, ok := addChecked(acc.Balance, amount)
	if !ok {
		return fmt.Errorf("%w: deposit would take account %s past the maximum balance", ErrValidation, id)
	}

	prev := acc.Balance
	acc.Balance = balance
	if err := l.commit(func() { acc.Balance = prev }); err != nil {
		return err
	}

	l.log.Debug().Str("op", constants.OpDeposit).Str("account_id", id).Int64("amount", amount).Msg("deposit applied")
	return nil
}

func (l *Ledger) WithdrawCash(id string, amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acc, err := l.get(id)
	if err != nil {
		return err
	}

	balance, err := l.debit(acc, amount)
	if err != nil {
		return err
	}

	prev := acc.Balance
	acc.Balance = balance
	if err := l.commit(func() { acc.Balance = prev }); err != nil {
		return err
	}

	l.log.Debug().Str("op", constants.OpWithdraw).Str("account_id", id).Int64("amount", amount).Msg("withdrawal applied")
	return nil
}

// Transfer moves amount between two accounts. Both balances change in memory
// before a single save; if the save fails neither change is kept.
func (l *Ledger) Transfer(fromID, toID string, amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if fromID == toID {
		return fmt.Errorf("%w: cannot transfer to the same account", ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	from, err := l.get(fromID)
	if err != nil {
		return fmt.Errorf("source %w", err)
	}
	to, err := l.get(toID)
	if err != nil {
		return fmt.Errorf("destination %w", err)
	}

	fromBalance, err := l.debit(from, amount)
	if err != nil {
		return err
	}
	toBalance, ok := addChecked(to.Balance, amount)
	if !ok {
		return fmt.Errorf("%w: transfer would take account %s past the maximum balance", ErrValidation, toID)
	}

	prevFrom, prevTo := from.Balance, to.Balance
	from.Balance = fromBalance
	to.Balance = toBalance
	err = l.commit(func() {
		from.Balance = prevFrom
		to.Balance = prevTo
	})
	if err != nil {
		return err
	}

	l.log.Debug().
		Str("op", constants.OpTransfer).
		Str("from_id", fromID).
		Str("to_id", toID).
		Int64("amount", amount).
		Msg("transfer applied")
	return nil
}

// RenameAccount changes the holder name. Any string is accepted.
func (l *Ledger) RenameAccount(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, err := l.get(id)
	if err != nil {
		return err
	}

	prev := acc.Name
	acc.Name = name
	if err := l.commit(func() { acc.Name = prev }); err != nil {
		return err
	}

	l.log.Debug().Str("op", constants.OpRename).Str("account_id", id).Msg("account renamed")
	return nil
}

// Snapshot returns the current account set in store form.
func (l *Ledger) Snapshot() store.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.snapshot()
}

func (l *Ledger) get(id string) (*model.Account, error) {
	acc, ok := l.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return acc, nil
}

// debit returns the balance after taking amount from acc, enforcing the
// account type's overdraft policy.
func (l *Ledger) debit(acc *model.Account, amount int64) (int64, error) {
	if !l.policyFor(acc.Type).AllowOverdraft && amount > acc.Balance {
		return 0, fmt.Errorf("%w: account %s has %d, needs %d", ErrInsufficientFunds, acc.ID, acc.Balance, amount)
	}

	balance, ok := addChecked(acc.Balance, -amount)
	if !ok {
		return 0, fmt.Errorf("%w: withdrawal would take account %s past the maximum balance", ErrValidation, acc.ID)
	}
	return balance, nil
}

// commit persists the full account set, running undo if the save fails.
func (l *Ledger) commit(undo func()) error {
	if err := l.store.Save(l.snapshot()); err != nil {
		undo()
		l.log.Error().Err(err).Msg("failed to save accounts, change reverted")
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

func (l *Ledger) snapshot() store.Snapshot {
	snap := make(store.Snapshot, 0, len(l.order))
	for _, id := range l.order {
		snap = append(snap, store.Entry{ID: id, Record: l.accounts[id].ToRecord()})
	}
	return snap
}

func validateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	return nil
}

// addChecked returns a+b, or false when the sum leaves
// [-MaxBalanceCents, MaxBalanceCents] and could not be stored.
func addChecked(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	sum := a + b
	if sum > constants.MaxBalanceCents || sum < -constants.MaxBalanceCents {
		return 0, false
	}
	return sum, true
}
