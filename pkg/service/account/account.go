// Package account serves a single session account to the front ends.
//
// The domain Account is not safe for concurrent use, so the Service owns it
// behind a mutex, logs each operation and records operation metrics. It adds no
// business rule of its own: every validation is left to the domain.
package account

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	domainaccount "github.com/amirasaad/ledgeredge/pkg/domain/account"
)

var (
	// ErrNoAccount is returned when an operation runs before Open.
	ErrNoAccount = errors.New("no account has been opened")
	// ErrAlreadyOpen is returned when Open is called twice on the same service.
	ErrAlreadyOpen = errors.New("account already opened")
)

// View is a point-in-time copy of the session account.
type View struct {
	ID        int64   `json:"id"`
	OwnerName string  `json:"owner_name"`
	Balance   float64 `json:"balance"`
	Active    bool    `json:"active"`
}

func viewOf(a *domainaccount.Account) View {
	return View{
		ID:        a.ID(),
		OwnerName: a.OwnerName(),
		Balance:   a.Balance(),
		Active:    a.IsActive(),
	}
}

// Service provides serialized access to one account.
type Service struct {
	mu      sync.Mutex
	account *domainaccount.Account
	logger  *slog.Logger
}

// New creates a Service with no account. Call Open before any other operation.
func New(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Open creates the session account for ownerName.
func (s *Service) Open(ctx context.Context, ownerName string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account != nil {
		s.record(ctx, "open", ErrAlreadyOpen)
		return viewOf(s.account), ErrAlreadyOpen
	}
	s.account = domainaccount.New(ownerName)
	s.logger.InfoContext(ctx, "Account opened",
		"account_id", s.account.ID(),
		"owner", s.account.OwnerName(),
	)
	s.record(ctx, "open", nil)
	return viewOf(s.account), nil
}

// Snapshot returns the current state of the account.
func (s *Service) Snapshot(_ context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return View{}, ErrNoAccount
	}
	return viewOf(s.account), nil
}

// Deposit adds amount to the account.
func (s *Service) Deposit(ctx context.Context, amount float64) (View, error) {
	return s.apply(ctx, "deposit", func(a *domainaccount.Account) error {
		return a.Deposit(amount)
	}, "amount", amount)
}

// Withdraw removes amount from the account.
func (s *Service) Withdraw(ctx context.Context, amount float64) (View, error) {
	return s.apply(ctx, "withdraw", func(a *domainaccount.Account) error {
		return a.Withdraw(amount)
	}, "amount", amount)
}

// Rename changes the owner name. Inactive accounts may be renamed.
func (s *Service) Rename(ctx context.Context, ownerName string) (View, error) {
	return s.apply(ctx, "rename", func(a *domainaccount.Account) error {
		return a.SetOwnerName(ownerName)
	})
}

// Close deactivates the account.
func (s *Service) Close(ctx context.Context) (View, error) {
	return s.apply(ctx, "close", func(a *domainaccount.Account) error {
		a.CloseAccount()
		return nil
	})
}

// Reopen reactivates the account.
func (s *Service) Reopen(ctx context.Context) (View, error) {
	return s.apply(ctx, "reopen", func(a *domainaccount.Account) error {
		a.OpenAccount()
		return nil
	})
}

// TransferTo moves amount from the session account to target. target is owned by
// the caller and is not locked by the Service. A failed deposit leg leaves the
// session account debited; see domainaccount.Account.TransferTo.
func (s *Service) TransferTo(ctx context.Context, target *domainaccount.Account, amount float64) (View, error) {
	args := []any{"amount", amount}
	if target != nil {
		args = append(args, "target_id", target.ID())
	}
	return s.apply(ctx, "transfer", func(a *domainaccount.Account) error {
		return a.TransferTo(target, amount)
	}, args...)
}

// apply runs op under the lock. The returned View reflects the account after op,
// whether or not op failed.
func (s *Service) apply(
	ctx context.Context,
	operation string,
	op func(*domainaccount.Account) error,
	args ...any,
) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		s.record(ctx, operation, ErrNoAccount)
		return View{}, ErrNoAccount
	}

	logger := s.logger.With(append([]any{"operation", operation, "account_id", s.account.ID()}, args...)...)
	err := op(s.account)
	view := viewOf(s.account)
	s.record(ctx, operation, err)
	if err != nil {
		if outcome(err) == outcomeError {
			logger.ErrorContext(ctx, "Account operation failed", "error", err)
		} else {
			logger.WarnContext(ctx, "Account operation rejected", "error", err)
		}
		return view, err
	}
	logger.InfoContext(ctx, "Account operation applied", "balance", view.Balance, "active", view.Active)
	return view, nil
}

func (s *Service) record(_ context.Context, operation string, err error) {
	operationsTotal.WithLabelValues(operation, outcome(err)).Inc()
	if err == nil && s.account != nil {
		balanceGauge.Set(s.account.Balance())
	}
}
