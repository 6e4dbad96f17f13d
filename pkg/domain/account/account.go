package account

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// DefaultOwnerName is used when an account is created without an owner name.
const DefaultOwnerName = "Unknown"

// minBalance is the lowest balance a withdrawal may leave behind.
const minBalance = 0.0

// lastID holds the most recently assigned account id. It is process-wide and never reset,
// so ids are unique for the lifetime of the process and the first account gets id 1.
var lastID atomic.Int64

func nextID() int64 {
	return lastID.Add(1)
}

// Account is a single bank account with an owner, a balance and an activity flag.
//
// Invariants:
//   - The ID is unique across all accounts created in the process and never changes.
//   - The balance is never negative after a successful operation.
//   - The owner name is never empty.
//   - Balance-mutating operations fail while the account is inactive.
//
// Only id allocation is safe for concurrent use. Callers sharing an Account between
// goroutines must serialize access themselves.
type Account struct {
	id        int64
	balance   float64
	ownerName string
	active    bool
}

// New creates an active account with a zero balance. An empty or blank owner name
// falls back to DefaultOwnerName.
func New(ownerName string) *Account {
	if strings.TrimSpace(ownerName) == "" {
		ownerName = DefaultOwnerName
	}
	return &Account{
		id:        nextID(),
		ownerName: ownerName,
		active:    true,
	}
}

// ID returns the account identifier.
func (a *Account) ID() int64 {
	return a.id
}

// Balance returns the current balance.
func (a *Account) Balance() float64 {
	return a.balance
}

// OwnerName returns the account owner's name.
func (a *Account) OwnerName() string {
	return a.ownerName
}

// IsActive reports whether the account accepts balance mutations.
func (a *Account) IsActive() bool {
	return a.active
}

// SetOwnerName replaces the owner name. It does not require the account to be active.
func (a *Account) SetOwnerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalidArgument("owner name cannot be empty")
	}
	a.ownerName = name
	return nil
}

// Deposit adds amount to the balance. The account must be active and the amount positive.
func (a *Account) Deposit(amount float64) error {
	if err := a.checkActive(); err != nil {
		return err
	}
	if !(amount > 0) {
		return invalidArgument("deposit amount must be positive")
	}
	a.balance += amount
	return nil
}

// Withdraw removes amount from the balance. The account must be active, the amount
// positive, and the balance must cover the amount; otherwise the balance is unchanged.
func (a *Account) Withdraw(amount float64) error {
	if err := a.checkActive(); err != nil {
		return err
	}
	if !(amount > 0) {
		return invalidArgument("withdrawal amount must be positive")
	}
	if !(a.balance-amount >= minBalance) {
		return &InsufficientFundsError{Requested: amount, Available: a.balance}
	}
	a.balance -= amount
	return nil
}

// TransferTo withdraws amount from a and deposits it into target.
//
// The two legs are not atomic: if the withdrawal succeeds and the deposit fails
// (for example because target is inactive) the withdrawal is not reverted and the
// deposit error is returned.
func (a *Account) TransferTo(target *Account, amount float64) error {
	if err := a.checkActive(); err != nil {
		return err
	}
	if target == nil {
		return invalidArgument("target account cannot be nil")
	}
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	if err := target.Deposit(amount); err != nil {
		return fmt.Errorf("deposit into account %d: %w", target.id, err)
	}
	return nil
}

// CloseAccount deactivates the account.
func (a *Account) CloseAccount() {
	a.active = false
}

// OpenAccount reactivates the account.
func (a *Account) OpenAccount() {
	a.active = true
}

func (a *Account) checkActive() error {
	if !a.active {
		return ErrInactiveAccount
	}
	return nil
}

func (a *Account) String() string {
	return fmt.Sprintf("Account[ID=%d, Owner=%s, Balance=%.2f, Active=%t]",
		a.id, a.ownerName, a.balance, a.active)
}
