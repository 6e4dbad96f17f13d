package account_test

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/amirasaad/ledgeredge/pkg/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc      string
		ownerName string
		wantOwner string
	}{
		{desc: "named owner", ownerName: "Alice", wantOwner: "Alice"},
		{desc: "empty owner", ownerName: "", wantOwner: account.DefaultOwnerName},
		{desc: "blank owner", ownerName: "   ", wantOwner: account.DefaultOwnerName},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			acc := account.New(tc.ownerName)
			assert.Equal(t, tc.wantOwner, acc.OwnerName())
			assert.Zero(t, acc.Balance())
			assert.True(t, acc.IsActive())
			assert.Positive(t, acc.ID())
		})
	}
}

func TestNew_IDsIncrease(t *testing.T) {
	t.Parallel()
	first := account.New("a")
	second := account.New("b")
	assert.Greater(t, second.ID(), first.ID())
}

func TestNew_ConcurrentIDsAreUnique(t *testing.T) {
	t.Parallel()
	const workers = 64
	const perWorker = 50

	ids := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- account.New("").ID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, workers*perWorker)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)

	// Ids handed out after the burst are greater than every id from it.
	all := make([]int64, 0, len(seen))
	for id := range seen {
		all = append(all, id)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	assert.Greater(t, account.New("").ID(), all[len(all)-1])
}

func TestSetOwnerName(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty names", func(t *testing.T) {
		t.Parallel()
		acc := account.New("Alice")
		for _, name := range []string{"", " ", "\t\n"} {
			err := acc.SetOwnerName(name)
			assert.ErrorIs(t, err, account.ErrInvalidArgument)
			assert.Equal(t, "Alice", acc.OwnerName())
		}
	})

	t.Run("renames inactive account", func(t *testing.T) {
		t.Parallel()
		acc := account.New("Alice")
		acc.CloseAccount()
		require.NoError(t, acc.SetOwnerName("Bob"))
		assert.Equal(t, "Bob", acc.OwnerName())
		assert.False(t, acc.IsActive())
	})
}

func TestDepositWithdraw(t *testing.T) {
	t.Parallel()
	acc := account.New("Alice")

	require.NoError(t, acc.Deposit(100))
	assert.InDelta(t, 100, acc.Balance(), 1e-9)

	err := acc.Withdraw(150)
	require.ErrorIs(t, err, account.ErrInsufficientFunds)
	assert.EqualError(t, err, "insufficient funds: requested 150, available 100")
	assert.InDelta(t, 100, acc.Balance(), 1e-9)

	var fundsErr *account.InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))
	assert.InDelta(t, 150, fundsErr.Requested, 1e-9)
	assert.InDelta(t, 100, fundsErr.Available, 1e-9)

	require.NoError(t, acc.Withdraw(40))
	assert.InDelta(t, 60, acc.Balance(), 1e-9)
}

func TestWithdraw_ExactBalance(t *testing.T) {
	t.Parallel()
	acc := account.New("Alice")
	require.NoError(t, acc.Deposit(25))
	require.NoError(t, acc.Withdraw(25))
	assert.Zero(t, acc.Balance())
}

func TestNonPositiveAmounts(t *testing.T) {
	t.Parallel()
	for _, amount := range []float64{0, -0.01, -100, math.Inf(-1), math.NaN()} {
		acc := account.New("Alice")
		require.NoError(t, acc.Deposit(10))

		assert.ErrorIs(t, acc.Deposit(amount), account.ErrInvalidArgument, "deposit %v", amount)
		assert.ErrorIs(t, acc.Withdraw(amount), account.ErrInvalidArgument, "withdraw %v", amount)
		assert.InDelta(t, 10, acc.Balance(), 1e-9)
	}
}

func TestInactiveAccount(t *testing.T) {
	t.Parallel()

	t.Run("blocks mutations regardless of amount", func(t *testing.T) {
		t.Parallel()
		target := account.New("Bob")
		for _, amount := range []float64{10, 0, -5, 1e9} {
			acc := account.New("Alice")
			require.NoError(t, acc.Deposit(50))
			acc.CloseAccount()

			assert.ErrorIs(t, acc.Deposit(amount), account.ErrInactiveAccount)
			assert.ErrorIs(t, acc.Withdraw(amount), account.ErrInactiveAccount)
			assert.ErrorIs(t, acc.TransferTo(target, amount), account.ErrInactiveAccount)
			assert.InDelta(t, 50, acc.Balance(), 1e-9)
		}
		assert.Zero(t, target.Balance())
	})

	t.Run("close and reopen", func(t *testing.T) {
		t.Parallel()
		acc := account.New("Alice")
		acc.CloseAccount()
		assert.ErrorIs(t, acc.Deposit(10), account.ErrInactiveAccount)
		assert.Zero(t, acc.Balance())

		acc.OpenAccount()
		require.NoError(t, acc.Deposit(10))
		assert.InDelta(t, 10, acc.Balance(), 1e-9)
	})

	t.Run("toggles are idempotent", func(t *testing.T) {
		t.Parallel()
		acc := account.New("Alice")
		acc.CloseAccount()
		acc.CloseAccount()
		assert.False(t, acc.IsActive())
		acc.OpenAccount()
		acc.OpenAccount()
		assert.True(t, acc.IsActive())
	})
}

func TestBalanceTracksSuccessfulOperations(t *testing.T) {
	t.Parallel()
	acc := account.New("Alice")

	ops := []struct {
		deposit bool
		amount  float64
	}{
		{true, 10}, {false, 3}, {false, 20}, {true, 5.5}, {false, 12.5}, {false, 0.01}, {true, 100},
	}
	var want float64
	for _, op := range ops {
		var err error
		if op.deposit {
			err = acc.Deposit(op.amount)
			if err == nil {
				want += op.amount
			}
		} else {
			err = acc.Withdraw(op.amount)
			if err == nil {
				want -= op.amount
			}
		}
		assert.GreaterOrEqual(t, acc.Balance(), 0.0)
	}
	assert.InDelta(t, want, acc.Balance(), 1e-9)
}

func TestString(t *testing.T) {
	t.Parallel()
	acc := account.New("Alice")
	require.NoError(t, acc.Deposit(12.5))
	want := "Account[ID=" + strconv.FormatInt(acc.ID(), 10) + ", Owner=Alice, Balance=12.50, Active=true]"
	assert.Equal(t, want, acc.String())

	acc.CloseAccount()
	assert.Contains(t, acc.String(), "Active=false")
}
