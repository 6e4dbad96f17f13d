package account

import (
	"errors"

	domainaccount "github.com/amirasaad/ledgeredge/pkg/domain/account"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK                = "ok"
	outcomeInvalidArgument   = "invalid_argument"
	outcomeInactiveAccount   = "inactive_account"
	outcomeInsufficientFunds = "insufficient_funds"
	outcomeError             = "error"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_account_operations_total",
		Help: "Account operations processed, labeled by operation and outcome",
	}, []string{"operation", "outcome"})

	balanceGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ledger_account_balance",
		Help: "Balance of the session account after the last successful operation",
	})
)

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, domainaccount.ErrInvalidArgument):
		return outcomeInvalidArgument
	case errors.Is(err, domainaccount.ErrInactiveAccount):
		return outcomeInactiveAccount
	case errors.Is(err, domainaccount.ErrInsufficientFunds):
		return outcomeInsufficientFunds
	default:
		return outcomeError
	}
}
