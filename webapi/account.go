package webapi

import (
	"github.com/amirasaad/ledgeredge/pkg/service/account"
	"github.com/gofiber/fiber/v2"
)

// AmountRequest carries the amount of a deposit or withdrawal. Only presence is
// validated here; the account decides whether the amount is acceptable.
type AmountRequest struct {
	Amount *float64 `json:"amount" validate:"required"`
}

// RenameRequest carries the new owner name.
type RenameRequest struct {
	OwnerName *string `json:"owner_name" validate:"required"`
}

// AccountRoutes registers the session account endpoints.
//
// Routes:
//   - GET    /account           : Current account state.
//   - POST   /account/deposit   : Deposit funds.
//   - POST   /account/withdraw  : Withdraw funds.
//   - PUT    /account/owner     : Change the owner name.
//   - POST   /account/close     : Deactivate the account.
//   - POST   /account/open      : Reactivate the account.
func AccountRoutes(app *fiber.App, svc *account.Service) {
	app.Get("/account", GetAccount(svc))
	app.Post("/account/deposit", Deposit(svc))
	app.Post("/account/withdraw", Withdraw(svc))
	app.Put("/account/owner", Rename(svc))
	app.Post("/account/close", Close(svc))
	app.Post("/account/open", Reopen(svc))
}

func GetAccount(svc *account.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := svc.Snapshot(c.UserContext())
		if err != nil {
			return ProblemDetailsJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account retrieved", view)
	}
}

// Deposit returns a handler that adds the requested amount to the account.
func Deposit(svc *account.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[AmountRequest](c)
		if err != nil {
			return ProblemDetailsJSON(c, err)
		}
		view, err := svc.Deposit(c.UserContext(), *input.Amount)
		if err != nil {
			return ProblemDetailsJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", view)
	}
}

// Withdraw returns a handler that removes the requested amount from the account.
func Withdraw(svc *account.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[AmountRequest](c)
		if err != nil {
			return ProblemDetailsJSON(c, err)
		}
		view, err := svc.Withdraw(c.UserContext(), *input.Amount)
		if err != nil {
			return ProblemDetailsJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", view)
	}
}

func Rename(svc *account.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[RenameRequest](c)
		if err != nil {
			return ProblemDetailsJSON(c, err)
		}
		view, err := svc.Rename(c.UserContext(), *input.OwnerName)
		if err != nil {
			return ProblemDetailsJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Owner changed", view)
	}
}

func Close(svc *account.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := svc.Close(c.UserContext())
		if err != nil {
			return ProblemDetailsJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account deactivated", view)
	}
}

func Reopen(svc *account.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := svc.Reopen(c.UserContext())
		if err != nil {
			return ProblemDetailsJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account reactivated", view)
	}
}
