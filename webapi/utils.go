package webapi

import (
	"errors"
	"fmt"
	"net/http"

	domainaccount "github.com/amirasaad/ledgeredge/pkg/domain/account"
	"github.com/amirasaad/ledgeredge/pkg/service/account"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrInvalidBody is returned by BindAndValidate when the request body cannot be parsed.
var ErrInvalidBody = errors.New("invalid request body")

var validate = validator.New()

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// SuccessResponseJSON writes a Response with the given status.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON returns a response following RFC 9457 Problem Details
func ErrorResponseJSON(
	c *fiber.Ctx,
	status int,
	title string,
	detail any,
) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()

	// JSON sets the content type, so the problem type has to be set afterwards.
	if err := c.Status(status).JSON(pd); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return nil
}

// ProblemDetailsJSON writes err as problem details with the status mapped by ErrorToStatusCode.
func ProblemDetailsJSON(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	return ErrorResponseJSON(c, status, http.StatusText(status), err.Error())
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, ErrInvalidBody):
		return fiber.StatusBadRequest
	case errors.As(err, new(validator.ValidationErrors)):
		return fiber.StatusBadRequest
	case errors.Is(err, domainaccount.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, domainaccount.ErrInactiveAccount):
		return fiber.StatusConflict
	case errors.Is(err, domainaccount.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, account.ErrNoAccount):
		return fiber.StatusNotFound
	case errors.Is(err, account.ErrAlreadyOpen):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	return &input, nil
}
