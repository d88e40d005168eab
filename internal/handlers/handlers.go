// Package handlers exposes the wallet services over HTTP.
package handlers

import (
	"time"

	appErrors "digiwallet/internal/errors"
	"digiwallet/internal/models"
	"digiwallet/internal/utils"
	"digiwallet/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// IdentityNoQuery names the customer an admin request acts for.
const IdentityNoQuery = "customerTrIdentityNo"

const requestTimeout = 10 * time.Second

// HandleError maps service errors to HTTP responses.
func HandleError(c *fiber.Ctx, err error) error {
	switch appErrors.KindOf(err) {
	case appErrors.KindNotFound:
		return utils.NotFound(c, err.Error())
	case appErrors.KindConflict:
		return utils.Error(c, fiber.StatusConflict, err.Error())
	case appErrors.KindInsufficientFunds, appErrors.KindCapabilityDisabled, appErrors.KindValidation:
		return utils.BadRequest(c, err.Error())
	case appErrors.KindUnauthorized:
		return utils.Unauthorized(c, err.Error())
	case appErrors.KindForbidden:
		return utils.Forbidden(c, err.Error())
	}

	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("request failed")
	return utils.InternalError(c, "An unexpected error occurred")
}

// ErrorHandler is the fiber fallback for errors no handler wrote a body for.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return utils.Error(c, fe.Code, fe.Message)
	}
	return HandleError(c, err)
}

// bind parses and validates the request body. When it returns false the
// response has already been written.
func bind(c *fiber.Ctx, dst interface{}) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, utils.BadRequest(c, "Invalid request body")
	}
	if errs := validation.Validate(dst); errs != nil {
		return false, utils.ValidationFailed(c, errs)
	}
	return true, nil
}

// target is who a request acts for: the caller, or on admin routes the
// customer named by the query string.
type target struct {
	customer   *models.Customer
	identityNo string
}

func (t target) admin() bool {
	return t.customer == nil
}

func self(c *fiber.Ctx) (target, bool, error) {
	customer, err := utils.GetCustomer(c)
	if err != nil {
		return target{}, false, utils.Unauthorized(c, "Unauthorized")
	}
	return target{customer: customer}, true, nil
}

func onBehalf(c *fiber.Ctx) (target, bool, error) {
	identityNo := c.Query(IdentityNoQuery)
	v := validation.New()
	v.IdentityNo(IdentityNoQuery, identityNo)
	if !v.Valid() {
		return target{}, false, utils.ValidationFailed(c, v.Errors)
	}
	return target{identityNo: identityNo}, true, nil
}
