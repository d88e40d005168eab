package handlers

import (
	"context"

	"digiwallet/internal/services/auth"
	"digiwallet/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a BASIC customer and returns a token pair.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req auth.RegisterRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	resp, err := h.authService.Register(ctx, req)
	if err != nil {
		return HandleError(c, err)
	}
	return utils.Created(c, resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	resp, err := h.authService.Login(ctx, req)
	if err != nil {
		return HandleError(c, err)
	}
	return utils.Success(c, resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req auth.RefreshRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	resp, err := h.authService.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return HandleError(c, err)
	}
	return utils.Success(c, resp)
}

// Logout revokes every token issued to the caller so far.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	customer, err := utils.GetCustomer(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if err := h.authService.Logout(c.UserContext(), customer.ID); err != nil {
		return HandleError(c, err)
	}
	return utils.Message(c, fiber.StatusOK, "Logged out successfully")
}
