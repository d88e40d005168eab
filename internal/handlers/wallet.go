package handlers

import (
	"context"

	"digiwallet/internal/services/wallet"
	"digiwallet/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

func (h *WalletHandler) AddWallet(c *fiber.Ctx) error {
	return h.addWallet(c, self)
}

func (h *WalletHandler) AdminAddWallet(c *fiber.Ctx) error {
	return h.addWallet(c, onBehalf)
}

func (h *WalletHandler) ListWallets(c *fiber.Ctx) error {
	return h.listWallets(c, self)
}

func (h *WalletHandler) AdminListWallets(c *fiber.Ctx) error {
	return h.listWallets(c, onBehalf)
}

func (h *WalletHandler) addWallet(c *fiber.Ctx, resolve targetFunc) error {
	t, ok, err := resolve(c)
	if !ok {
		return err
	}
	var req wallet.CreateWalletRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	if t.admin() {
		_, err = h.walletService.AddWalletFor(ctx, t.identityNo, req)
	} else {
		_, err = h.walletService.AddWallet(ctx, t.customer, req)
	}
	if err != nil {
		return HandleError(c, err)
	}
	return utils.Message(c, fiber.StatusCreated, "Wallet created successfully")
}

func (h *WalletHandler) listWallets(c *fiber.Ctx, resolve targetFunc) error {
	t, ok, err := resolve(c)
	if !ok {
		return err
	}

	var resp []wallet.WalletResponse
	if t.admin() {
		resp, err = h.walletService.ListWalletsFor(c.UserContext(), t.identityNo)
	} else {
		resp, err = h.walletService.ListWallets(c.UserContext(), t.customer)
	}
	if err != nil {
		return HandleError(c, err)
	}
	return utils.Success(c, resp)
}
