package handlers

import (
	"context"

	"digiwallet/internal/services/transaction"
	"digiwallet/internal/utils"
	"digiwallet/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	transactionService transaction.Service
}

func NewTransactionHandler(transactionService transaction.Service) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func (h *TransactionHandler) Deposit(c *fiber.Ctx) error {
	return h.deposit(c, self)
}

func (h *TransactionHandler) AdminDeposit(c *fiber.Ctx) error {
	return h.deposit(c, onBehalf)
}

func (h *TransactionHandler) Withdraw(c *fiber.Ctx) error {
	return h.withdraw(c, self)
}

func (h *TransactionHandler) AdminWithdraw(c *fiber.Ctx) error {
	return h.withdraw(c, onBehalf)
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	return h.getTransactions(c, self)
}

func (h *TransactionHandler) AdminGetTransactions(c *fiber.Ctx) error {
	return h.getTransactions(c, onBehalf)
}

func (h *TransactionHandler) ChangeStatus(c *fiber.Ctx) error {
	return h.changeStatus(c, self)
}

func (h *TransactionHandler) AdminChangeStatus(c *fiber.Ctx) error {
	return h.changeStatus(c, onBehalf)
}

type targetFunc func(c *fiber.Ctx) (target, bool, error)

func (h *TransactionHandler) deposit(c *fiber.Ctx, resolve targetFunc) error {
	t, ok, err := resolve(c)
	if !ok {
		return err
	}
	var req transaction.DepositRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	var resp *transaction.TransactionResponse
	if t.admin() {
		resp, err = h.transactionService.DepositFor(ctx, t.identityNo, req)
	} else {
		resp, err = h.transactionService.Deposit(ctx, t.customer, req)
	}
	if err != nil {
		return HandleError(c, err)
	}
	return utils.Success(c, resp)
}

func (h *TransactionHandler) withdraw(c *fiber.Ctx, resolve targetFunc) error {
	t, ok, err := resolve(c)
	if !ok {
		return err
	}
	var req transaction.WithdrawRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	var resp *transaction.TransactionResponse
	if t.admin() {
		resp, err = h.transactionService.WithdrawFor(ctx, t.identityNo, req)
	} else {
		resp, err = h.transactionService.Withdraw(ctx, t.customer, req)
	}
	if err != nil {
		return HandleError(c, err)
	}
	return utils.Success(c, resp)
}

func (h *TransactionHandler) getTransactions(c *fiber.Ctx, resolve targetFunc) error {
	t, ok, err := resolve(c)
	if !ok {
		return err
	}
	walletID := c.Query("walletId")
	v := validation.New()
	v.Check(walletID != "", "walletId", "Wallet ID must be provided")
	if !v.Valid() {
		return utils.ValidationFailed(c, v.Errors)
	}

	var resp *transaction.WalletTransactionListResponse
	if t.admin() {
		resp, err = h.transactionService.GetTransactionsFor(c.UserContext(), t.identityNo, walletID)
	} else {
		resp, err = h.transactionService.GetTransactions(c.UserContext(), t.customer, walletID)
	}
	if err != nil {
		return HandleError(c, err)
	}
	return utils.Success(c, resp)
}

func (h *TransactionHandler) changeStatus(c *fiber.Ctx, resolve targetFunc) error {
	t, ok, err := resolve(c)
	if !ok {
		return err
	}
	var req transaction.StatusChangeRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	if t.admin() {
		err = h.transactionService.ChangeTransactionStatusFor(ctx, t.identityNo, req)
	} else {
		err = h.transactionService.ChangeTransactionStatus(ctx, t.customer, req)
	}
	if err != nil {
		return HandleError(c, err)
	}
	return utils.Message(c, fiber.StatusOK, "Transaction status updated successfully")
}
