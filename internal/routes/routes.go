// Package routes defines the API routing configuration.
// It wires services, handlers and middleware into a fiber application.
package routes

import (
	"time"

	"digiwallet/internal/config"
	"digiwallet/internal/handlers"
	"digiwallet/internal/middleware"
	"digiwallet/internal/repositories"
	"digiwallet/internal/repositories/cache"
	"digiwallet/internal/services/auth"
	"digiwallet/internal/services/customer"
	"digiwallet/internal/services/transaction"
	"digiwallet/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Options configures NewApp. A nil Cache disables caching.
type Options struct {
	Store         repositories.Store
	Cache         cache.Cache
	JWT           config.JWTConfig
	CORSOrigins   string
	AuthRateLimit int
	AccessLog     bool
}

// NewApp builds the HTTP application with every route mounted.
func NewApp(opts Options) *fiber.App {
	c := opts.Cache
	if c == nil {
		c = cache.Noop{}
	}

	customerService := customer.NewService(opts.Store, c)
	walletService := wallet.NewService(opts.Store, customerService, c)
	transactionService := transaction.NewService(opts.Store, customerService, walletService)
	authService := auth.NewService(opts.Store, customerService, opts.JWT)

	app := fiber.New(fiber.Config{
		AppName:      "digiwallet",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	if opts.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
			AllowMethods: "GET,POST,HEAD,OPTIONS",
		}))
	}
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	SetupRoutes(app, Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Transaction: handlers.NewTransactionHandler(transactionService),
		Wallet:      handlers.NewWalletHandler(walletService),
		Health:      handlers.NewHealthHandler(opts.Store, c),
		AuthMW:      middleware.NewAuthMiddleware(authService),
	}, opts.AuthRateLimit)

	return app
}

type Handlers struct {
	Auth        *handlers.AuthHandler
	Transaction *handlers.TransactionHandler
	Wallet      *handlers.WalletHandler
	Health      *handlers.HealthHandler
	AuthMW      *middleware.AuthMiddleware
}

// SetupRoutes mounts the API under /api/v1. rateLimit is the per-IP budget
// per minute for login and register; zero disables it.
func SetupRoutes(app *fiber.App, h Handlers, rateLimit int) {
	app.Get("/health", h.Health.HealthCheck)

	api := app.Group("/api/v1")

	// Public routes
	if rateLimit > 0 {
		authLimiter := newAuthLimiter(rateLimit)
		api.Post("/register", authLimiter, h.Auth.Register)
		api.Post("/login", authLimiter, h.Auth.Login)
	} else {
		api.Post("/register", h.Auth.Register)
		api.Post("/login", h.Auth.Login)
	}
	api.Post("/refresh", h.Auth.Refresh)

	// Admin routes act for the customer named by customerTrIdentityNo
	admin := api.Group("/admin", h.AuthMW.Handler, middleware.AdminOnly)
	admin.Post("/deposit", h.Transaction.AdminDeposit)
	admin.Post("/withdraw", h.Transaction.AdminWithdraw)
	admin.Get("/transactions", h.Transaction.AdminGetTransactions)
	admin.Post("/changeTransactionStatus", h.Transaction.AdminChangeStatus)
	admin.Post("/addWallet", h.Wallet.AdminAddWallet)
	admin.Get("/listWallets", h.Wallet.AdminListWallets)

	// Customer routes act for the caller
	protected := api.Group("", h.AuthMW.Handler)
	protected.Post("/logout", h.Auth.Logout)
	protected.Post("/deposit", h.Transaction.Deposit)
	protected.Post("/withdraw", h.Transaction.Withdraw)
	protected.Get("/transactions", h.Transaction.GetTransactions)
	protected.Post("/changeTransactionStatus", h.Transaction.ChangeStatus)
	protected.Post("/addWallet", h.Wallet.AddWallet)
	protected.Get("/listWallets", h.Wallet.ListWallets)
}

func newAuthLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}
