package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
	cache HealthChecker
}

func NewHealthHandler(store Pinger, cache HealthChecker) *HealthHandler {
	return &HealthHandler{store: store, cache: cache}
}

// HealthCheck reports 503 when the database is unreachable. A cache outage
// degrades the service but does not fail the check.
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status, overall := fiber.StatusOK, "ok"
	database, cache := "connected", "connected"

	if err := h.store.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("database health check failed")
		database = "unavailable"
		status, overall = fiber.StatusServiceUnavailable, "degraded"
	}
	if err := h.cache.HealthCheck(ctx); err != nil {
		log.Warn().Err(err).Msg("cache health check failed")
		cache = "unavailable"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"services": fiber.Map{
			"database": database,
			"redis":    cache,
		},
	})
}
