// Command admin_seed creates the first ADMIN customer from the environment.
package main

import (
	"context"
	"errors"
	"os"

	"digiwallet/internal/config"
	"digiwallet/internal/logger"
	"digiwallet/internal/models"
	"digiwallet/internal/repositories"
	"digiwallet/internal/services/auth"
	"digiwallet/internal/validation"

	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	logger.New(logger.Config{Level: cfg.Log.Level, Pretty: true})

	admin := &models.Customer{
		TrIdentityNo: os.Getenv("ADMIN_TR_IDENTITY_NO"),
		Email:        os.Getenv("ADMIN_EMAIL"),
		Name:         config.GetEnv("ADMIN_NAME", "System"),
		Surname:      config.GetEnv("ADMIN_SURNAME", "Admin"),
		Role:         models.RoleAdmin,
		TokenVersion: 1,
	}
	password := os.Getenv("ADMIN_PASSWORD")

	if admin.Email == "" || password == "" || admin.TrIdentityNo == "" {
		log.Fatal().Msg("ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_TR_IDENTITY_NO must be set in environment")
	}
	if !validation.IsIdentityNo(admin.TrIdentityNo) {
		log.Fatal().Msg(validation.IdentityNoMessage)
	}

	db, err := repositories.OpenPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer func() {
		if err := repositories.Close(db); err != nil {
			log.Warn().Err(err).Msg("failed to close database connection")
		}
	}()

	admin.Password, err = auth.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	err = repositories.NewStore(db).Customers().Create(context.Background(), admin)
	switch {
	case errors.Is(err, repositories.ErrDuplicateKey):
		log.Info().Str("email", admin.Email).Msg("admin customer already exists")
	case err != nil:
		log.Fatal().Err(err).Msg("failed to create admin customer")
	default:
		log.Info().Uint("id", admin.ID).Str("email", admin.Email).Msg("admin customer created")
	}
}
