// Package auth registers customers and issues the bearer tokens the rest of
// the API is called with.
package auth

import (
	"context"
	"errors"
	"fmt"

	"digiwallet/internal/config"
	appErrors "digiwallet/internal/errors"
	"digiwallet/internal/models"
	"digiwallet/internal/repositories"
	"digiwallet/internal/services/customer"
	"digiwallet/internal/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=50"`
	Surname      string `json:"surname" validate:"required,min=2,max=50"`
	TrIdentityNo string `json:"trIdentityNo" validate:"required,tr_identity_no"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,strong_password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type AuthenticationResponse struct {
	AuthToken    string `json:"authToken"`
	RefreshToken string `json:"refreshToken"`
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthenticationResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthenticationResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthenticationResponse, error)
	Logout(ctx context.Context, customerID uint) error

	// Authenticate resolves an access token to the current customer.
	Authenticate(ctx context.Context, accessToken string) (*models.Customer, error)
}

type service struct {
	store     repositories.Store
	customers customer.Service
	jwt       config.JWTConfig
}

func NewService(store repositories.Store, customers customer.Service, jwtCfg config.JWTConfig) Service {
	if store == nil {
		panic("store is required")
	}
	if customers == nil {
		panic("customer service is required")
	}
	return &service{store: store, customers: customers, jwt: jwtCfg}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthenticationResponse, error) {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	c := &models.Customer{
		TrIdentityNo: req.TrIdentityNo,
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		Password:     hashed,
		Role:         models.RoleBasic,
		TokenVersion: 1,
	}

	err = s.store.ExecuteInTransaction(ctx, func(st repositories.Store) error {
		if _, err := st.Customers().GetByTrIdentityNo(ctx, req.TrIdentityNo); err == nil {
			return appErrors.ErrIdentityNoTaken
		} else if !errors.Is(err, repositories.ErrCustomerNotFound) {
			return fmt.Errorf("failed to check identity number: %w", err)
		}
		if _, err := st.Customers().GetByEmail(ctx, req.Email); err == nil {
			return appErrors.ErrEmailTaken
		} else if !errors.Is(err, repositories.ErrCustomerNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		if err := st.Customers().Create(ctx, c); err != nil {
			if errors.Is(err, repositories.ErrDuplicateKey) {
				return appErrors.ErrIdentityNoTaken
			}
			return fmt.Errorf("failed to create customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("customer_id", c.ID).Msg("customer registered")
	return s.issue(c)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthenticationResponse, error) {
	c, err := s.customers.GetByEmail(ctx, req.Email)
	if err != nil {
		if appErrors.IsKind(err, appErrors.KindNotFound) {
			log.Debug().Msg("login failed: unknown email")
			return nil, appErrors.ErrBadCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(req.Password)); err != nil {
		log.Debug().Uint("customer_id", c.ID).Msg("login failed: incorrect password")
		return nil, appErrors.ErrBadCredentials
	}

	return s.issue(c)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*AuthenticationResponse, error) {
	c, err := s.resolve(ctx, refreshToken, models.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	return s.issue(c)
}

func (s *service) Logout(ctx context.Context, customerID uint) error {
	if err := s.store.Customers().IncrementTokenVersion(ctx, customerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return appErrors.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	s.customers.Invalidate(ctx, customerID)
	log.Info().Uint("customer_id", customerID).Msg("customer logged out")
	return nil
}

func (s *service) Authenticate(ctx context.Context, accessToken string) (*models.Customer, error) {
	return s.resolve(ctx, accessToken, models.TokenTypeAccess)
}

// resolve rejects tokens issued before the customer's last logout.
func (s *service) resolve(ctx context.Context, token, tokenType string) (*models.Customer, error) {
	claims, err := utils.ParseToken(s.jwt, token, tokenType)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	c, err := s.customers.GetByID(ctx, claims.CustomerID)
	if err != nil {
		if appErrors.IsKind(err, appErrors.KindNotFound) {
			return nil, appErrors.ErrInvalidToken
		}
		return nil, err
	}
	if c.TokenVersion != claims.TokenVersion {
		return nil, appErrors.ErrInvalidToken
	}
	return c, nil
}

func (s *service) issue(c *models.Customer) (*AuthenticationResponse, error) {
	access, refresh, err := utils.GenerateTokens(s.jwt, c)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return &AuthenticationResponse{AuthToken: access, RefreshToken: refresh}, nil
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
