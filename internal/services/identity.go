package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

type IdentityService interface {
	CreateAccount(ctx context.Context, email, password, role string) (uuid.UUID, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	Authenticate(ctx context.Context, token string) (*models.Session, error)
	SignOut(ctx context.Context, token string) error
}

type identityService struct {
	accounts   repositories.AccountRepository
	sessions   SessionStore
	bcryptCost int
}

func NewIdentityService(accounts repositories.AccountRepository, sessions SessionStore) IdentityService {
	return &identityService{
		accounts:   accounts,
		sessions:   sessions,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// CreateAccount implements IdentityService.
func (s *identityService) CreateAccount(ctx context.Context, email, password, role string) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return uuid.Nil, ErrAccountExists
		}
		return uuid.Nil, err
	}

	logger.Info("👤 Account created", zap.String("account_id", account.ID.String()), zap.String("role", role))

	return account.ID, nil
}

// SignIn implements IdentityService. Every sign-in starts a fresh session,
// so the conversation log always begins empty.
func (s *identityService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := &models.Session{
		ID:            uuid.NewString(),
		AccountID:     account.ID,
		Email:         account.Email,
		Role:          account.Role,
		Authenticated: true,
		ChatHistory:   []models.ChatTurn{},
		CreatedAt:     time.Now(),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("🔐 Signed in", zap.String("account_id", account.ID.String()))

	return session, nil
}

// Authenticate implements IdentityService.
func (s *identityService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	if !session.Authenticated {
		return nil, ErrUnauthenticated
	}

	return session, nil
}

// SignOut implements IdentityService.
func (s *identityService) SignOut(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
