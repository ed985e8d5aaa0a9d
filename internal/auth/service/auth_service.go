package service

import (
	"context"
	"errors"

	"github.com/itsSauraj/recipe-api/internal/auth/domain"
	"github.com/itsSauraj/recipe-api/internal/auth/repository"
	"github.com/itsSauraj/recipe-api/internal/common/clock"
	commoncrypto "github.com/itsSauraj/recipe-api/internal/common/crypto"
	commonerrors "github.com/itsSauraj/recipe-api/internal/common/errors"
	"github.com/itsSauraj/recipe-api/internal/common/logger"
	"github.com/itsSauraj/recipe-api/internal/observability/metrics"
)

type AuthService struct {
	repo        repository.Repository
	hasher      commoncrypto.PasswordHasher
	idGenerator commoncrypto.IDGenerator
	tokens      *TokenIssuer
	clock       clock.Clock
	log         *logger.Logger
}

type AuthServiceDeps struct {
	Repo        repository.Repository
	Hasher      commoncrypto.PasswordHasher
	IDGenerator commoncrypto.IDGenerator
	Tokens      *TokenIssuer
	Clock       clock.Clock
	Log         *logger.Logger
}

func NewAuthService(deps AuthServiceDeps) *AuthService {
	return &AuthService{
		repo:        deps.Repo,
		hasher:      deps.Hasher,
		idGenerator: deps.IDGenerator,
		tokens:      deps.Tokens,
		clock:       deps.Clock,
		log:         deps.Log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthResult struct {
	AccessToken string
	TokenType   string
}

// Register hashes the password, persists the user and issues a token so
// registration yields a usable session in one round trip. Plaintext never
// reaches the repository.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  input.Email,
		"action": "register_attempt",
	}).Info("register attempt")

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "register_hash_failed",
		}).Errorf("register failed: password hash error: %v", err)
		return AuthResult{}, commonerrors.ErrInternalError.WithCause(err)
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		return AuthResult{}, commonerrors.ErrInternalError.WithCause(err)
	}

	user := domain.User{
		ID:           domain.ID(id),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, commonerrors.ErrEmailAlreadyRegistered) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  input.Email,
				"action": "register_email_exists",
			}).Warn("register failed: email already registered")
			return AuthResult{}, commonerrors.ErrEmailAlreadyRegistered
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "register_create_failed",
		}).Errorf("register failed: %v", err)
		return AuthResult{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "register_token_issue_failed",
		}).Errorf("register failed: token issue error: %v", err)
		return AuthResult{}, commonerrors.ErrInternalError.WithCause(err)
	}

	metrics.UsersRegistered.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"email":   user.Email,
		"user_id": string(user.ID),
		"action":  "register_success",
	}).Info("register success")

	return AuthResult{AccessToken: token, TokenType: "bearer"}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password collapse into the same invalid-credentials error.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  email,
		"action": "login_attempt",
	}).Info("login attempt")

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, commonerrors.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  email,
				"action": "login_user_not_found",
			}).Warn("login failed: not found")
			return AuthResult{}, commonerrors.ErrInvalidCredentials
		}
		return AuthResult{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "login_bad_password",
		}).Warn("login failed: password mismatch")
		return AuthResult{}, commonerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return AuthResult{}, commonerrors.ErrInternalError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"email":   user.Email,
		"user_id": string(user.ID),
		"action":  "login_success",
	}).Info("login success")

	return AuthResult{AccessToken: token, TokenType: "bearer"}, nil
}
