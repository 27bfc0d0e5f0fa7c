package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/accounting-service/internal/auth"
	"github.com/spec-kit/accounting-service/internal/config"
	"github.com/spec-kit/accounting-service/internal/domain"
	"github.com/spec-kit/accounting-service/internal/repository"
)

// ErrUsernameTaken signals a registration attempt with an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// loginFailedMessage is the single generic message for every failed login.
// Unknown usernames and wrong secrets are indistinguishable to the caller.
const loginFailedMessage = "invalid username or password"

// LoginResult is the outcome of an authentication attempt. A failed
// attempt is a normal result, not an error.
type LoginResult struct {
	Success  bool
	Message  string
	Token    string
	ClientID string // set for client logins only
}

// AuthService coordinates both login flows and accountant registration.
type AuthService struct {
	accountants repository.AccountantRepository
	clients     repository.ClientRepository
	tokenMgr    *auth.TokenManager
	bcryptCost  int
	logger      *zap.Logger
}

// AuthDependencies encapsulates repo requirements for the auth service.
type AuthDependencies struct {
	AccountantRepo repository.AccountantRepository
	ClientRepo     repository.ClientRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies, logger *zap.Logger) *AuthService {
	return &AuthService{
		accountants: deps.AccountantRepo,
		clients:     deps.ClientRepo,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		bcryptCost:  cfg.Auth.BcryptCost,
		logger:      logger,
	}
}

// LoginAccountant authenticates an accountant and mints an ACCOUNTANT token.
func (s *AuthService) LoginAccountant(ctx context.Context, username, password string) (LoginResult, error) {
	acc, err := s.accountants.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LoginResult{Message: loginFailedMessage}, nil
		}
		return LoginResult{}, err
	}

	if err := auth.ComparePassword(acc.PasswordHash, password); err != nil {
		return LoginResult{Message: loginFailedMessage}, nil
	}

	token, err := s.tokenMgr.Mint(acc.Username, domain.RoleAccountant)
	if err != nil {
		return LoginResult{}, err
	}
	s.logger.Info("accountant logged in", zap.String("username", acc.Username))
	return LoginResult{Success: true, Message: "login successful", Token: token}, nil
}

// LoginClient authenticates a client portal user and mints a CLIENT token.
func (s *AuthService) LoginClient(ctx context.Context, username, password string) (LoginResult, error) {
	client, err := s.clients.GetByLoginUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LoginResult{Message: loginFailedMessage}, nil
		}
		return LoginResult{}, err
	}

	if !client.CanLogin() {
		return LoginResult{Message: loginFailedMessage}, nil
	}
	if err := auth.ComparePassword(*client.LoginPasswordHash, password); err != nil {
		return LoginResult{Message: loginFailedMessage}, nil
	}

	token, err := s.tokenMgr.Mint(*client.LoginUsername, domain.RoleClient)
	if err != nil {
		return LoginResult{}, err
	}
	s.logger.Info("client logged in", zap.String("client_id", client.ClientID))
	return LoginResult{Success: true, Message: "login successful", Token: token, ClientID: client.ClientID}, nil
}

// RegisterAccountant creates a new accountant with a hashed secret.
func (s *AuthService) RegisterAccountant(ctx context.Context, acc *domain.Accountant, password string) error {
	exists, err := s.accountants.ExistsByUsername(ctx, acc.Username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUsernameTaken
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	acc.PasswordHash = hash

	if err := s.accountants.Create(ctx, acc); err != nil {
		return err
	}
	s.logger.Info("accountant registered", zap.String("username", acc.Username))
	return nil
}

// TokenManager exposes the underlying token manager for wiring and tests.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
