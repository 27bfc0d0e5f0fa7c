package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/accounting-service/internal/auth"
	"github.com/spec-kit/accounting-service/internal/config"
	"github.com/spec-kit/accounting-service/internal/domain"
)

type fakeAccountantRepo struct {
	byUsername map[string]*domain.Accountant
}

func newFakeAccountantRepo() *fakeAccountantRepo {
	return &fakeAccountantRepo{byUsername: make(map[string]*domain.Accountant)}
}

func (r *fakeAccountantRepo) Create(_ context.Context, acc *domain.Accountant) error {
	acc.ID = int64(len(r.byUsername) + 1)
	r.byUsername[acc.Username] = acc
	return nil
}

func (r *fakeAccountantRepo) Update(_ context.Context, acc *domain.Accountant) error {
	r.byUsername[acc.Username] = acc
	return nil
}

func (r *fakeAccountantRepo) GetByID(_ context.Context, id int64) (*domain.Accountant, error) {
	for _, acc := range r.byUsername {
		if acc.ID == id {
			return acc, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAccountantRepo) GetByUsername(_ context.Context, username string) (*domain.Accountant, error) {
	acc, ok := r.byUsername[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return acc, nil
}

func (r *fakeAccountantRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.byUsername[username]
	return ok, nil
}

func (r *fakeAccountantRepo) DeleteByUsername(_ context.Context, username string) error {
	delete(r.byUsername, username)
	return nil
}

type fakeClientRepo struct {
	byClientID      map[string]*domain.Client
	byLoginUsername map[string]*domain.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{
		byClientID:      make(map[string]*domain.Client),
		byLoginUsername: make(map[string]*domain.Client),
	}
}

func (r *fakeClientRepo) Create(_ context.Context, client *domain.Client) error {
	client.ID = int64(len(r.byClientID) + 1)
	r.byClientID[client.ClientID] = client
	if client.LoginUsername != nil {
		r.byLoginUsername[*client.LoginUsername] = client
	}
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *domain.Client) error {
	r.byClientID[client.ClientID] = client
	return nil
}

func (r *fakeClientRepo) GetByClientID(_ context.Context, clientID string) (*domain.Client, error) {
	client, ok := r.byClientID[clientID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return client, nil
}

func (r *fakeClientRepo) GetByLoginUsername(_ context.Context, username string) (*domain.Client, error) {
	client, ok := r.byLoginUsername[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return client, nil
}

func (r *fakeClientRepo) ListByAccountant(_ context.Context, accountantName string) ([]domain.Client, error) {
	var out []domain.Client
	for _, client := range r.byClientID {
		if client.AccountantName == accountantName {
			out = append(out, *client)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) CountByAccountant(ctx context.Context, accountantName string) (int, error) {
	clients, _ := r.ListByAccountant(ctx, accountantName)
	return len(clients), nil
}

func (r *fakeClientRepo) DeleteByClientID(_ context.Context, clientID string) error {
	client, ok := r.byClientID[clientID]
	if !ok {
		return pgx.ErrNoRows
	}
	if client.LoginUsername != nil {
		delete(r.byLoginUsername, *client.LoginUsername)
	}
	delete(r.byClientID, clientID)
	return nil
}

func (r *fakeClientRepo) ExistsByClientID(_ context.Context, clientID string) (bool, error) {
	_, ok := r.byClientID[clientID]
	return ok, nil
}

func (r *fakeClientRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, client := range r.byClientID {
		if client.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeClientRepo) ExistsByBankAccountNumber(_ context.Context, accountNumber string) (bool, error) {
	for _, client := range r.byClientID {
		if client.BankAccountNumber == accountNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeClientRepo) SetLoginCredentials(_ context.Context, clientID, username, passwordHash string) error {
	client, ok := r.byClientID[clientID]
	if !ok {
		return pgx.ErrNoRows
	}
	client.LoginUsername = &username
	client.LoginPasswordHash = &passwordHash
	r.byLoginUsername[username] = client
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "service-test-secret",
			TokenTTLHours: 1,
			BcryptCost:    bcrypt.MinCost,
		},
	}
}

func newTestAuthService(accountants *fakeAccountantRepo, clients *fakeClientRepo) *AuthService {
	return NewAuthService(testConfig(), AuthDependencies{
		AccountantRepo: accountants,
		ClientRepo:     clients,
	}, zap.NewNop())
}

func seedAccountant(t *testing.T, repo *fakeAccountantRepo, username, password string) {
	t.Helper()

	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &domain.Accountant{
		FirstName:    "John",
		LastName:     "Doe",
		Username:     username,
		PasswordHash: hash,
		Email:        username + "@example.com",
	}))
}

func TestLoginAccountantSuccess(t *testing.T) {
	accountants := newFakeAccountantRepo()
	seedAccountant(t, accountants, "john.doe", "s3cret")
	svc := newTestAuthService(accountants, newFakeClientRepo())

	result, err := svc.LoginAccountant(context.Background(), "john.doe", "s3cret")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Token)

	subject, err := svc.TokenManager().ExtractSubject(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "john.doe", subject)

	role, err := svc.TokenManager().ExtractRole(result.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAccountant, role)
}

func TestLoginAccountantFailureIndistinguishable(t *testing.T) {
	accountants := newFakeAccountantRepo()
	seedAccountant(t, accountants, "john.doe", "s3cret")
	svc := newTestAuthService(accountants, newFakeClientRepo())

	wrongPassword, err := svc.LoginAccountant(context.Background(), "john.doe", "wrong")
	require.NoError(t, err)

	unknownUser, err := svc.LoginAccountant(context.Background(), "nobody", "s3cret")
	require.NoError(t, err)

	// An unknown username and a wrong secret must produce identical
	// results so callers cannot enumerate accounts.
	assert.Equal(t, wrongPassword, unknownUser)
	assert.False(t, wrongPassword.Success)
	assert.Empty(t, wrongPassword.Token)
	assert.Equal(t, loginFailedMessage, wrongPassword.Message)
}

func TestRegisterAccountant(t *testing.T) {
	accountants := newFakeAccountantRepo()
	svc := newTestAuthService(accountants, newFakeClientRepo())

	acc := &domain.Accountant{FirstName: "Jane", LastName: "Doe", Username: "jane.doe"}
	require.NoError(t, svc.RegisterAccountant(context.Background(), acc, "s3cret"))

	stored, err := accountants.GetByUsername(context.Background(), "jane.doe")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "s3cret"))
}

func TestRegisterAccountantDuplicateUsername(t *testing.T) {
	accountants := newFakeAccountantRepo()
	seedAccountant(t, accountants, "john.doe", "s3cret")
	svc := newTestAuthService(accountants, newFakeClientRepo())

	err := svc.RegisterAccountant(context.Background(), &domain.Accountant{Username: "john.doe"}, "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginClientSuccess(t *testing.T) {
	clients := newFakeClientRepo()
	hash, err := auth.HashPassword("portal-pass", bcrypt.MinCost)
	require.NoError(t, err)
	username := "acme-portal"
	require.NoError(t, clients.Create(context.Background(), &domain.Client{
		BusinessName:      "Acme Ltd",
		ClientID:          "123456789",
		Email:             "acme@example.com",
		LoginUsername:     &username,
		LoginPasswordHash: &hash,
	}))
	svc := newTestAuthService(newFakeAccountantRepo(), clients)

	result, err := svc.LoginClient(context.Background(), "acme-portal", "portal-pass")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "123456789", result.ClientID)

	role, err := svc.TokenManager().ExtractRole(result.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, role)
}

func TestLoginClientWithoutGrantedAccess(t *testing.T) {
	clients := newFakeClientRepo()
	// Credentials row exists but access was never granted.
	username := "acme-portal"
	client := &domain.Client{ClientID: "123456789", LoginUsername: &username}
	require.NoError(t, clients.Create(context.Background(), client))
	svc := newTestAuthService(newFakeAccountantRepo(), clients)

	result, err := svc.LoginClient(context.Background(), "acme-portal", "anything")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, loginFailedMessage, result.Message)
}

func TestLoginClientUnknownUsername(t *testing.T) {
	svc := newTestAuthService(newFakeAccountantRepo(), newFakeClientRepo())

	result, err := svc.LoginClient(context.Background(), "nobody", "anything")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, loginFailedMessage, result.Message)
}
