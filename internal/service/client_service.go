package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/accounting-service/internal/auth"
	"github.com/spec-kit/accounting-service/internal/domain"
	"github.com/spec-kit/accounting-service/internal/events"
	"github.com/spec-kit/accounting-service/internal/persistence"
	"github.com/spec-kit/accounting-service/internal/repository"
)

// Uniqueness violations reported during client creation.
var (
	ErrDuplicateClientID    = errors.New("client id already registered")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateBankAccount = errors.New("bank account already registered")
)

const clientCountTTL = time.Minute

// ClientService implements client case management for accountants.
type ClientService struct {
	clients    repository.ClientRepository
	cache      *persistence.Redis
	dispatcher events.Dispatcher
	bcryptCost int
	logger     *zap.Logger
}

// NewClientService builds the service.
func NewClientService(clients repository.ClientRepository, cache *persistence.Redis, dispatcher events.Dispatcher, bcryptCost int, logger *zap.Logger) *ClientService {
	return &ClientService{
		clients:    clients,
		cache:      cache,
		dispatcher: dispatcher,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// CreateClient validates uniqueness of the business identifiers and
// persists a new client case owned by the requesting accountant.
func (s *ClientService) CreateClient(ctx context.Context, accountantName string, client *domain.Client) error {
	if exists, err := s.clients.ExistsByClientID(ctx, client.ClientID); err != nil {
		return err
	} else if exists {
		return ErrDuplicateClientID
	}
	if exists, err := s.clients.ExistsByEmail(ctx, client.Email); err != nil {
		return err
	} else if exists {
		return ErrDuplicateEmail
	}
	if exists, err := s.clients.ExistsByBankAccountNumber(ctx, client.BankAccountNumber); err != nil {
		return err
	} else if exists {
		return ErrDuplicateBankAccount
	}

	client.AccountantName = accountantName
	if err := s.clients.Create(ctx, client); err != nil {
		return err
	}

	s.invalidateCountCache(ctx, accountantName)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventClientCreated,
		ClientID:  client.ClientID,
		Actor:     accountantName,
		Timestamp: time.Now(),
		Payload: events.ClientCreatedPayload{
			BusinessName: client.BusinessName,
			Email:        client.Email,
		},
	})
	return nil
}

// GetClient loads a client case by its business key.
func (s *ClientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clients.GetByClientID(ctx, clientID)
}

// ListClients returns all client cases owned by the accountant.
func (s *ClientService) ListClients(ctx context.Context, accountantName string) ([]domain.Client, error) {
	return s.clients.ListByAccountant(ctx, accountantName)
}

// CountClients returns the accountant's client count for the dashboard,
// served from the redis cache when fresh.
func (s *ClientService) CountClients(ctx context.Context, accountantName string) (int, error) {
	key := countCacheKey(accountantName)
	if s.cache != nil && s.cache.Client != nil {
		if cached, err := s.cache.Client.Get(ctx, key).Result(); err == nil {
			if count, convErr := strconv.Atoi(cached); convErr == nil {
				return count, nil
			}
		}
	}

	count, err := s.clients.CountByAccountant(ctx, accountantName)
	if err != nil {
		return 0, err
	}
	if s.cache != nil && s.cache.Client != nil {
		if err := s.cache.Client.Set(ctx, key, strconv.Itoa(count), clientCountTTL).Err(); err != nil {
			s.logger.Warn("failed to cache client count", zap.Error(err))
		}
	}
	return count, nil
}

// UpdateClient merges the provided non-empty fields into the stored case.
func (s *ClientService) UpdateClient(ctx context.Context, updated *domain.Client) error {
	existing, err := s.clients.GetByClientID(ctx, updated.ClientID)
	if err != nil {
		return err
	}

	mergeClient(existing, updated)
	return s.clients.Update(ctx, existing)
}

// DeleteClient removes a client case.
func (s *ClientService) DeleteClient(ctx context.Context, accountantName, clientID string) error {
	if err := s.clients.DeleteByClientID(ctx, clientID); err != nil {
		return err
	}

	s.invalidateCountCache(ctx, accountantName)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventClientDeleted,
		ClientID:  clientID,
		Actor:     accountantName,
		Timestamp: time.Now(),
	})
	return nil
}

// GrantLoginAccess assigns portal credentials to a client, hashing the
// secret before storage.
func (s *ClientService) GrantLoginAccess(ctx context.Context, accountantName, clientID, username, password string) error {
	if username == "" || password == "" {
		return errors.New("username and password required")
	}
	if _, err := s.clients.GetByClientID(ctx, clientID); err != nil {
		return err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.clients.SetLoginCredentials(ctx, clientID, username, hash); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventClientAccessGranted,
		ClientID:  clientID,
		Actor:     accountantName,
		Timestamp: time.Now(),
		Payload:   events.ClientAccessGrantedPayload{LoginUsername: username},
	})
	return nil
}

func (s *ClientService) invalidateCountCache(ctx context.Context, accountantName string) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Del(ctx, countCacheKey(accountantName)).Err(); err != nil {
		s.logger.Warn("failed to invalidate client count cache", zap.Error(err))
	}
}

func (s *ClientService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

func countCacheKey(accountantName string) string {
	return "clients:count:" + accountantName
}

// IsNotFound reports whether the error means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func mergeClient(existing, updated *domain.Client) {
	if updated.BusinessName != "" {
		existing.BusinessName = updated.BusinessName
	}
	if updated.Email != "" {
		existing.Email = updated.Email
	}
	if updated.Phone != "" {
		existing.Phone = updated.Phone
	}
	if updated.Address != "" {
		existing.Address = updated.Address
	}
	if updated.Zip != "" {
		existing.Zip = updated.Zip
	}
	if updated.BusinessType != "" {
		existing.BusinessType = updated.BusinessType
	}
	if updated.BankName != "" {
		existing.BankName = updated.BankName
	}
	if updated.BankBranch != "" {
		existing.BankBranch = updated.BankBranch
	}
	if updated.BankAccountNumber != "" {
		existing.BankAccountNumber = updated.BankAccountNumber
	}
}
