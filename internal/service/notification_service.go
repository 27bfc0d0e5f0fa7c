package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/accounting-service/internal/config"
	"github.com/spec-kit/accounting-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventClientCreated, n.handleClientCreated)
	n.dispatcher.Subscribe(events.EventClientAccessGranted, n.handleClientAccessGranted)
	n.dispatcher.Subscribe(events.EventDocumentUploaded, n.handleDocumentUploaded)
	n.dispatcher.Subscribe(events.EventDocumentStatusChanged, n.handleDocumentStatusChanged)
}

func (n *NotificationService) handleClientCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ClientCreated", zap.String("client_id", event.ClientID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleClientAccessGranted(ctx context.Context, event events.Event) error {
	n.logger.Info("ClientAccessGranted", zap.String("client_id", event.ClientID))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleDocumentUploaded(ctx context.Context, event events.Event) error {
	n.logger.Info("DocumentUploaded", zap.String("client_id", event.ClientID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleDocumentStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("DocumentStatusChanged", zap.String("client_id", event.ClientID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("client_id", event.ClientID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("client_id", event.ClientID),
		zap.String("event_type", string(event.Type)))
}
