package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/subsidy-service/internal/config"
	"github.com/spec-kit/subsidy-service/internal/events"
	"github.com/spec-kit/subsidy-service/internal/persistence"
)

// AnnouncerService mirrors subsidy events to the log and to a Redis channel.
// The channel is the integration seam where an external recorder (e.g. an
// on-chain writer) would subscribe. Publishing is best-effort: failures are
// logged and never fail the originating request.
type AnnouncerService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	redis      *persistence.Redis
	cfg        config.AnnounceConfig
}

// NewAnnouncerService creates the service.
func NewAnnouncerService(dispatcher events.Dispatcher, logger *zap.Logger, redis *persistence.Redis, cfg config.AnnounceConfig) *AnnouncerService {
	return &AnnouncerService{
		dispatcher: dispatcher,
		logger:     logger,
		redis:      redis,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to all subsidy events.
func (a *AnnouncerService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventVendorRegistered, a.handleEvent)
	a.dispatcher.Subscribe(events.EventProgressRecorded, a.handleEvent)
	a.dispatcher.Subscribe(events.EventVendorPaid, a.handleEvent)
	a.dispatcher.Subscribe(events.EventStateReset, a.handleEvent)
}

func (a *AnnouncerService) handleEvent(ctx context.Context, event events.Event) error {
	a.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.Int64("vendor_id", event.VendorID),
		zap.Any("payload", event.Payload))
	a.announce(ctx, event)
	return nil
}

func (a *AnnouncerService) announce(ctx context.Context, event events.Event) {
	if a.redis == nil || a.redis.Client == nil || a.cfg.Channel == "" {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		a.logger.Warn("announce marshal failed", zap.Error(err))
		return
	}
	if err := a.redis.Client.Publish(ctx, a.cfg.Channel, body).Err(); err != nil {
		a.logger.Warn("announce publish failed",
			zap.String("channel", a.cfg.Channel),
			zap.Error(err))
	}
}
