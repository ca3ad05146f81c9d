package cron

import (
	"context"

	"patentgate/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger            *zap.Logger
	server            *cron.Cron
	webhookService    *service.WebhookService
	expirationService *service.ExpirationService
}

// NewCron .
func NewCron(
	logger *zap.Logger,
	webhookService *service.WebhookService,
	expirationService *service.ExpirationService,
) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:            logger,
		server:            server,
		webhookService:    webhookService,
		expirationService: expirationService,
	}
}

func (c *Cron) Run() error {
	// 每小時整點：掃描即將到期的專利並投遞 webhook
	if _, err := c.server.AddFunc("0 0 * * * *", func() {
		if err := c.webhookService.Sweep(context.Background()); err != nil {
			c.logger.Error("expiration sweep failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}

	// 每日 00:00：刷新未來 90 天的到期專利庫
	if _, err := c.server.AddFunc("0 0 0 * * *", func() {
		if err := c.expirationService.RefreshStore(context.Background()); err != nil {
			c.logger.Error("patent store refresh failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}
