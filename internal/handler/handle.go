package handler

import (
	"github.com/google/wire"
)

// ProviderSet Handler 的 Provider 集合
var ProviderSet = wire.NewSet(
	NewAuthKeyHandler,
	NewExpirationHandler,
	NewUsageStatsHandler,
	NewWebhookHandler,
	NewAdminAuthHandler,
	NewAdminPartnerKeyHandler,
	NewHealthHandler,
)
