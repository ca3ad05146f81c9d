package service

import (
	"testing"

	"patentgate/config"
	"patentgate/internal/core"
	"patentgate/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestResolveRateLimits(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	t.Run("request values win", func(t *testing.T) {
		conf := &config.Configuration{}
		conf.App.DefaultRateLimitPerMinute = 30
		conf.App.DefaultRateLimitPerDay = 5000

		perMinute, perDay := resolveRateLimits(conf, &dto.CreatePartnerKeyDto{
			RateLimitPerMinute: intPtr(10),
			RateLimitPerDay:    intPtr(200),
		})
		assert.Equal(t, 10, perMinute)
		assert.Equal(t, 200, perDay)
	})

	t.Run("config defaults when request omits them", func(t *testing.T) {
		conf := &config.Configuration{}
		conf.App.DefaultRateLimitPerMinute = 30
		conf.App.DefaultRateLimitPerDay = 5000

		perMinute, perDay := resolveRateLimits(conf, &dto.CreatePartnerKeyDto{})
		assert.Equal(t, 30, perMinute)
		assert.Equal(t, 5000, perDay)
	})

	t.Run("built-in defaults when config is unset", func(t *testing.T) {
		// 設定檔零值不能照抄，否則發出來的 key 一次請求都過不了
		perMinute, perDay := resolveRateLimits(&config.Configuration{}, &dto.CreatePartnerKeyDto{})
		assert.Equal(t, core.DefaultRateLimitPerMinute, perMinute)
		assert.Equal(t, core.DefaultRateLimitPerDay, perDay)
	})
}
