package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPartnerKeyExpired(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("no expiry means never expires", func(t *testing.T) {
		key := &PartnerKey{}
		assert.False(t, key.Expired(now))
	})

	t.Run("future expiry still valid", func(t *testing.T) {
		expiresAt := now.AddDate(0, 0, 30)
		key := &PartnerKey{ExpiresAt: &expiresAt}
		assert.False(t, key.Expired(now))
	})

	t.Run("past expiry rejected", func(t *testing.T) {
		expiresAt := now.AddDate(0, 0, -1)
		key := &PartnerKey{ExpiresAt: &expiresAt}
		assert.True(t, key.Expired(now))
	})

	t.Run("exact expiry instant counts as expired", func(t *testing.T) {
		expiresAt := now
		key := &PartnerKey{ExpiresAt: &expiresAt}
		assert.True(t, key.Expired(now))
	})
}
