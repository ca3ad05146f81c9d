package service

import (
	"context"
	"errors"
	"testing"

	"patentgate/internal/core"
	"patentgate/internal/database/mongodb/model"
	"patentgate/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeCounterStore 以記憶體 map 模擬 Redis 計數器
type fakeCounterStore struct {
	counts map[string]int
	err    error
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: map[string]int{}}
}

func (f *fakeCounterStore) key(token string, window core.RateWindow) string {
	return token + ":" + string(window)
}

func (f *fakeCounterStore) GetCount(ctx context.Context, token string, window core.RateWindow) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[f.key(token, window)], nil
}

func (f *fakeCounterStore) Incr(ctx context.Context, token string, window core.RateWindow) error {
	if f.err != nil {
		return f.err
	}
	f.counts[f.key(token, window)]++
	return nil
}

func newTestRateLimitService(t *testing.T, store CounterStore) *RateLimitService {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	return NewRateLimitService(trace, store, zap.NewNop())
}

func testPartnerKey() *model.PartnerKey {
	return &model.PartnerKey{
		ID:                 primitive.NewObjectID(),
		Token:              "pat_test_token",
		PartnerName:        "Acme IP Research",
		RateLimitPerMinute: 5,
		RateLimitPerDay:    100,
	}
}

func TestAdmitUnderLimit(t *testing.T) {
	store := newFakeCounterStore()
	s := newTestRateLimitService(t, store)
	key := testPartnerKey()

	store.counts[store.key(key.Token, core.RateWindowMinute)] = 4
	store.counts[store.key(key.Token, core.RateWindowDay)] = 99

	verdict := s.Admit(context.Background(), key)
	assert.True(t, verdict.Allowed)
}

func TestAdmitBlocksOnMinuteWindow(t *testing.T) {
	store := newFakeCounterStore()
	s := newTestRateLimitService(t, store)
	key := testPartnerKey()

	store.counts[store.key(key.Token, core.RateWindowMinute)] = 5

	verdict := s.Admit(context.Background(), key)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, core.RateWindowMinute, verdict.Window)
	assert.Equal(t, 5, verdict.Count)
	assert.Equal(t, 5, verdict.Limit)
}

func TestAdmitBlocksOnDayWindow(t *testing.T) {
	store := newFakeCounterStore()
	s := newTestRateLimitService(t, store)
	key := testPartnerKey()

	store.counts[store.key(key.Token, core.RateWindowMinute)] = 1
	store.counts[store.key(key.Token, core.RateWindowDay)] = 100

	verdict := s.Admit(context.Background(), key)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, core.RateWindowDay, verdict.Window)
	assert.Equal(t, 100, verdict.Count)
	assert.Equal(t, 100, verdict.Limit)
}

func TestAdmitFailsOpenWhenStoreDown(t *testing.T) {
	store := newFakeCounterStore()
	store.err = errors.New("connection refused")
	s := newTestRateLimitService(t, store)

	verdict := s.Admit(context.Background(), testPartnerKey())
	assert.True(t, verdict.Allowed)
}

func TestRecordIncrementsBothWindows(t *testing.T) {
	store := newFakeCounterStore()
	s := newTestRateLimitService(t, store)
	key := testPartnerKey()

	s.Record(context.Background(), key)
	s.Record(context.Background(), key)

	assert.Equal(t, 2, store.counts[store.key(key.Token, core.RateWindowMinute)])
	assert.Equal(t, 2, store.counts[store.key(key.Token, core.RateWindowDay)])
}

func TestAdmitAllowsAgainAfterWindowExpires(t *testing.T) {
	store := newFakeCounterStore()
	s := newTestRateLimitService(t, store)
	key := testPartnerKey()

	for i := 0; i < key.RateLimitPerMinute; i++ {
		s.Record(context.Background(), key)
	}
	assert.False(t, s.Admit(context.Background(), key).Allowed)

	// 視窗計數器帶 TTL，到期後 Redis 會清掉該 key，下一分鐘重新放行
	delete(store.counts, store.key(key.Token, core.RateWindowMinute))
	assert.True(t, s.Admit(context.Background(), key).Allowed)
}
