package service

import (
	"context"
	"errors"
	"time"

	"patentgate/config"
	"patentgate/internal/core"
	"patentgate/internal/database/mongodb/model"
	mongoDb "patentgate/internal/database/mongodb/repository"
	redisDb "patentgate/internal/database/redis/repository"
	"patentgate/internal/dto"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/telemetry"
	"patentgate/utils/apikey"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type PartnerKeyService struct {
	trace           *telemetry.Trace
	partnerKeyRepo  *mongoDb.PartnerKeyRepository
	usageRepo       *mongoDb.UsageRecordRepository
	webhookRepo     *mongoDb.WebhookConfigRepository
	rateLimiterRepo *redisDb.RateLimiterRepository
	config          *config.Configuration
	logger          *zap.Logger
}

func NewPartnerKeyService(
	trace *telemetry.Trace,
	partnerKeyRepo *mongoDb.PartnerKeyRepository,
	usageRepo *mongoDb.UsageRecordRepository,
	webhookRepo *mongoDb.WebhookConfigRepository,
	rateLimiterRepo *redisDb.RateLimiterRepository,
	config *config.Configuration,
	logger *zap.Logger,
) *PartnerKeyService {
	return &PartnerKeyService{
		trace:           trace,
		partnerKeyRepo:  partnerKeyRepo,
		usageRepo:       usageRepo,
		webhookRepo:     webhookRepo,
		rateLimiterRepo: rateLimiterRepo,
		config:          config,
		logger:          logger,
	}
}

// Create 建立 partner key。token 只在這裡回傳一次，之後查詢都拿不到。
func (s *PartnerKeyService) Create(ctx context.Context, createDto *dto.CreatePartnerKeyDto) (*dto.PartnerKeyResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	// 同一個 email 同時只能有一把 active key
	existing, err := s.partnerKeyRepo.List(ctx, bson.M{
		"email":  createDto.Email,
		"status": core.StatusActive,
	})
	if err != nil {
		return nil, cErr.DatabaseError("mongodb lookup partner key by email failed")
	}
	if len(existing) > 0 {
		return nil, cErr.Duplicate("an active api key already exists for this email")
	}

	token, err := apikey.GenerateToken()
	if err != nil {
		end(err)
		return nil, cErr.InternalServer("failed to generate api key")
	}

	perMinute, perDay := resolveRateLimits(s.config, createDto)

	branding := s.config.App.DefaultBranding
	if createDto.BrandingEnabled != nil {
		branding = *createDto.BrandingEnabled
	}

	var expiresAt *time.Time
	if createDto.ExpiresInDays != nil {
		t := time.Now().UTC().AddDate(0, 0, *createDto.ExpiresInDays)
		expiresAt = &t
	}

	key := &model.PartnerKey{
		Token:              token,
		PartnerName:        createDto.PartnerName,
		Email:              createDto.Email,
		RateLimitPerMinute: perMinute,
		RateLimitPerDay:    perDay,
		Status:             core.StatusActive,
		BrandingEnabled:    branding,
		ExpiresAt:          expiresAt,
	}

	created, err := s.partnerKeyRepo.Create(ctx, key)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Duplicate("api key collision, retry the request")
		}
		return nil, cErr.DatabaseError("mongodb create partner key failed")
	}

	response := modelToPartnerKeyResponseDto(created)
	response.Token = token // 建立當下揭露一次
	return response, nil
}

// resolveRateLimits 決定新 key 的配額：請求值優先，其次設定檔，最後內建預設。
// 設定檔沒填（零值）時不能照抄，否則發出來的 key 一次請求都過不了。
func resolveRateLimits(conf *config.Configuration, createDto *dto.CreatePartnerKeyDto) (perMinute, perDay int) {
	perMinute = conf.App.DefaultRateLimitPerMinute
	if perMinute <= 0 {
		perMinute = core.DefaultRateLimitPerMinute
	}
	if createDto.RateLimitPerMinute != nil {
		perMinute = *createDto.RateLimitPerMinute
	}

	perDay = conf.App.DefaultRateLimitPerDay
	if perDay <= 0 {
		perDay = core.DefaultRateLimitPerDay
	}
	if createDto.RateLimitPerDay != nil {
		perDay = *createDto.RateLimitPerDay
	}
	return perMinute, perDay
}

// Validate 認證用：依 token 查 key，必須是 active 且未過期。
func (s *PartnerKeyService) Validate(ctx context.Context, token string) (*model.PartnerKey, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if !apikey.HasTokenPrefix(token) {
		return nil, cErr.UnauthorizedApiKey("invalid api key format")
	}

	key, err := s.partnerKeyRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.UnauthorizedApiKey("invalid api key")
		}
		return nil, cErr.DatabaseError("mongodb get partner key failed")
	}
	if key.Status != core.StatusActive {
		return nil, cErr.UnauthorizedApiKey("api key is " + string(key.Status))
	}
	if key.Expired(time.Now().UTC()) {
		return nil, cErr.UnauthorizedApiKey("api key is expired")
	}

	return key, nil
}

// List 列出 partner key（admin 用）
func (s *PartnerKeyService) List(ctx context.Context) ([]*dto.PartnerKeyResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	keys, err := s.partnerKeyRepo.List(ctx, bson.M{"status": bson.M{"$ne": core.StatusDeleted}})
	if err != nil {
		return nil, cErr.DatabaseError("mongodb list partner keys failed")
	}

	responses := make([]*dto.PartnerKeyResponseDto, 0, len(keys))
	for _, key := range keys {
		responses = append(responses, modelToPartnerKeyResponseDto(key))
	}
	return responses, nil
}

// Get 取單筆 partner key（admin 用）
func (s *PartnerKeyService) Get(ctx context.Context, keyID primitive.ObjectID) (*dto.PartnerKeyResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	key, err := s.partnerKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("partner key not found")
		}
		return nil, cErr.DatabaseError("mongodb get partner key failed")
	}
	return modelToPartnerKeyResponseDto(key), nil
}

// Revoke 撤銷 key：之後的認證一律拒絕，歷史用量保留
func (s *PartnerKeyService) Revoke(ctx context.Context, keyID primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	key, err := s.partnerKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("partner key not found")
		}
		return cErr.DatabaseError("mongodb get partner key failed")
	}

	if err := s.partnerKeyRepo.UpdateStatus(ctx, keyID, core.StatusRevoked); err != nil {
		return cErr.DatabaseError("mongodb revoke partner key failed")
	}

	// 把限流計數一併清掉，revoke 後重新發 key 不會背舊額度
	if err := s.rateLimiterRepo.Reset(ctx, key.Token); err != nil {
		s.logger.Warn("failed to reset rate limit counters on revoke",
			zap.String("keyID", keyID.Hex()), zap.Error(err))
	}
	return nil
}

// UpdateRateLimits 調整配額（admin 用）
func (s *PartnerKeyService) UpdateRateLimits(ctx context.Context, keyID primitive.ObjectID, updateDto *dto.UpdateRateLimitsDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.partnerKeyRepo.UpdateRateLimits(ctx, keyID, updateDto.RateLimitPerMinute, updateDto.RateLimitPerDay); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("partner key not found")
		}
		return cErr.DatabaseError("mongodb update rate limits failed")
	}
	return nil
}

// Delete 刪除 key 並連帶清掉用量紀錄、webhook 訂閱與限流計數
func (s *PartnerKeyService) Delete(ctx context.Context, keyID primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	key, err := s.partnerKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("partner key not found")
		}
		return cErr.DatabaseError("mongodb get partner key failed")
	}

	if err := s.partnerKeyRepo.DeleteByID(ctx, keyID); err != nil {
		return cErr.DatabaseError("mongodb delete partner key failed")
	}
	if err := s.webhookRepo.DeleteAllByKeyID(ctx, keyID); err != nil {
		s.logger.Warn("failed to cascade delete webhooks", zap.String("keyID", keyID.Hex()), zap.Error(err))
	}
	if err := s.usageRepo.DeleteAllByKeyID(ctx, keyID); err != nil {
		s.logger.Warn("failed to cascade delete usage records", zap.String("keyID", keyID.Hex()), zap.Error(err))
	}
	if err := s.rateLimiterRepo.Reset(ctx, key.Token); err != nil {
		s.logger.Warn("failed to reset rate limit counters on delete", zap.String("keyID", keyID.Hex()), zap.Error(err))
	}
	return nil
}

// UpdateLastUsed 背景更新最後使用時間，失敗僅記 log
func (s *PartnerKeyService) UpdateLastUsed(ctx context.Context, keyID primitive.ObjectID) {
	if err := s.partnerKeyRepo.UpdateLastUsedAt(ctx, keyID, time.Now().UTC()); err != nil {
		s.logger.Warn("failed to update lastUsedAt", zap.String("keyID", keyID.Hex()), zap.Error(err))
	}
}

func modelToPartnerKeyResponseDto(key *model.PartnerKey) *dto.PartnerKeyResponseDto {
	return &dto.PartnerKeyResponseDto{
		ID:                 key.ID.Hex(),
		PartnerName:        key.PartnerName,
		Email:              key.Email,
		RateLimitPerMinute: key.RateLimitPerMinute,
		RateLimitPerDay:    key.RateLimitPerDay,
		Status:             key.Status,
		BrandingEnabled:    key.BrandingEnabled,
		ExpiresAt:          key.ExpiresAt,
		CreatedAt:          key.CreatedAt,
		LastUsedAt:         key.LastUsedAt,
	}
}
