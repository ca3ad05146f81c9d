package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"patentgate/config"
	"patentgate/internal/core"
	fluentdModel "patentgate/internal/database/fluentd/model"
	fluentdRepo "patentgate/internal/database/fluentd/repository"
	"patentgate/internal/database/mongodb/model"
	mongoDb "patentgate/internal/database/mongodb/repository"
	"patentgate/internal/dto"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SignatureHeader 投遞簽章的 header 名稱
const SignatureHeader = "X-Webhook-Signature"

// EventPayload 投遞的 JSON 外層。序列化一次後同一份 bytes
// 既拿去簽章也拿去送，收端驗章才不會因欄位順序差一個 byte。
type EventPayload struct {
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"`
}

// WebhookService 訂閱管理 + 投遞引擎 + 到期掃描
type WebhookService struct {
	trace       *telemetry.Trace
	metric      *telemetry.Metric
	webhookRepo *mongoDb.WebhookConfigRepository
	patentRepo  *mongoDb.PatentRecordRepository
	logRepo     *fluentdRepo.LogRepository
	httpClient  *http.Client
	config      *config.Configuration
	logger      *zap.Logger

	// 測試可換掉的重試等待
	sleep func(d time.Duration)
}

func NewWebhookService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	webhookRepo *mongoDb.WebhookConfigRepository,
	patentRepo *mongoDb.PatentRecordRepository,
	logRepo *fluentdRepo.LogRepository,
	httpClient *http.Client,
	config *config.Configuration,
	logger *zap.Logger,
) *WebhookService {
	return &WebhookService{
		trace:       trace,
		metric:      metric,
		webhookRepo: webhookRepo,
		patentRepo:  patentRepo,
		logRepo:     logRepo,
		httpClient:  httpClient,
		config:      config,
		logger:      logger,
		sleep:       time.Sleep,
	}
}

// ─── 訂閱管理 ──────────────────────────────────────────────────────────────────

// Create 建立訂閱。secret 可不填，不填的訂閱投遞時不簽章；
// events 空集合照存，代表訂閱全部事件。
func (s *WebhookService) Create(ctx context.Context, keyID primitive.ObjectID, createDto *dto.CreateWebhookDto) (*dto.WebhookResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	webhook := &model.WebhookConfig{
		KeyID:  keyID,
		URL:    createDto.URL,
		Secret: createDto.Secret,
		Events: createDto.Events,
		Active: true,
	}

	created, err := s.webhookRepo.Create(ctx, webhook)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Duplicate("webhook already registered for this url")
		}
		return nil, cErr.DatabaseError("mongodb create webhook failed")
	}

	response := modelToWebhookResponseDto(created)
	response.Secret = createDto.Secret // 建立當下揭露一次
	return response, nil
}

// List 列出某 key 的訂閱
func (s *WebhookService) List(ctx context.Context, keyID primitive.ObjectID) ([]*dto.WebhookResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	webhooks, err := s.webhookRepo.ListByKeyID(ctx, keyID)
	if err != nil {
		return nil, cErr.DatabaseError("mongodb list webhooks failed")
	}

	responses := make([]*dto.WebhookResponseDto, 0, len(webhooks))
	for _, webhook := range webhooks {
		responses = append(responses, modelToWebhookResponseDto(webhook))
	}
	return responses, nil
}

// Update 啟用/停用訂閱。只能動自己 key 底下的訂閱。
func (s *WebhookService) Update(ctx context.Context, keyID, webhookID primitive.ObjectID, updateDto *dto.UpdateWebhookDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	webhook, err := s.webhookRepo.GetByID(ctx, webhookID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("webhook not found")
		}
		return cErr.DatabaseError("mongodb get webhook failed")
	}
	if webhook.KeyID != keyID {
		return cErr.Forbidden("webhook belongs to another partner")
	}

	if err := s.webhookRepo.UpdateActive(ctx, webhookID, *updateDto.Active); err != nil {
		return cErr.DatabaseError("mongodb update webhook failed")
	}
	return nil
}

// Delete 刪除訂閱。只能動自己 key 底下的訂閱。
func (s *WebhookService) Delete(ctx context.Context, keyID, webhookID primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	webhook, err := s.webhookRepo.GetByID(ctx, webhookID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("webhook not found")
		}
		return cErr.DatabaseError("mongodb get webhook failed")
	}
	if webhook.KeyID != keyID {
		return cErr.Forbidden("webhook belongs to another partner")
	}

	if err := s.webhookRepo.DeleteByID(ctx, webhookID); err != nil {
		return cErr.DatabaseError("mongodb delete webhook failed")
	}
	return nil
}

// ─── 投遞引擎 ──────────────────────────────────────────────────────────────────

// Sign HMAC-SHA256 簽章，格式 sha256=<hex>
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Deliver 把事件送到單一訂閱端點。at-least-once：2xx 算成功，
// 其他一律重試到上限，間隔 base × 2^(attempt-1)。
func (s *WebhookService) Deliver(ctx context.Context, webhook *model.WebhookConfig, event string, data any) (delivered bool) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanWebhookDelivery))
	defer end(nil)

	payload := EventPayload{
		Event:     event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to marshal webhook payload", zap.Error(err))
		return false
	}
	// 沒設 secret 的訂閱不簽章
	signature := ""
	if webhook.Secret != "" {
		signature = Sign(body, webhook.Secret)
	}

	delivered, lastStatus, attempts := s.send(ctx, webhook.URL, body, signature)

	s.trace.ApplyTraceAttributes(span, core.TraceWebhookDeliveryMeta{
		KeyID:    webhook.KeyID.Hex(),
		URL:      webhook.URL,
		Event:    event,
		Attempts: attempts,
		Status:   lastStatus,
		Success:  delivered,
	})

	deliveryStatus := core.DeliveryFailed
	if delivered {
		deliveryStatus = core.DeliveryDelivered
		if s.metric.WebhookDeliveredTotal != nil {
			s.metric.WebhookDeliveredTotal.WithLabelValues(event).Inc()
		}
	} else if s.metric.WebhookFailedTotal != nil {
		s.metric.WebhookFailedTotal.WithLabelValues(event).Inc()
	}
	if updateError := s.webhookRepo.UpdateDeliveryResult(ctx, webhook.ID, deliveryStatus, time.Now().UTC()); updateError != nil {
		s.logger.Warn("failed to record delivery result", zap.Error(updateError))
	}

	if logError := s.logRepo.LogWebhookDelivery(ctx, fluentdModel.WebhookDeliveryLog{
		KeyID:      webhook.KeyID.Hex(),
		URL:        webhook.URL,
		Event:      event,
		Attempts:   attempts,
		StatusCode: lastStatus,
		Success:    delivered,
	}); logError != nil {
		s.logger.Warn("failed to forward webhook delivery log to fluentd", zap.Error(logError))
	}

	return delivered
}

// send 跑完整個重試迴圈。每次失敗後等 baseDelay * 2^(attempt-1) 再試。
// attempts 回傳實際打出的次數，不是設定上限。
func (s *WebhookService) send(ctx context.Context, url string, body []byte, signature string) (delivered bool, lastStatus int, attempts int) {
	maxAttempts := s.config.Webhook.RetryAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	baseDelay := time.Duration(s.config.Webhook.RetryDelay) * time.Second
	if baseDelay <= 0 {
		baseDelay = 5 * time.Second
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		attempts = attempt
		status, attemptError := s.attempt(ctx, url, body, signature)
		lastStatus = status
		if attemptError == nil && status >= http.StatusOK && status < http.StatusMultipleChoices {
			delivered = true
			break
		}
		if attemptError != nil {
			s.logger.Warn("webhook delivery attempt failed",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Error(attemptError),
			)
		} else {
			s.logger.Warn("webhook delivery attempt rejected",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Int("status", status),
			)
		}
		if attempt < maxAttempts {
			s.sleep(baseDelay * (1 << (attempt - 1)))
		}
	}
	return delivered, lastStatus, attempts
}

func (s *WebhookService) attempt(ctx context.Context, url string, body []byte, signature string) (int, error) {
	timeout := 10 * time.Second
	if s.config.Webhook.Timeout > 0 {
		timeout = time.Duration(s.config.Webhook.Timeout) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if signature != "" {
		httpReq.Header.Set(SignatureHeader, signature)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// ─── 到期掃描 ──────────────────────────────────────────────────────────────────

// Sweep 每小時排程：掃 today..today+2 天（到當日結束）內到期、
// 尚未通知過的專利，逐一發 patent.expired 給所有啟用中的訂閱。
// 通知過才標記 notifiedAt；標記失敗下一輪會重送（at-least-once）。
func (s *WebhookService) Sweep(ctx context.Context) error {
	ctx, _, end := s.trace.WithSpan(ctx, string(core.SpanExpirationSweep))
	defer end(nil)

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2).Add(24*time.Hour - time.Second) // 第二天的 23:59:59

	expiring, err := s.patentRepo.ListExpiringBetween(ctx, from, to)
	if err != nil {
		end(err)
		return fmt.Errorf("list expiring patents: %w", err)
	}

	subscriptions, err := s.webhookRepo.ListActiveByEvent(ctx, core.EventPatentExpired)
	if err != nil {
		end(err)
		return fmt.Errorf("list webhook subscriptions: %w", err)
	}
	if len(subscriptions) == 0 || len(expiring) == 0 {
		return nil
	}

	maxConcurrency := s.config.Webhook.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = 8
	}
	semaphore := make(chan struct{}, maxConcurrency)
	var waitGroup sync.WaitGroup

	for _, patent := range expiring {
		if patent.NotifiedAt != nil {
			continue
		}
		data := map[string]any{
			"patentID":       patent.PatentID,
			"title":          patent.Title,
			"assigneeName":   patent.AssigneeName,
			"inventor":       patent.Inventor,
			"patentType":     patent.PatentType,
			"grantDate":      patent.GrantDate.Format(dateLayout),
			"expirationDate": patent.ExpirationDate.Format(dateLayout),
			"technologyArea": patent.TechnologyArea,
		}

		anyDelivered := false
		var deliveredMutex sync.Mutex
		for _, subscription := range subscriptions {
			waitGroup.Add(1)
			semaphore <- struct{}{}
			go func(subscription *model.WebhookConfig) {
				defer waitGroup.Done()
				defer func() { <-semaphore }()
				if s.Deliver(ctx, subscription, core.EventPatentExpired, data) {
					deliveredMutex.Lock()
					anyDelivered = true
					deliveredMutex.Unlock()
				}
			}(subscription)
		}
		waitGroup.Wait()

		if anyDelivered {
			if markError := s.patentRepo.MarkNotified(ctx, patent.PatentID, time.Now().UTC()); markError != nil {
				s.logger.Warn("failed to mark patent as notified, will redeliver next sweep",
					zap.String("patentID", patent.PatentID), zap.Error(markError))
			}
		}
	}

	s.logger.Info("expiration sweep finished",
		zap.Int("expiring", len(expiring)),
		zap.Int("subscriptions", len(subscriptions)),
	)
	return nil
}

func modelToWebhookResponseDto(webhook *model.WebhookConfig) *dto.WebhookResponseDto {
	return &dto.WebhookResponseDto{
		ID:                 webhook.ID.Hex(),
		URL:                webhook.URL,
		Events:             webhook.Events,
		Active:             webhook.Active,
		CreatedAt:          webhook.CreatedAt,
		LastDeliveryAt:     webhook.LastDeliveryAt,
		LastDeliveryStatus: webhook.LastDeliveryStatus,
	}
}
