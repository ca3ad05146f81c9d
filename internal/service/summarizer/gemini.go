package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"patentgate/config"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/telemetry"

	"github.com/google/generative-ai-go/genai"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/option"
)

type GeminiService struct {
	trace   *telemetry.Trace
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiService 建立 Gemini 摘要服務；API key 未設定時退回 Noop。
func NewGeminiService(trace *telemetry.Trace, conf *config.Configuration) (Service, func(), error) {
	if conf.Gemini.APIKey == "" {
		return NewNoopService(), func() {}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(conf.Gemini.APIKey))
	if err != nil {
		return nil, nil, err
	}

	model := conf.Gemini.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}
	timeout := 30 * time.Second
	if conf.Gemini.Timeout > 0 {
		timeout = time.Duration(conf.Gemini.Timeout) * time.Second
	}

	service := &GeminiService{
		trace:   trace,
		client:  client,
		model:   model,
		timeout: timeout,
	}
	cleanup := func() { _ = client.Close() }
	return service, cleanup, nil
}

// Summarize 把專利摘要丟給 Gemini 濃縮。輸入先截斷到 MaxInputChars。
func (s *GeminiService) Summarize(ctx context.Context, abstract string) (string, error) {
	ctx, span, end := s.trace.WithSpan(ctx, "gemini.summarize")
	defer end(nil)

	if strings.TrimSpace(abstract) == "" {
		return "", nil
	}

	input := truncate(abstract, MaxInputChars)
	span.SetAttributes(
		attribute.String("ai.model", s.model),
		attribute.Int("input.chars", len(input)),
	)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := "Summarize this patent abstract in 2-3 plain sentences for a business audience:\n\n" + input

	model := s.client.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		end(err)
		return "", cErr.ExternalRequestError("gemini summarize failed")
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		cause := fmt.Errorf("gemini returned no candidates")
		end(cause)
		return "", cErr.ExternalResponseFormatError("gemini returned no candidates")
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	return strings.TrimSpace(builder.String()), nil
}
