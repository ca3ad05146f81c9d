package uspto

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"patentgate/config"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/telemetry"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"go.opentelemetry.io/otel/attribute"
)

const grantDateLayout = "2006-01-02"

type PatentsViewService struct {
	HTTPClient *http.Client
	trace      *telemetry.Trace
	baseURL    string
	apiKey     string
}

// NewPatentsViewService 建立 PatentsView 來源
func NewPatentsViewService(
	trace *telemetry.Trace,
	client *http.Client,
	conf *config.Configuration,
) *PatentsViewService {
	return &PatentsViewService{
		HTTPClient: client,
		trace:      trace,
		baseURL:    conf.USPTO.PatentsViewURL,
		apiKey:     conf.USPTO.APIKey,
	}
}

func (s *PatentsViewService) Name() string { return "patentsview" }

// PatentsView 回應格式
type patentsViewResponse struct {
	Error     bool                `json:"error"`
	Count     int                 `json:"count"`
	TotalHits int                 `json:"total_hits"`
	Patents   []patentsViewPatent `json:"patents"`
}

type patentsViewPatent struct {
	PatentID       string                `json:"patent_id"`
	PatentTitle    string                `json:"patent_title"`
	PatentAbstract string                `json:"patent_abstract"`
	PatentDate     string                `json:"patent_date"`
	PatentType     string                `json:"patent_type"`
	Assignees      []patentsViewAssignee `json:"assignees"`
	Inventors      []patentsViewInventor `json:"inventors"`
}

type patentsViewAssignee struct {
	AssigneeOrganization string `json:"assignee_organization"`
}

type patentsViewInventor struct {
	InventorLastName  string `json:"inventor_last_name"`
	InventorFirstName string `json:"inventor_first_name"`
}

// patentFieldsJSON 要求上游回傳的欄位清單，兩種查詢共用
const patentFieldsJSON = `["patent_id","patent_title","patent_abstract","patent_date","patent_type",` +
	`"assignees.assignee_organization","inventors.inventor_last_name","inventors.inventor_first_name"]`

// SearchByGrantDate 以授權日視窗（含關鍵字）查 PatentsView。
// 失敗時依錯誤類型回傳：
//   - 請求送出/對方非 2xx：ExternalRequestError
//   - 回應解碼失敗：ExternalResponseFormatError
func (s *PatentsViewService) SearchByGrantDate(ctx context.Context, query Query) ([]Patent, error) {
	ctx, span, end := s.trace.WithSpan(ctx, "patentsview.search")
	defer end(nil)

	criteria := s.buildCriteria(query)
	queryJSON, err := json.Marshal(criteria)
	if err != nil {
		end(err)
		return nil, cErr.InternalServer("marshal patentsview query failed")
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 100
	}
	optionsJSON := fmt.Sprintf(`{"size":%d}`, limit)

	requestURL := s.baseURL + "?q=" + url.QueryEscape(string(queryJSON)) +
		"&f=" + url.QueryEscape(patentFieldsJSON) +
		"&o=" + url.QueryEscape(optionsJSON)

	span.SetAttributes(
		attribute.String("uspto.source", s.Name()),
		attribute.String("http.url", s.baseURL),
		attribute.Int("query.limit", limit),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		end(err)
		return nil, cErr.InternalServer("create http request failed")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Accept-Encoding", "gzip, deflate, br, zstd")
	if s.apiKey != "" {
		httpReq.Header.Set("X-Api-Key", s.apiKey)
	}

	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		end(err)
		return nil, cErr.ExternalRequestError("patentsview api request failed")
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		end(err)
		return nil, cErr.ExternalRequestError("read patentsview response failed")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		cause := fmt.Errorf("patentsview non-2xx: %s (%d)", resp.Status, resp.StatusCode)
		end(cause)
		return nil, cErr.ExternalRequestError("patentsview api error: " + strings.TrimSpace(string(raw)))
	}

	body, err := decompressOnly(raw, resp.Header)
	if err != nil {
		end(err)
		return nil, cErr.ExternalResponseFormatError("decompress patentsview response failed")
	}

	var parsed patentsViewResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		end(err)
		return nil, cErr.ExternalResponseFormatError("decode patentsview response failed")
	}
	if parsed.Error {
		cause := fmt.Errorf("patentsview responded with error flag")
		end(cause)
		return nil, cErr.ExternalResponseFormatError("patentsview responded with error flag")
	}

	patents := make([]Patent, 0, len(parsed.Patents))
	for _, p := range parsed.Patents {
		grantDate, parseError := time.Parse(grantDateLayout, p.PatentDate)
		if parseError != nil {
			// 單筆日期壞掉就跳過，不拖垮整批
			continue
		}
		assignee := ""
		if len(p.Assignees) > 0 {
			assignee = p.Assignees[0].AssigneeOrganization
		}
		patents = append(patents, Patent{
			PatentID:     p.PatentID,
			Title:        p.PatentTitle,
			Abstract:     p.PatentAbstract,
			AssigneeName: assignee,
			Inventor:     joinInventors(p.Inventors),
			PatentType:   p.PatentType,
			GrantDate:    grantDate,
		})
	}

	span.SetAttributes(attribute.Int("result.count", len(patents)))
	return patents, nil
}

// GetByID 依專利號查單筆
func (s *PatentsViewService) GetByID(ctx context.Context, patentID string) (*Patent, error) {
	ctx, _, end := s.trace.WithSpan(ctx, "patentsview.get_by_id")
	defer end(nil)

	patents, err := s.searchByCriteria(ctx, map[string]any{"patent_id": patentID}, 1)
	if err != nil {
		return nil, err
	}
	if len(patents) == 0 {
		return nil, cErr.NotFound("patent not found: " + patentID)
	}
	return &patents[0], nil
}

func (s *PatentsViewService) searchByCriteria(ctx context.Context, criteria map[string]any, limit int) ([]Patent, error) {
	queryJSON, err := json.Marshal(criteria)
	if err != nil {
		return nil, cErr.InternalServer("marshal patentsview query failed")
	}
	optionsJSON := fmt.Sprintf(`{"size":%d}`, limit)

	requestURL := s.baseURL + "?q=" + url.QueryEscape(string(queryJSON)) +
		"&f=" + url.QueryEscape(patentFieldsJSON) +
		"&o=" + url.QueryEscape(optionsJSON)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, cErr.InternalServer("create http request failed")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Accept-Encoding", "gzip, deflate, br, zstd")
	if s.apiKey != "" {
		httpReq.Header.Set("X-Api-Key", s.apiKey)
	}

	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, cErr.ExternalRequestError("patentsview api request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cErr.ExternalRequestError("read patentsview response failed")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, cErr.ExternalRequestError("patentsview api error: " + strings.TrimSpace(string(raw)))
	}

	body, err := decompressOnly(raw, resp.Header)
	if err != nil {
		return nil, cErr.ExternalResponseFormatError("decompress patentsview response failed")
	}

	var parsed patentsViewResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, cErr.ExternalResponseFormatError("decode patentsview response failed")
	}

	patents := make([]Patent, 0, len(parsed.Patents))
	for _, p := range parsed.Patents {
		grantDate, parseError := time.Parse(grantDateLayout, p.PatentDate)
		if parseError != nil {
			continue
		}
		assignee := ""
		if len(p.Assignees) > 0 {
			assignee = p.Assignees[0].AssigneeOrganization
		}
		patents = append(patents, Patent{
			PatentID:     p.PatentID,
			Title:        p.PatentTitle,
			Abstract:     p.PatentAbstract,
			AssigneeName: assignee,
			Inventor:     joinInventors(p.Inventors),
			PatentType:   p.PatentType,
			GrantDate:    grantDate,
		})
	}
	return patents, nil
}

// joinInventors 把發明人組成「姓, 名」的清單字串，最多取前三位
func joinInventors(inventors []patentsViewInventor) string {
	if len(inventors) == 0 {
		return ""
	}
	if len(inventors) > 3 {
		inventors = inventors[:3]
	}
	names := make([]string, 0, len(inventors))
	for _, inv := range inventors {
		names = append(names, inv.InventorLastName+", "+inv.InventorFirstName)
	}
	return strings.Join(names, ", ")
}

// buildCriteria 組 PatentsView 的查詢條件：
// 授權日視窗（_gte/_lte patent_date）+ 關鍵字（_or _text_any patent_abstract）
func (s *PatentsViewService) buildCriteria(query Query) map[string]any {
	conditions := []any{
		map[string]any{"_gte": map[string]any{"patent_date": query.GrantDateFrom.Format(grantDateLayout)}},
		map[string]any{"_lte": map[string]any{"patent_date": query.GrantDateTo.Format(grantDateLayout)}},
	}
	if len(query.Keywords) > 0 {
		keywordConditions := make([]any, 0, len(query.Keywords))
		for _, keyword := range query.Keywords {
			keywordConditions = append(keywordConditions, map[string]any{
				"_text_any": map[string]any{"patent_abstract": keyword},
			})
		}
		conditions = append(conditions, map[string]any{"_or": keywordConditions})
	}
	return map[string]any{"_and": conditions}
}

// ---- Decompressors ----

// 只負責解壓，不做更多處理；若 Content-Encoding 缺失則用 magic 猜測
func decompressOnly(raw []byte, h http.Header) ([]byte, error) {
	enc := strings.ToLower(strings.TrimSpace(h.Get("Content-Encoding")))
	switch enc {
	case "gzip":
		return gunzipBytes(raw)
	case "deflate":
		return inflateZlibBytes(raw)
	case "zstd":
		return zstdBytes(raw)
	case "br":
		return brotliBytes(raw)
	default:
		if isGzip(raw) {
			return gunzipBytes(raw)
		}
		if isZlib(raw) {
			return inflateZlibBytes(raw)
		}
		return raw, nil
	}
}

func gunzipBytes(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func inflateZlibBytes(b []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func zstdBytes(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(b, nil)
}

func brotliBytes(b []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(b))
	return io.ReadAll(r)
}

// ---- Simple magic number checks ----

func isGzip(b []byte) bool { return len(b) > 2 && b[0] == 0x1f && b[1] == 0x8b }

func isZlib(b []byte) bool {
	return len(b) > 2 && b[0] == 0x78 && (b[1] == 0x01 || b[1] == 0x9c || b[1] == 0xda)
}
