package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"patentgate/config"
	"patentgate/internal/core"
	"patentgate/internal/dto"
	cErr "patentgate/internal/pkg/error"
	"patentgate/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus"
	promModel "github.com/prometheus/client_model/go"
)

// processStart 服務起算時間，Overview 回報 uptime 用
var processStart = time.Now()

// AdminService 後台登入與 JWT 簽發/驗證
type AdminService struct {
	trace  *telemetry.Trace
	config *config.Configuration
}

func NewAdminService(trace *telemetry.Trace, config *config.Configuration) *AdminService {
	return &AdminService{trace: trace, config: config}
}

// Login 帳密比對用常數時間比較，避免 timing 洩漏
func (s *AdminService) Login(ctx context.Context, loginDto *dto.AdminLoginDto) (*dto.AdminTokenResponseDto, error) {
	_, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	usernameMatch := subtle.ConstantTimeCompare([]byte(loginDto.Username), []byte(s.config.Admin.Username)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(loginDto.Password), []byte(s.config.Admin.Password)) == 1
	if !usernameMatch || !passwordMatch {
		return nil, cErr.Unauthorized("invalid admin credentials")
	}

	expiryHours := s.config.Admin.TokenExpiryHour
	if expiryHours <= 0 {
		expiryHours = 24
	}
	expiresAt := time.Now().Add(time.Duration(expiryHours) * time.Hour)

	claims := core.Claims{
		Username: loginDto.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.config.App.Name,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Admin.SecretKey))
	if err != nil {
		end(err)
		return nil, cErr.InternalServer("failed to sign admin token")
	}

	return &dto.AdminTokenResponseDto{
		Token:     signed,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

// Overview 後台儀表板摘要：把本服務註冊的 Prometheus counter
// 彙總成一張表，加上版本與 uptime。Histogram 等其他型別
// 在 /metrics 看完整資料即可，這裡只求一眼看出流量輪廓。
func (s *AdminService) Overview(ctx context.Context) (*dto.AdminOverviewDto, error) {
	_, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		end(err)
		return nil, cErr.InternalServer("failed to gather metrics")
	}

	prefix := s.config.App.Name + "_"
	counters := make(map[string]float64)
	for _, family := range families {
		if family.GetType() != promModel.MetricType_COUNTER {
			continue
		}
		name, ok := strings.CutPrefix(family.GetName(), prefix)
		if !ok {
			continue
		}
		var total float64
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		counters[name] = total
	}

	return &dto.AdminOverviewDto{
		Version:       s.config.App.Version,
		UptimeSeconds: int64(time.Since(processStart).Seconds()),
		Counters:      counters,
	}, nil
}

// VerifyToken 驗證 JWT 並取回 claims
func (s *AdminService) VerifyToken(tokenString string) (*core.Claims, error) {
	claims := &core.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, cErr.Unauthorized("unexpected signing method")
		}
		return []byte(s.config.Admin.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, cErr.InvalidSession("invalid or expired admin token")
	}
	return claims, nil
}
