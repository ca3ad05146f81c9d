package apikey

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
)

// TokenPrefix partner API key 的固定前綴
const TokenPrefix = "pat_"

// GenerateToken 產生 partner API key：pat_ + 32 bytes 的 urlsafe base64
func GenerateToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return TokenPrefix + base64.RawURLEncoding.EncodeToString(raw), nil
}

// HasTokenPrefix 檢查格式（認證前的快速排除）
func HasTokenPrefix(token string) bool {
	return strings.HasPrefix(token, TokenPrefix)
}
