// File: internal/service/token.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// randRead 測試可覆寫的亂數來源
var randRead = rand.Read

// GenerateToken 自加密安全亂數來源取 n bytes，回傳 2n 字元的十六進位字串。
// 亂數讀取失敗直接回傳錯誤，不以較弱的來源替代。
func GenerateToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := randRead(buf); err != nil {
		return "", fmt.Errorf("GenerateToken: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
