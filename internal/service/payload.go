// File: internal/service/payload.go
package service

import (
	"encoding/json"
	"strconv"
	"strings"
)

// stringField 取出 payload 內的字串欄位，缺漏或非字串回傳空字串
func stringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

// intField 取出 payload 內的整數欄位。JSON 解碼後數字是 float64，
// 前端也可能以字串傳 user_id，這裡一併處理。
func intField(payload map[string]any, key string) (int, bool) {
	switch v := payload[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}
