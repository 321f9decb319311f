// File: internal/service/sanitize.go
package service

import (
	"fmt"
	"strings"
)

// ValidateRequired 檢查 payload 內必填欄位，缺漏或去空白後為空即回報。
// 只檢查「有沒有」，格式與長度規則由各呼叫端自行把關。
func ValidateRequired(payload map[string]any, fields []string) []string {
	var errs []string
	for _, field := range fields {
		v, ok := payload[field]
		if !ok {
			errs = append(errs, fmt.Sprintf("Field '%s' is required", field))
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Sprintf("Field '%s' is required", field))
		}
	}
	return errs
}

// sanitize 會輸出的實體，'&' 開頭若已是其中之一則不再轉義，
// 這讓 Sanitize 具冪等性：Sanitize(Sanitize(x)) == Sanitize(x)。
var entityPrefixes = []string{"&amp;", "&lt;", "&gt;", "&quot;", "&#39;"}

// Sanitize 去除前後空白並將具標記意義的字元轉為 HTML 實體，
// 使輸入可安全地以文字重新呈現。密碼一律不經過此函式。
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		case '&':
			if hasEntityPrefix(s[i:]) {
				b.WriteByte('&')
			} else {
				b.WriteString("&amp;")
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func hasEntityPrefix(s string) bool {
	for _, e := range entityPrefixes {
		if strings.HasPrefix(s, e) {
			return true
		}
	}
	return false
}

// SanitizeAny 對字串、map、slice 遞迴套用 Sanitize，其他型別原樣返回。
func SanitizeAny(v any) any {
	switch t := v.(type) {
	case string:
		return Sanitize(t)
	case map[string]any:
		for k, val := range t {
			t[k] = SanitizeAny(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = SanitizeAny(val)
		}
		return t
	default:
		return v
	}
}
