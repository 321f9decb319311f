// File: internal/model/audit_log.go
package model

import "time"

// 稽核動作類型
const (
	ActionLogin    = "login"
	ActionRegister = "register"
	ActionLogout   = "logout"
)

// AuditLog 稽核紀錄，僅新增、不更新不刪除。
// Username 為事件當下的快照，使用者資料日後變動不影響紀錄可讀性。
type AuditLog struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Username    string    `db:"username" json:"username"`
	Action      string    `db:"action" json:"action"`
	Description string    `db:"description" json:"description"`
	IPAddress   string    `db:"ip_address" json:"ip_address"`
	UserAgent   string    `db:"user_agent" json:"user_agent"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Origin 請求來源資訊，由傳輸層明確帶入，不從全域狀態讀取。
type Origin struct {
	IP        string
	UserAgent string
}
