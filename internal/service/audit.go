// File: internal/service/audit.go
package service

import (
	"context"
	"log"
	"time"

	"pangkat-auth/internal/database"
	"pangkat-auth/internal/model"
	"pangkat-auth/internal/repository"
	"pangkat-auth/internal/worker"
)

// logf 操作日誌輸出，測試可覆寫
var logf = log.Printf

// 背景寫入（稽核、last_login）的逾時上限
const backgroundWriteTimeout = 5 * time.Second

// AuditRecorder 負責稽核紀錄寫入。寫入經由 worker pool 背景執行，
// 失敗只記到操作日誌後吞掉：稽核寫入失敗不得影響觸發它的使用者操作。
type AuditRecorder struct {
	db   database.DB
	pool worker.Pool
}

func NewAuditRecorder(db database.DB, pool worker.Pool) *AuditRecorder {
	return &AuditRecorder{db: db, pool: pool}
}

// Record 送出一筆稽核紀錄。以 background context 配逾時執行，
// 請求本身被取消也不會中斷寫入。
func (r *AuditRecorder) Record(userID int, username, action, description string, origin model.Origin) {
	entry := &model.AuditLog{
		UserID:      userID,
		Username:    username,
		Action:      action,
		Description: description,
		IPAddress:   origin.IP,
		UserAgent:   origin.UserAgent,
	}
	r.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundWriteTimeout)
		defer cancel()
		if err := repository.InsertAuditLog(ctx, r.db, entry); err != nil {
			logf("audit log error: %v", err)
		}
	})
}
