// File: internal/repository/audit.go
package repository

import (
	"context"
	"fmt"

	"pangkat-auth/internal/database"
	"pangkat-auth/internal/model"
)

func InsertAuditLog(ctx context.Context, db database.DB, entry *model.AuditLog) error {
	_, err := db.Exec(ctx,
		`INSERT INTO audit_logs (user_id, username, action, description, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.UserID,
		entry.Username,
		entry.Action,
		entry.Description,
		entry.IPAddress,
		entry.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("InsertAuditLog: %w", err)
	}
	return nil
}
