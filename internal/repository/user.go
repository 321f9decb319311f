// File: internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"pangkat-auth/internal/database"
	"pangkat-auth/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無符合條件的使用者
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateUsername username UNIQUE 約束被違反
	ErrDuplicateUsername = errors.New("username already exists")
)

const userColumns = `id, username, password, full_name, email, phone, role, is_active, created_at, last_login`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.FullName,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
		&u.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func GetActiveUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE username = $1 AND is_active = TRUE`,
		username,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetActiveUserByUsername: %w", err)
	}
	return u, nil
}

// GetActiveUserByIDAndUsername 以 id 與 username 成對查詢有效使用者，
// 供 validate 動作重新確認身分。
func GetActiveUserByIDAndUsername(ctx context.Context, db database.DB, userID int, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1 AND username = $2 AND is_active = TRUE`,
		userID,
		username,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetActiveUserByIDAndUsername: %w", err)
	}
	return u, nil
}

// UsernameExists 僅作快速預檢；唯一性的最終保證是資料表的 UNIQUE 約束，
// 預檢漏掉的競態由 CreateUser 回報 ErrDuplicateUsername。
func UsernameExists(ctx context.Context, db database.DB, username string) (bool, error) {
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		username,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("UsernameExists: %w", err)
	}
	return exists, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, password, full_name, email, phone, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		u.Username,
		u.PasswordHash,
		u.FullName,
		u.Email,
		u.Phone,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	u.IsActive = true
	return u, nil
}

func TouchLastLogin(ctx context.Context, db database.DB, userID int) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login = NOW() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("TouchLastLogin: %w", err)
	}
	return nil
}

// ListUsers 回傳全部使用者，新建立者在前；密碼哈希不在投影內。
func ListUsers(ctx context.Context, db database.DB) ([]*model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, username, full_name, email, phone, role, is_active, created_at, last_login
		 FROM users ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		u := &model.User{}
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.FullName,
			&u.Email,
			&u.Phone,
			&u.Role,
			&u.IsActive,
			&u.CreatedAt,
			&u.LastLogin,
		); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}
