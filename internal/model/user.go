// File: internal/model/user.go
package model

import "time"

// 使用者角色
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// ReservedUsername 註冊時禁止使用的管理員帳號名稱（不分大小寫）
const ReservedUsername = "admin"

type User struct {
	ID           int        `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password" json:"-"`
	FullName     string     `db:"full_name" json:"full_name"`
	Email        *string    `db:"email" json:"email"`
	Phone        *string    `db:"phone" json:"phone"`
	Role         string     `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	LastLogin    *time.Time `db:"last_login" json:"last_login"`
}
