// File: internal/dto/user_response.go
package dto

import (
	"time"

	"pangkat-auth/internal/model"
)

// UserResponse 對外回傳的使用者資料，永不包含密碼哈希
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        int        `json:"id" example:"1"`
	Username  string     `json:"username" example:"alice"`
	FullName  string     `json:"full_name" example:"Alice A"`
	Email     *string    `json:"email,omitempty" example:"alice@example.com"`
	Phone     *string    `json:"phone,omitempty" example:"0912345678"`
	Role      string     `json:"role" example:"member"`
	IsActive  bool       `json:"is_active" example:"true"`
	CreatedAt time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z"`
	LastLogin *time.Time `json:"last_login"`
}

// NewUserResponse 由 model.User 組出回應，哈希欄位在此被剝除
func NewUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}
