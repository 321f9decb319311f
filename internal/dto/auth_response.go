// File: internal/dto/auth_response.go
package dto

// AuthResponse 各動作共用的回應格式
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Success bool          `json:"success" example:"true"`
	Message string        `json:"message,omitempty" example:"Login successful"`
	User    *UserResponse `json:"user,omitempty"`
	Token   string        `json:"token,omitempty" example:"9f86d081884c7d65"`
	UserID  int           `json:"user_id,omitempty" example:"7"`
}

// UsersResponse 使用者列表回應
// swagger:model dto.UsersResponse
type UsersResponse struct {
	Success bool            `json:"success" example:"true"`
	Users   []*UserResponse `json:"users"`
	Count   int             `json:"count" example:"2"`
}

// CheckResponse 狀態探測回應，僅回報伺服器時間
// swagger:model dto.CheckResponse
type CheckResponse struct {
	Success       bool   `json:"success" example:"true"`
	Authenticated bool   `json:"authenticated" example:"false"`
	Timestamp     string `json:"timestamp" example:"2025-05-01 15:04:05"`
}
