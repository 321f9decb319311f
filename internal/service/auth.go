// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pangkat-auth/internal/config"
	"pangkat-auth/internal/database"
	"pangkat-auth/internal/dto"
	"pangkat-auth/internal/model"
	"pangkat-auth/internal/repository"
	"pangkat-auth/internal/worker"
)

// Status 表示單一動作的結果層級
type Status int

const (
	// StatusOK 動作成功
	StatusOK Status = iota
	// StatusBadInput 輸入層拒絕：必填欄位缺漏，未觸及儲存層
	StatusBadInput
	// StatusRejected 業務層拒絕：帳密錯誤、重複帳號等，對外為 200 + success:false
	StatusRejected
	// StatusError 系統層失敗：細節只進日誌，對外訊息一律籠統
	StatusError
)

// Result 是每個動作的回傳值；動作本身不丟 error，
// 所有失敗都收斂成帶狀態的 Result。
type Result struct {
	Status  Status
	Message string
	User    *dto.UserResponse
	Token   string
	UserID  int
}

func rejected(msg string) Result {
	return Result{Status: StatusRejected, Message: msg}
}

// nowFn 測試可覆寫的時鐘
var nowFn = time.Now

// AuthService 串接驗證、儲存、哈希與稽核，對每個動作做一次狀態轉移。
// 狀態只存在於單一請求內，不跨請求保存。
type AuthService struct {
	db    database.DB
	pool  worker.Pool
	audit *AuditRecorder
	cfg   config.Config
}

func NewAuthService(db database.DB, pool worker.Pool, audit *AuditRecorder, cfg config.Config) *AuthService {
	return &AuthService{db: db, pool: pool, audit: audit, cfg: cfg}
}

// Login 驗證帳號密碼並發放一次性令牌。
// 查無帳號與密碼錯誤回覆相同訊息，避免帳號枚舉。
func (s *AuthService) Login(ctx context.Context, payload map[string]any, origin model.Origin) Result {
	if errs := ValidateRequired(payload, []string{"username", "password"}); len(errs) > 0 {
		return Result{Status: StatusBadInput, Message: strings.Join(errs, ", ")}
	}

	username := Sanitize(stringField(payload, "username"))
	password := stringField(payload, "password")

	user, err := repository.GetActiveUserByUsername(ctx, s.db, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return rejected("Invalid username or password")
		}
		logf("login error: %v", err)
		return Result{Status: StatusError, Message: "Login failed. Please try again."}
	}

	if !CheckPassword(user.PasswordHash, password) {
		return rejected("Invalid username or password")
	}

	// last_login 更新為 best-effort，失敗記日誌但不影響登入結果
	userID := user.ID
	s.pool.Submit(func() {
		bctx, cancel := context.WithTimeout(context.Background(), backgroundWriteTimeout)
		defer cancel()
		if err := repository.TouchLastLogin(bctx, s.db, userID); err != nil {
			logf("last login update error: %v", err)
		}
	})

	s.audit.Record(user.ID, user.Username, model.ActionLogin, "User logged in successfully", origin)

	token, err := GenerateToken(s.cfg.TokenBytes)
	if err != nil {
		logf("login error: %v", err)
		return Result{Status: StatusError, Message: "Login failed. Please try again."}
	}

	return Result{
		Status:  StatusOK,
		Message: "Login successful",
		User:    dto.NewUserResponse(user),
		Token:   token,
	}
}

// Register 建立新會員。唯一性最終由資料表 UNIQUE 約束把關，
// 預檢漏掉的競態插入以同一則「已存在」訊息拒絕，不當成系統錯誤。
func (s *AuthService) Register(ctx context.Context, payload map[string]any, origin model.Origin) Result {
	if errs := ValidateRequired(payload, []string{"username", "password", "full_name"}); len(errs) > 0 {
		return Result{Status: StatusBadInput, Message: strings.Join(errs, ", ")}
	}

	username := Sanitize(stringField(payload, "username"))
	password := stringField(payload, "password")
	fullName := Sanitize(stringField(payload, "full_name"))

	var email, phone *string
	if _, ok := payload["email"]; ok {
		v := Sanitize(stringField(payload, "email"))
		email = &v
	}
	if _, ok := payload["phone"]; ok {
		v := Sanitize(stringField(payload, "phone"))
		phone = &v
	}

	if len(password) < s.cfg.PasswordMinLength {
		return rejected(fmt.Sprintf("Password must be at least %d characters", s.cfg.PasswordMinLength))
	}

	if strings.EqualFold(username, model.ReservedUsername) {
		return rejected("Cannot register as admin")
	}

	exists, err := repository.UsernameExists(ctx, s.db, username)
	if err != nil {
		logf("registration error: %v", err)
		return Result{Status: StatusError, Message: "Registration failed. Please try again."}
	}
	if exists {
		return rejected("Username already exists")
	}

	hash, err := HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		logf("registration error: %v", err)
		return Result{Status: StatusError, Message: "Registration failed. Please try again."}
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		Role:         model.RoleMember,
	}
	created, err := repository.CreateUser(ctx, s.db, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return rejected("Username already exists")
		}
		logf("registration error: %v", err)
		return Result{Status: StatusError, Message: "Registration failed. Please try again."}
	}

	s.audit.Record(created.ID, created.Username, model.ActionRegister, "New user registered: "+fullName, origin)

	return Result{
		Status:  StatusOK,
		Message: "Registration successful! You can now login.",
		UserID:  created.ID,
	}
}

// Logout 僅在帶有 user_id 與 username 時寫稽核，對呼叫端永遠成功。
// 伺服器端沒有會話可註銷。
func (s *AuthService) Logout(ctx context.Context, payload map[string]any, origin model.Origin) Result {
	userID, okID := intField(payload, "user_id")
	username := stringField(payload, "username")

	if okID && userID != 0 && strings.TrimSpace(username) != "" {
		s.audit.Record(userID, username, model.ActionLogout, "User logged out", origin)
	}
	return Result{Status: StatusOK, Message: "Logged out successfully"}
}

// ValidateSession 以 id + username 成對重查有效使用者。
// 登入發出的令牌不會回傳驗證，這是本協定既有的行為。
func (s *AuthService) ValidateSession(ctx context.Context, payload map[string]any) Result {
	userID, okID := intField(payload, "user_id")
	username := stringField(payload, "username")

	if !okID || userID == 0 || strings.TrimSpace(username) == "" {
		return rejected("Session invalid")
	}

	user, err := repository.GetActiveUserByIDAndUsername(ctx, s.db, userID, Sanitize(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return rejected("Session expired")
		}
		logf("session validation error: %v", err)
		return rejected("Session validation failed")
	}

	return Result{Status: StatusOK, User: dto.NewUserResponse(user)}
}

// CheckStatus 無狀態探測，固定回報未認證與伺服器時間
func (s *AuthService) CheckStatus() dto.CheckResponse {
	return dto.CheckResponse{
		Success:       true,
		Authenticated: false,
		Timestamp:     nowFn().Format("2006-01-02 15:04:05"),
	}
}
