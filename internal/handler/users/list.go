// File: internal/handler/users/list.go
package users

import (
	"encoding/json"
	"net/http"
	"time"

	"pangkat-auth/internal/cache"
	"pangkat-auth/internal/database"
	"pangkat-auth/internal/dto"
	"pangkat-auth/internal/repository"

	"github.com/labstack/echo/v4"
)

// CacheKey 使用者列表的快取鍵；註冊成功時由 auth handler 作廢
const CacheKey = "users:all"

const cacheTTL = 30 * time.Second

// List 回傳全部使用者（不含密碼哈希），結果短暫快取於 Redis。
// 快取讀寫失敗都退回資料庫，不影響回應。
func List(c echo.Context, db database.DB, store cache.Cache) error {
	ctx := c.Request().Context()

	if raw, err := store.Get(ctx, CacheKey).Result(); err == nil {
		var resp dto.UsersResponse
		if json.Unmarshal([]byte(raw), &resp) == nil {
			return c.JSON(http.StatusOK, resp)
		}
	}

	list, err := repository.ListUsers(ctx, db)
	if err != nil {
		c.Logger().Errorf("get users error: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.AuthResponse{Success: false, Message: "Failed to fetch users"})
	}

	resp := dto.UsersResponse{Success: true, Count: len(list)}
	resp.Users = make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		resp.Users = append(resp.Users, dto.NewUserResponse(u))
	}

	if b, err := json.Marshal(resp); err == nil {
		store.Set(ctx, CacheKey, b, cacheTTL)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListHandler 獨立路由版本
// @Summary     列出全部使用者
// @Description 依建立時間新到舊排序；回應不含密碼哈希
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UsersResponse
// @Failure     500 {object} dto.AuthResponse
// @Router      /auth [get]
func ListHandler(db database.DB, store cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		return List(c, db, store)
	}
}
