// File: internal/handler/auth/auth.go
package auth

import (
	"encoding/json"
	"net/http"

	"pangkat-auth/internal/cache"
	"pangkat-auth/internal/database"
	"pangkat-auth/internal/dto"
	"pangkat-auth/internal/handler/users"
	"pangkat-auth/internal/model"
	"pangkat-auth/internal/service"

	"github.com/labstack/echo/v4"
)

// Handler 依 action 分派認證相關動作
// @Summary     認證動作分派
// @Description POST 處理 login/register/logout/validate，GET 處理 check/users；action 取自 JSON body 或 query string
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       action query string false "動作名稱"
// @Success     200 {object} dto.AuthResponse
// @Failure     400 {object} dto.AuthResponse
// @Failure     500 {object} dto.AuthResponse
// @Router      /auth [post]
func Handler(svc *service.AuthService, db database.DB, store cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		switch c.Request().Method {
		case http.MethodPost:
			return handlePost(c, svc, store)
		case http.MethodGet:
			return handleGet(c, svc, db, store)
		}
		return c.JSON(http.StatusMethodNotAllowed, dto.AuthResponse{Success: false, Message: "Method not allowed"})
	}
}

func handlePost(c echo.Context, svc *service.AuthService, store cache.Cache) error {
	payload := map[string]any{}
	// body 可能為空（如 logout 只帶 query），解碼失敗不視為錯誤
	if c.Request().Body != nil {
		_ = json.NewDecoder(c.Request().Body).Decode(&payload)
	}

	action, _ := payload["action"].(string)
	if action == "" {
		action = c.QueryParam("action")
	}

	ctx := c.Request().Context()
	origin := requestOrigin(c)

	switch action {
	case "login":
		return writeResult(c, svc.Login(ctx, payload, origin))
	case "register":
		res := svc.Register(ctx, payload, origin)
		if res.Status == service.StatusOK {
			// 名單有新成員，使用者列表快取作廢
			store.Del(ctx, users.CacheKey)
		}
		return writeResult(c, res)
	case "logout":
		return writeResult(c, svc.Logout(ctx, payload, origin))
	case "validate":
		return writeResult(c, svc.ValidateSession(ctx, payload))
	}
	return c.JSON(http.StatusBadRequest, dto.AuthResponse{Success: false, Message: "Invalid action"})
}

func handleGet(c echo.Context, svc *service.AuthService, db database.DB, store cache.Cache) error {
	switch c.QueryParam("action") {
	case "check":
		return c.JSON(http.StatusOK, svc.CheckStatus())
	case "users":
		return users.List(c, db, store)
	}
	return c.JSON(http.StatusBadRequest, dto.AuthResponse{Success: false, Message: "Invalid action"})
}

// requestOrigin 由請求明確取出來源位址與 client agent，
// 缺漏時沿用原系統預設值。
func requestOrigin(c echo.Context) model.Origin {
	origin := model.Origin{IP: c.RealIP(), UserAgent: c.Request().UserAgent()}
	if origin.IP == "" {
		origin.IP = "127.0.0.1"
	}
	if origin.UserAgent == "" {
		origin.UserAgent = "Unknown"
	}
	return origin
}

// writeResult 將 Result 映射為 HTTP 回應。
// 業務拒絕維持 200 + success:false，只有輸入層與系統層例外。
func writeResult(c echo.Context, res service.Result) error {
	switch res.Status {
	case service.StatusOK:
		return c.JSON(http.StatusOK, dto.AuthResponse{
			Success: true,
			Message: res.Message,
			User:    res.User,
			Token:   res.Token,
			UserID:  res.UserID,
		})
	case service.StatusBadInput:
		return c.JSON(http.StatusBadRequest, dto.AuthResponse{Success: false, Message: res.Message})
	case service.StatusError:
		return c.JSON(http.StatusInternalServerError, dto.AuthResponse{Success: false, Message: res.Message})
	}
	return c.JSON(http.StatusOK, dto.AuthResponse{Success: false, Message: res.Message})
}
