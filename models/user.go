package models

import "time"

type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(32);not null;uniqueIndex:uk_username" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(128);not null" json:"-"` // bcrypt 哈希
	IsStaff   bool      `gorm:"column:is_staff;not null;default:0" json:"is_staff"`  // 管理员标记
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
