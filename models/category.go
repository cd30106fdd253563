package models

import "time"

// Category 板块表，板块只通过迁移/种子数据维护，不走接口创建
type Category struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(32);not null;uniqueIndex:uk_category_name" json:"name"`
	Description string    `gorm:"column:description;type:varchar(255);not null;default:''" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
