package models

import "time"

// Question 问题主表
// notice=1 的问题在所有排序下置顶
type Question struct {
	ID         int64      `gorm:"column:id;primaryKey" json:"id"` // 雪花算法ID
	CategoryID uint64     `gorm:"column:category_id;not null;index:idx_category_id" json:"category_id"`
	UserID     uint64     `gorm:"column:user_id;not null;index:idx_question_user_id" json:"user_id"` // 作者ID
	Subject    string     `gorm:"column:subject;type:varchar(200);not null" json:"subject"`
	Content    string     `gorm:"column:content;type:text;not null" json:"content"`
	Notice     bool       `gorm:"column:notice;not null;default:0" json:"notice"`           // 置顶标记
	ViewCount  int64      `gorm:"column:view_count;not null;default:0" json:"view_count"`   // 浏览量
	CreateDate time.Time  `gorm:"column:create_date;not null;index:idx_create_date" json:"create_date"`
	ModifyDate *time.Time `gorm:"column:modify_date" json:"modify_date,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
