package models

import "time"

// Answer 回答表，一条回答属于且仅属于一个问题
type Answer struct {
	ID         int64      `gorm:"column:id;primaryKey" json:"id"` // 雪花算法ID
	QuestionID int64      `gorm:"column:question_id;not null;index:idx_answer_question_id" json:"question_id"`
	UserID     uint64     `gorm:"column:user_id;not null;index:idx_answer_user_id" json:"user_id"` // 作者ID
	Content    string     `gorm:"column:content;type:text;not null" json:"content"`
	CreateDate time.Time  `gorm:"column:create_date;not null" json:"create_date"`
	ModifyDate *time.Time `gorm:"column:modify_date" json:"modify_date,omitempty"`
}

func (Answer) TableName() string {
	return "answers"
}
