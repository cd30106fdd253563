package models

import "time"

// Comment 评论表
// QuestionID / AnswerID 二选一 (使用指针处理 NULL)：
// 评论要么挂在问题下，要么挂在某条回答下
type Comment struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;index:idx_comment_user_id" json:"user_id"`
	QuestionID *int64    `gorm:"column:question_id;index:idx_comment_question_id" json:"question_id,omitempty"`
	AnswerID   *int64    `gorm:"column:answer_id;index:idx_comment_answer_id" json:"answer_id,omitempty"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	CreateDate time.Time `gorm:"column:create_date;not null" json:"create_date"`
}

func (Comment) TableName() string {
	return "comments"
}
