package models

import "time"

// QuestionVoter 问题推荐记录
// 唯一键: question_id + user_id，一人一票
type QuestionVoter struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionID int64     `gorm:"column:question_id;not null;uniqueIndex:uk_question_user,priority:1" json:"question_id"`
	UserID     uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_question_user,priority:2" json:"user_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (QuestionVoter) TableName() string {
	return "question_voters"
}

// AnswerVoter 回答推荐记录
type AnswerVoter struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AnswerID  int64     `gorm:"column:answer_id;not null;uniqueIndex:uk_answer_user,priority:1" json:"answer_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_answer_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AnswerVoter) TableName() string {
	return "answer_voters"
}
