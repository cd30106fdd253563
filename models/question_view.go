package models

import "time"

// QuestionView 浏览去重记录
// 唯一键 (ip, question_id) 是浏览量去重的正确性保证：
// 并发请求下只有一条 insert 能成功，输掉的请求跳过计数
type QuestionView struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IP         string    `gorm:"column:ip;type:varchar(45);not null;uniqueIndex:uk_ip_question,priority:1" json:"ip"`
	QuestionID int64     `gorm:"column:question_id;not null;uniqueIndex:uk_ip_question,priority:2" json:"question_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (QuestionView) TableName() string {
	return "question_views"
}
