package dao

import (
	"Agora/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{Repo: NewRepo[models.Comment](db)}
}

// CountByQuestion 问题本身的评论数（不含回答评论）
func (d *Comment) CountByQuestion(ctx context.Context, questionID int64) (int64, error) {
	return d.Repo.QueryCount(ctx, "question_id = ?", questionID)
}

// CountByAnswer 某条回答的评论数
func (d *Comment) CountByAnswer(ctx context.Context, answerID int64) (int64, error) {
	return d.Repo.QueryCount(ctx, "answer_id = ?", answerID)
}
