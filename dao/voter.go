package dao

import (
	"Agora/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuestionVoter struct {
	Repo[models.QuestionVoter]
}

func NewQuestionVoter(db *gorm.DB) *QuestionVoter {
	return &QuestionVoter{Repo: NewRepo[models.QuestionVoter](db)}
}

// Add 记录一票，重复投票幂等
func (d *QuestionVoter) Add(ctx context.Context, questionID int64, userID uint64) error {
	err := d.Db.WithContext(ctx).Create(&models.QuestionVoter{
		QuestionID: questionID,
		UserID:     userID,
	}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// CountByQuestion 问题推荐人数
func (d *QuestionVoter) CountByQuestion(ctx context.Context, questionID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.QuestionVoter{}).
		Where("question_id = ?", questionID).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

type AnswerVoter struct {
	Repo[models.AnswerVoter]
}

func NewAnswerVoter(db *gorm.DB) *AnswerVoter {
	return &AnswerVoter{Repo: NewRepo[models.AnswerVoter](db)}
}

// Add 记录一票，重复投票幂等
func (d *AnswerVoter) Add(ctx context.Context, answerID int64, userID uint64) error {
	err := d.Db.WithContext(ctx).Create(&models.AnswerVoter{
		AnswerID: answerID,
		UserID:   userID,
	}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}
