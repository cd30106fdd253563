package dao

import (
	"Agora/models"
	"Agora/types"
	"context"

	"gorm.io/gorm"
)

type Answer struct {
	Repo[models.Answer]
}

func NewAnswer(db *gorm.DB) *Answer {
	return &Answer{Repo: NewRepo[models.Answer](db)}
}

const answerVotesSelect = `answers.*,
(SELECT u.username FROM users u WHERE u.id = answers.user_id) AS author,
(SELECT COUNT(DISTINCT av.user_id) FROM answer_voters av WHERE av.answer_id = answers.id) AS num_voter`

// ListByQuestion 带推荐数的回答分页查询
// recommend: 推荐数降序，同推荐数按时间正序; recent: 时间正序
func (d *Answer) ListByQuestion(ctx context.Context, questionID int64, so string, offset, limit int) ([]*types.AnswerWithVotes, error) {
	order := "num_voter DESC, answers.create_date ASC"
	if so == types.SortRecent {
		order = "answers.create_date ASC, num_voter DESC"
	}

	var rows []*types.AnswerWithVotes
	err := d.Db.WithContext(ctx).
		Table("answers").
		Select(answerVotesSelect).
		Where("answers.question_id = ?", questionID).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (d *Answer) CountByQuestion(ctx context.Context, questionID int64) (int64, error) {
	return d.Repo.QueryCount(ctx, "question_id = ?", questionID)
}

// CountVoters 单条回答的推荐人数
func (d *Answer) CountVoters(ctx context.Context, answerID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.AnswerVoter{}).
		Where("answer_id = ?", answerID).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

// UpdateFields 更新指定字段
func (d *Answer) UpdateFields(ctx context.Context, answerID int64, fields map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ?", answerID).
		Updates(fields).Error
}
