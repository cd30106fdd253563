package dao

import (
	"Agora/models"
	"Agora/types"
	"context"
	"strings"

	"gorm.io/gorm"
)

type Question struct {
	Repo[models.Question]
}

func NewQuestion(db *gorm.DB) *Question {
	return &Question{Repo: NewRepo[models.Question](db)}
}

// 统计列：
// num_voter = 问题推荐人数(去重) + 该问题所有回答的推荐人数(去重)
// num_answer = 回答数 + 问题评论数 + 回答评论数
const questionCountsSelect = `questions.*,
(SELECT u.username FROM users u WHERE u.id = questions.user_id) AS author,
(SELECT COUNT(DISTINCT qv.user_id) FROM question_voters qv WHERE qv.question_id = questions.id)
 + (SELECT COUNT(DISTINCT av.user_id) FROM answer_voters av
        JOIN answers a ON a.id = av.answer_id WHERE a.question_id = questions.id) AS num_voter,
(SELECT COUNT(*) FROM answers a WHERE a.question_id = questions.id)
 + (SELECT COUNT(*) FROM comments c WHERE c.question_id = questions.id)
 + (SELECT COUNT(*) FROM comments c
        JOIN answers a ON a.id = c.answer_id WHERE a.question_id = questions.id) AS num_answer`

// searchScope 关键字过滤
// 用 EXISTS 子查询而不是 JOIN，天然保证一条问题只出现一次
func searchScope(kw string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if kw == "" {
			return db
		}
		like := "%" + strings.ToLower(kw) + "%"
		return db.Where(`(LOWER(questions.subject) LIKE ?
			OR LOWER(questions.content) LIKE ?
			OR EXISTS (SELECT 1 FROM users u WHERE u.id = questions.user_id AND LOWER(u.username) LIKE ?)
			OR EXISTS (SELECT 1 FROM answers a WHERE a.question_id = questions.id AND LOWER(a.content) LIKE ?)
			OR EXISTS (SELECT 1 FROM answers a JOIN users au ON au.id = a.user_id
				WHERE a.question_id = questions.id AND LOWER(au.username) LIKE ?))`,
			like, like, like, like, like)
	}
}

func orderClause(so string) string {
	switch so {
	case types.SortRecommend:
		return "questions.notice DESC, num_voter DESC, questions.create_date DESC"
	case types.SortPopular:
		return "questions.notice DESC, num_answer DESC, questions.create_date DESC"
	default: // recent
		return "questions.notice DESC, questions.create_date DESC"
	}
}

// ListByCategory 带统计列的问题分页查询
func (d *Question) ListByCategory(ctx context.Context, categoryID uint64, kw string, so string, offset, limit int) ([]*types.QuestionWithCounts, error) {
	var rows []*types.QuestionWithCounts
	err := d.Db.WithContext(ctx).
		Table("questions").
		Select(questionCountsSelect).
		Where("questions.category_id = ?", categoryID).
		Scopes(searchScope(kw)).
		Order(orderClause(so)).
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// CountByCategory 与 ListByCategory 同条件的总数，用于分页收敛
func (d *Question) CountByCategory(ctx context.Context, categoryID uint64, kw string) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Question{}).
		Where("questions.category_id = ?", categoryID).
		Scopes(searchScope(kw)).
		Count(&count).Error
	return count, err
}

// GetWithCounts 单条问题 + 统计列
func (d *Question) GetWithCounts(ctx context.Context, questionID int64) (*types.QuestionWithCounts, error) {
	var row types.QuestionWithCounts
	err := d.Db.WithContext(ctx).
		Table("questions").
		Select(questionCountsSelect).
		Where("questions.id = ?", questionID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateFields 更新指定字段
func (d *Question) UpdateFields(ctx context.Context, questionID int64, fields map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", questionID).
		Updates(fields).Error
}
