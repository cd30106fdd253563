package dao

import (
	"Agora/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuestionView struct {
	Repo[models.QuestionView]
}

func NewQuestionView(db *gorm.DB) *QuestionView {
	return &QuestionView{Repo: NewRepo[models.QuestionView](db)}
}

// RecordView 在一个事务内完成浏览去重与计数：
// (ip, question) 无记录则插入并把 view_count 加一。
// 唯一键 uk_ip_question 兜底并发：同 IP 两个请求同时走到 insert，
// 输掉的那个拿到 ErrDuplicatedKey，跳过计数即可。
// 返回值表示本次请求是否真正计数。
func (d *QuestionView) RecordView(ctx context.Context, ip string, questionID int64) (bool, error) {
	counted := false
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.QuestionView{}).
			Where("ip = ? AND question_id = ?", ip, questionID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		record := &models.QuestionView{IP: ip, QuestionID: questionID}
		if err := tx.Create(record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}

		if err := tx.Model(&models.Question{}).
			Where("id = ?", questionID).
			UpdateColumn("view_count", gorm.Expr("COALESCE(view_count, 0) + 1")).Error; err != nil {
			return err
		}
		counted = true
		return nil
	})
	return counted, err
}
