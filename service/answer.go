package service

import (
	"Agora/dao"
	"Agora/models"
	"Agora/pkg/response"
	"Agora/pkg/snowflake"
	"Agora/types"
	"context"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"
)

var _ IAnswerService = (*AnswerService)(nil)

type IAnswerService interface {
	Create(ctx context.Context, questionID int64, userID uint64, req *types.CreateAnswerRequest) (*types.CreateAnswerResponse, error)
	Modify(ctx context.Context, answerID int64, userID uint64, isStaff bool, req *types.ModifyAnswerRequest) (*types.CreateAnswerResponse, error)
	Delete(ctx context.Context, answerID int64, userID uint64, isStaff bool) (*types.DeleteQuestionResponse, error)
}

type AnswerService struct {
	DB          *gorm.DB
	QuestionDAO *dao.Question
	AnswerDAO   *dao.Answer
	CommentDAO  *dao.Comment
}

// Create 发布回答
func (s *AnswerService) Create(ctx context.Context, questionID int64, userID uint64, req *types.CreateAnswerRequest) (*types.CreateAnswerResponse, error) {
	exist, err := s.QuestionDAO.IsExist(ctx, "id = ?", questionID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewError(http.StatusNotFound, "问题不存在")
	}

	answer := &models.Answer{
		ID:         snowflake.GenID(),
		QuestionID: questionID,
		UserID:     userID,
		Content:    req.Content,
		CreateDate: time.Now(),
	}
	if err := s.AnswerDAO.Create(ctx, answer); err != nil {
		return nil, err
	}

	return &types.CreateAnswerResponse{
		AnswerID: answer.ID,
		Redirect: types.QuestionDetailRoute(questionID),
	}, nil
}

// Modify 修改回答，作者或管理员可为
func (s *AnswerService) Modify(ctx context.Context, answerID int64, userID uint64, isStaff bool, req *types.ModifyAnswerRequest) (*types.CreateAnswerResponse, error) {
	answer, err := s.AnswerDAO.FindById(ctx, answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "回答不存在")
		}
		return nil, err
	}
	detailRoute := types.QuestionDetailRoute(answer.QuestionID)

	if answer.UserID != userID && !isStaff {
		return nil, response.NewRedirectError(http.StatusForbidden, "没有修改权限", detailRoute)
	}

	err = s.AnswerDAO.UpdateFields(ctx, answerID, map[string]any{
		"content":     req.Content,
		"modify_date": time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &types.CreateAnswerResponse{
		AnswerID: answerID,
		Redirect: detailRoute,
	}, nil
}

// Delete 删除回答，已有评论的回答不可删除
func (s *AnswerService) Delete(ctx context.Context, answerID int64, userID uint64, isStaff bool) (*types.DeleteQuestionResponse, error) {
	answer, err := s.AnswerDAO.FindById(ctx, answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "回答不存在")
		}
		return nil, err
	}
	detailRoute := types.QuestionDetailRoute(answer.QuestionID)

	commentCount, err := s.CommentDAO.CountByAnswer(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if commentCount > 0 {
		return nil, response.NewRedirectError(http.StatusConflict, "已有评论的回答无法删除", detailRoute)
	}

	if answer.UserID != userID && !isStaff {
		return nil, response.NewRedirectError(http.StatusForbidden, "没有删除权限", detailRoute)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answer_id = ?", answerID).Delete(&models.AnswerVoter{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", answerID).Delete(&models.Answer{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &types.DeleteQuestionResponse{Redirect: detailRoute}, nil
}
