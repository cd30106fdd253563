package service

import (
	"Agora/dao"
	"Agora/models"
	"Agora/pkg/response"
	"Agora/types"
	"context"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	CreateForQuestion(ctx context.Context, questionID int64, userID uint64, req *types.CreateCommentRequest) (*types.CreateCommentResponse, error)
	CreateForAnswer(ctx context.Context, answerID int64, userID uint64, req *types.CreateCommentRequest) (*types.CreateCommentResponse, error)
}

type CommentService struct {
	QuestionDAO *dao.Question
	AnswerDAO   *dao.Answer
	CommentDAO  *dao.Comment
}

// CreateForQuestion 评论问题
func (s *CommentService) CreateForQuestion(ctx context.Context, questionID int64, userID uint64, req *types.CreateCommentRequest) (*types.CreateCommentResponse, error) {
	exist, err := s.QuestionDAO.IsExist(ctx, "id = ?", questionID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewError(http.StatusNotFound, "问题不存在")
	}

	comment := &models.Comment{
		UserID:     userID,
		QuestionID: &questionID,
		Content:    req.Content,
		CreateDate: time.Now(),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	return &types.CreateCommentResponse{
		CommentID: comment.ID,
		Redirect:  types.QuestionDetailRoute(questionID),
	}, nil
}

// CreateForAnswer 评论回答
func (s *CommentService) CreateForAnswer(ctx context.Context, answerID int64, userID uint64, req *types.CreateCommentRequest) (*types.CreateCommentResponse, error) {
	answer, err := s.AnswerDAO.FindById(ctx, answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "回答不存在")
		}
		return nil, err
	}

	comment := &models.Comment{
		UserID:     userID,
		AnswerID:   &answerID,
		Content:    req.Content,
		CreateDate: time.Now(),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	return &types.CreateCommentResponse{
		CommentID: comment.ID,
		Redirect:  types.QuestionDetailRoute(answer.QuestionID),
	}, nil
}
