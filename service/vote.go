package service

import (
	"Agora/dao"
	"Agora/pkg/response"
	"Agora/types"
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var _ IVoteService = (*VoteService)(nil)

type IVoteService interface {
	VoteQuestion(ctx context.Context, questionID int64, userID uint64) (*types.VoteResponse, error)
	VoteAnswer(ctx context.Context, answerID int64, userID uint64) (*types.VoteResponse, error)
}

type VoteService struct {
	QuestionDAO      *dao.Question
	AnswerDAO        *dao.Answer
	QuestionVoterDAO *dao.QuestionVoter
	AnswerVoterDAO   *dao.AnswerVoter
}

// VoteQuestion 推荐问题，不能给自己的问题投票，重复投票幂等
func (s *VoteService) VoteQuestion(ctx context.Context, questionID int64, userID uint64) (*types.VoteResponse, error) {
	question, err := s.QuestionDAO.FindById(ctx, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "问题不存在")
		}
		return nil, err
	}
	detailRoute := types.QuestionDetailRoute(questionID)

	if question.UserID == userID {
		return nil, response.NewRedirectError(http.StatusForbidden, "不能推荐自己的问题", detailRoute)
	}

	if err := s.QuestionVoterDAO.Add(ctx, questionID, userID); err != nil {
		return nil, err
	}

	count, err := s.QuestionVoterDAO.CountByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return &types.VoteResponse{NumVoter: count, Redirect: detailRoute}, nil
}

// VoteAnswer 推荐回答
func (s *VoteService) VoteAnswer(ctx context.Context, answerID int64, userID uint64) (*types.VoteResponse, error) {
	answer, err := s.AnswerDAO.FindById(ctx, answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "回答不存在")
		}
		return nil, err
	}
	detailRoute := types.QuestionDetailRoute(answer.QuestionID)

	if answer.UserID == userID {
		return nil, response.NewRedirectError(http.StatusForbidden, "不能推荐自己的回答", detailRoute)
	}

	if err := s.AnswerVoterDAO.Add(ctx, answerID, userID); err != nil {
		return nil, err
	}

	count, err := s.AnswerDAO.CountVoters(ctx, answerID)
	if err != nil {
		return nil, err
	}
	return &types.VoteResponse{NumVoter: count, Redirect: detailRoute}, nil
}
