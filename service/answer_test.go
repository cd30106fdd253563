package service

import (
	"Agora/dao"
	"Agora/models"
	"Agora/pkg/response"
	"Agora/types"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{
		DB:          db,
		QuestionDAO: dao.NewQuestion(db),
		AnswerDAO:   dao.NewAnswer(db),
		CommentDAO:  dao.NewComment(db),
	}
}

func TestAnswerCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author", false)
	responder := seedUser(t, db, "responder", false)
	free := seedCategory(t, db, "free")
	question := seedQuestion(t, db, free.ID, author.ID, "问题", false, time.Now())

	_, err := svc.Create(ctx, 404404, responder.ID, &types.CreateAnswerRequest{Content: "x"})
	var be *response.BizError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusNotFound, be.Code)

	result, err := svc.Create(ctx, question.ID, responder.ID, &types.CreateAnswerRequest{Content: "回答正文"})
	require.NoError(t, err)
	assert.Equal(t, types.QuestionDetailRoute(question.ID), result.Redirect)

	var stored models.Answer
	require.NoError(t, db.First(&stored, "id = ?", result.AnswerID).Error)
	assert.Equal(t, responder.ID, stored.UserID)
	assert.Equal(t, question.ID, stored.QuestionID)
	assert.Nil(t, stored.ModifyDate)
}

func TestAnswerModify_Authorization(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author", false)
	responder := seedUser(t, db, "responder", false)
	staff := seedUser(t, db, "admin", true)
	free := seedCategory(t, db, "free")
	question := seedQuestion(t, db, free.ID, author.ID, "问题", false, time.Now())
	answer := seedAnswer(t, db, question.ID, responder.ID, "原内容", time.Now())

	_, err := svc.Modify(ctx, answer.ID, author.ID, false, &types.ModifyAnswerRequest{Content: "改"})
	var be *response.BizError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusForbidden, be.Code)
	assert.Equal(t, types.QuestionDetailRoute(question.ID), be.Redirect)

	var unchanged models.Answer
	require.NoError(t, db.First(&unchanged, "id = ?", answer.ID).Error)
	assert.Equal(t, "原内容", unchanged.Content)

	_, err = svc.Modify(ctx, answer.ID, responder.ID, false, &types.ModifyAnswerRequest{Content: "作者改"})
	require.NoError(t, err)
	_, err = svc.Modify(ctx, answer.ID, staff.ID, true, &types.ModifyAnswerRequest{Content: "管理员改"})
	require.NoError(t, err)

	var updated models.Answer
	require.NoError(t, db.First(&updated, "id = ?", answer.ID).Error)
	assert.Equal(t, "管理员改", updated.Content)
	require.NotNil(t, updated.ModifyDate)
}

func TestAnswerDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author", false)
	responder := seedUser(t, db, "responder", false)
	free := seedCategory(t, db, "free")
	question := seedQuestion(t, db, free.ID, author.ID, "问题", false, time.Now())

	// 已有评论的回答不可删除
	commented := seedAnswer(t, db, question.ID, responder.ID, "有评论", time.Now())
	commentAnswer(t, db, commented.ID, author.ID)
	_, err := svc.Delete(ctx, commented.ID, responder.ID, false)
	var be *response.BizError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusConflict, be.Code)

	// 非作者且非管理员
	plain := seedAnswer(t, db, question.ID, responder.ID, "普通", time.Now())
	_, err = svc.Delete(ctx, plain.ID, author.ID, false)
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusForbidden, be.Code)

	// 作者删除成功，投票记录一并清理
	voteAnswer(t, db, plain.ID, author.ID)
	result, err := svc.Delete(ctx, plain.ID, responder.ID, false)
	require.NoError(t, err)
	assert.Equal(t, types.QuestionDetailRoute(question.ID), result.Redirect)

	assert.ErrorIs(t, db.First(&models.Answer{}, "id = ?", plain.ID).Error, gorm.ErrRecordNotFound)
	var voters int64
	require.NoError(t, db.Model(&models.AnswerVoter{}).Where("answer_id = ?", plain.ID).Count(&voters).Error)
	assert.Equal(t, int64(0), voters)
}

func TestCommentCreate(t *testing.T) {
	db := newTestDB(t)
	svc := &CommentService{
		QuestionDAO: dao.NewQuestion(db),
		AnswerDAO:   dao.NewAnswer(db),
		CommentDAO:  dao.NewComment(db),
	}
	ctx := context.Background()

	author := seedUser(t, db, "author", false)
	free := seedCategory(t, db, "free")
	question := seedQuestion(t, db, free.ID, author.ID, "问题", false, time.Now())
	answer := seedAnswer(t, db, question.ID, author.ID, "回答", time.Now())

	_, err := svc.CreateForQuestion(ctx, 404404, author.ID, &types.CreateCommentRequest{Content: "x"})
	var be *response.BizError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusNotFound, be.Code)

	qc, err := svc.CreateForQuestion(ctx, question.ID, author.ID, &types.CreateCommentRequest{Content: "问题评论"})
	require.NoError(t, err)
	var storedQ models.Comment
	require.NoError(t, db.First(&storedQ, "id = ?", qc.CommentID).Error)
	require.NotNil(t, storedQ.QuestionID)
	assert.Equal(t, question.ID, *storedQ.QuestionID)
	assert.Nil(t, storedQ.AnswerID)

	ac, err := svc.CreateForAnswer(ctx, answer.ID, author.ID, &types.CreateCommentRequest{Content: "回答评论"})
	require.NoError(t, err)
	assert.Equal(t, types.QuestionDetailRoute(question.ID), ac.Redirect)
	var storedA models.Comment
	require.NoError(t, db.First(&storedA, "id = ?", ac.CommentID).Error)
	require.NotNil(t, storedA.AnswerID)
	assert.Equal(t, answer.ID, *storedA.AnswerID)
	assert.Nil(t, storedA.QuestionID)
}
