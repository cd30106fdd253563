package service

import (
	"Agora/dao"
	"Agora/dao/cache"
	"Agora/models"
	"Agora/pkg/log"
	"Agora/pkg/paginator"
	"Agora/pkg/response"
	"Agora/pkg/snowflake"
	"Agora/types"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IQuestionService = (*QuestionService)(nil)

type IQuestionService interface {
	List(ctx context.Context, categoryName string, req *types.ListQuestionsRequest, sid string) (*types.QuestionListResponse, error)
	Detail(ctx context.Context, questionID int64, req *types.DetailQuestionRequest, ip string, sid string) (*types.QuestionDetailResponse, error)
	Create(ctx context.Context, categoryName string, userID uint64, req *types.CreateQuestionRequest) (*types.CreateQuestionResponse, error)
	Modify(ctx context.Context, questionID int64, userID uint64, isStaff bool, req *types.ModifyQuestionRequest) (*types.ModifyQuestionResponse, error)
	Delete(ctx context.Context, questionID int64, userID uint64, isStaff bool) (*types.DeleteQuestionResponse, error)
}

type QuestionService struct {
	DB          *gorm.DB
	CategoryDAO *dao.Category
	QuestionDAO *dao.Question
	AnswerDAO   *dao.Answer
	CommentDAO  *dao.Comment
	ViewDAO     *dao.QuestionView
	ListState   *cache.ListStateStorage
}

func normalizeSort(so string) string {
	switch so {
	case types.SortRecommend, types.SortPopular, types.SortRecent:
		return so
	default:
		return types.SortRecent
	}
}

// List 板块问题列表：搜索、统计排序、分页
// 副作用：把本次列表参数写进会话，详情页读取后用于"返回列表"
func (s *QuestionService) List(ctx context.Context, categoryName string, req *types.ListQuestionsRequest, sid string) (*types.QuestionListResponse, error) {
	category, err := s.CategoryDAO.FindByName(ctx, categoryName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "板块不存在")
		}
		return nil, err
	}

	so := normalizeSort(req.So)
	total, err := s.QuestionDAO.CountByCategory(ctx, category.ID, req.Kw)
	if err != nil {
		return nil, err
	}

	totalPages := paginator.TotalPages(total, types.QuestionPageSize)
	page := paginator.Clamp(req.Page, totalPages)

	rows, err := s.QuestionDAO.ListByCategory(ctx, category.ID, req.Kw, so,
		paginator.Offset(page, types.QuestionPageSize), types.QuestionPageSize)
	if err != nil {
		return nil, err
	}

	if sid != "" {
		state := &types.ListState{Page: page, Kw: req.Kw, So: so}
		if err := s.ListState.Set(ctx, sid, state); err != nil {
			// 会话状态丢了不影响列表本身
			log.L.Warn("save list state", zap.String("sid", sid), zap.Error(err))
		}
	}

	return &types.QuestionListResponse{
		Category:  category,
		Questions: paginator.New(rows, page, types.QuestionPageSize, total),
		Page:      page,
		Kw:        req.Kw,
		So:        so,
	}, nil
}

// Detail 问题详情：浏览计数、回答排序分页、会话里的列表状态
func (s *QuestionService) Detail(ctx context.Context, questionID int64, req *types.DetailQuestionRequest, ip string, sid string) (*types.QuestionDetailResponse, error) {
	question, err := s.QuestionDAO.GetWithCounts(ctx, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "问题不存在")
		}
		return nil, err
	}

	counted, err := s.ViewDAO.RecordView(ctx, ip, questionID)
	if err != nil {
		return nil, err
	}
	if counted {
		question.ViewCount++
	}

	// recommend 以外的值一律按时间正序
	so := req.So
	if so != types.SortRecommend {
		so = types.SortRecent
	}

	total, err := s.AnswerDAO.CountByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	totalPages := paginator.TotalPages(total, types.AnswerPageSize)
	page := paginator.Clamp(req.Page, totalPages)

	answers, err := s.AnswerDAO.ListByQuestion(ctx, questionID, so,
		paginator.Offset(page, types.AnswerPageSize), types.AnswerPageSize)
	if err != nil {
		return nil, err
	}

	var listState *types.ListState
	if sid != "" {
		listState, err = s.ListState.Get(ctx, sid)
		if err != nil {
			log.L.Warn("load list state", zap.String("sid", sid), zap.Error(err))
			listState = nil
		}
	}

	category, err := s.CategoryDAO.FindById(ctx, question.CategoryID)
	if err != nil {
		return nil, err
	}

	return &types.QuestionDetailResponse{
		Question:  question,
		Answers:   paginator.New(answers, page, types.AnswerPageSize, total),
		Category:  category,
		Page:      page,
		So:        so,
		ListState: listState,
	}, nil
}

// Create 发布问题
func (s *QuestionService) Create(ctx context.Context, categoryName string, userID uint64, req *types.CreateQuestionRequest) (*types.CreateQuestionResponse, error) {
	category, err := s.CategoryDAO.FindByName(ctx, categoryName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "板块不存在")
		}
		return nil, err
	}

	question := &models.Question{
		ID:         snowflake.GenID(),
		CategoryID: category.ID,
		UserID:     userID,
		Subject:    req.Subject,
		Content:    req.Content,
		CreateDate: time.Now(),
	}
	if err := s.QuestionDAO.Create(ctx, question); err != nil {
		return nil, err
	}

	return &types.CreateQuestionResponse{
		QuestionID: question.ID,
		Redirect:   types.QuestionListRoute(category.Name),
	}, nil
}

// Modify 修改问题，作者或管理员可为
func (s *QuestionService) Modify(ctx context.Context, questionID int64, userID uint64, isStaff bool, req *types.ModifyQuestionRequest) (*types.ModifyQuestionResponse, error) {
	question, err := s.QuestionDAO.FindById(ctx, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "问题不存在")
		}
		return nil, err
	}

	if question.UserID != userID && !isStaff {
		return nil, response.NewRedirectError(http.StatusForbidden, "没有修改权限",
			types.QuestionDetailRoute(questionID))
	}

	err = s.QuestionDAO.UpdateFields(ctx, questionID, map[string]any{
		"subject":     req.Subject,
		"content":     req.Content,
		"modify_date": time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &types.ModifyQuestionResponse{
		QuestionID: questionID,
		Redirect:   types.QuestionDetailRoute(questionID),
	}, nil
}

// Delete 删除问题
// 有回答或评论的问题不可删除，无论谁来删；权限校验放在约束之后，跟随列表页提示顺序
func (s *QuestionService) Delete(ctx context.Context, questionID int64, userID uint64, isStaff bool) (*types.DeleteQuestionResponse, error) {
	question, err := s.QuestionDAO.FindById(ctx, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "问题不存在")
		}
		return nil, err
	}
	detailRoute := types.QuestionDetailRoute(questionID)

	answerCount, err := s.AnswerDAO.CountByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if answerCount > 0 {
		return nil, response.NewRedirectError(http.StatusConflict, "已有回答的问题无法删除", detailRoute)
	}

	commentCount, err := s.CommentDAO.CountByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if commentCount > 0 {
		return nil, response.NewRedirectError(http.StatusConflict, "已有评论的问题无法删除", detailRoute)
	}

	if question.UserID != userID && !isStaff {
		return nil, response.NewRedirectError(http.StatusForbidden, "没有删除权限", detailRoute)
	}

	category, err := s.CategoryDAO.FindById(ctx, question.CategoryID)
	if err != nil {
		return nil, err
	}

	// 问题本体连同从属记录一起删
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&models.QuestionVoter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&models.QuestionView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", questionID).Delete(&models.Question{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &types.DeleteQuestionResponse{
		Redirect: types.QuestionListRoute(category.Name),
	}, nil
}
