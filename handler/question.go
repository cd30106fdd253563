package handler

import (
	"Agora/config"
	"Agora/middleware"
	"Agora/pkg/context"
	"Agora/pkg/response"
	"Agora/service"
	"Agora/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Question struct {
	Config          *config.Config
	QuestionService service.IQuestionService
	VoteService     service.IVoteService
	CommentService  service.ICommentService
}

func (h *Question) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	r.GET("/v1/questions/:category", context.Wrap(h.List))
	r.POST("/v1/questions/:category", authorize, context.Wrap(h.Create))
	r.GET("/v1/question/:id", context.Wrap(h.Detail))
	r.PUT("/v1/question/:id", authorize, context.Wrap(h.Modify))
	r.DELETE("/v1/question/:id", authorize, context.Wrap(h.Delete))
	r.POST("/v1/question/:id/vote", authorize, context.Wrap(h.Vote))
	r.POST("/v1/question/:id/comments", authorize, context.Wrap(h.CreateComment))
}

func questionID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "无效的问题ID")
	}
	return id, nil
}

// List 板块问题列表
func (h *Question) List(c *gin.Context) error {
	var req types.ListQuestionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	result, err := h.QuestionService.List(c.Request.Context(), c.Param("category"), &req, context.GetSid(c))
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Detail 问题详情，带浏览计数副作用
func (h *Question) Detail(c *gin.Context) error {
	id, err := questionID(c)
	if err != nil {
		return err
	}

	var req types.DetailQuestionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	result, err := h.QuestionService.Detail(c.Request.Context(), id, &req, c.ClientIP(), context.GetSid(c))
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Create 发布问题
func (h *Question) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	result, err := h.QuestionService.Create(c.Request.Context(), c.Param("category"), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Modify 修改问题
func (h *Question) Modify(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	id, err := questionID(c)
	if err != nil {
		return err
	}

	var req types.ModifyQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	result, err := h.QuestionService.Modify(c.Request.Context(), id, userID, context.IsStaff(c), &req)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Delete 删除问题
func (h *Question) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	id, err := questionID(c)
	if err != nil {
		return err
	}

	result, err := h.QuestionService.Delete(c.Request.Context(), id, userID, context.IsStaff(c))
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Vote 推荐问题
func (h *Question) Vote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	id, err := questionID(c)
	if err != nil {
		return err
	}

	result, err := h.VoteService.VoteQuestion(c.Request.Context(), id, userID)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// CreateComment 评论问题
func (h *Question) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	id, err := questionID(c)
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	result, err := h.CommentService.CreateForQuestion(c.Request.Context(), id, userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}
