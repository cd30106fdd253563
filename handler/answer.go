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

type Answer struct {
	Config         *config.Config
	AnswerService  service.IAnswerService
	VoteService    service.IVoteService
	CommentService service.ICommentService
}

func (h *Answer) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	r.POST("/v1/question/:id/answers", authorize, context.Wrap(h.Create))
	r.PUT("/v1/answer/:id", authorize, context.Wrap(h.Modify))
	r.DELETE("/v1/answer/:id", authorize, context.Wrap(h.Delete))
	r.POST("/v1/answer/:id/vote", authorize, context.Wrap(h.Vote))
	r.POST("/v1/answer/:id/comments", authorize, context.Wrap(h.CreateComment))
}

func answerID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "无效的回答ID")
	}
	return id, nil
}

// Create 发布回答
func (h *Answer) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	qid, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的问题ID")
	}

	var req types.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	result, err := h.AnswerService.Create(c.Request.Context(), qid, userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Modify 修改回答
func (h *Answer) Modify(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	id, err := answerID(c)
	if err != nil {
		return err
	}

	var req types.ModifyAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	result, err := h.AnswerService.Modify(c.Request.Context(), id, userID, context.IsStaff(c), &req)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Delete 删除回答
func (h *Answer) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	id, err := answerID(c)
	if err != nil {
		return err
	}

	result, err := h.AnswerService.Delete(c.Request.Context(), id, userID, context.IsStaff(c))
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Vote 推荐回答
func (h *Answer) Vote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	id, err := answerID(c)
	if err != nil {
		return err
	}

	result, err := h.VoteService.VoteAnswer(c.Request.Context(), id, userID)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// CreateComment 评论回答
func (h *Answer) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	id, err := answerID(c)
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	result, err := h.CommentService.CreateForAnswer(c.Request.Context(), id, userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}
