package context

import (
	"Agora/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxIsStaff  = "is_staff"
	CtxSid      = "sid"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				var data interface{}
				if be.Redirect != "" {
					data = gin.H{"redirect": be.Redirect}
				}
				c.JSON(be.Code, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
					Data: data,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// IsStaff 当前请求是否携带管理员身份
func IsStaff(c *gin.Context) bool {
	v, ok := c.Get(CtxIsStaff)
	if !ok {
		return false
	}
	staff, _ := v.(bool)
	return staff
}

// GetSid 获取会话ID，由 middleware.Session 保证存在
func GetSid(c *gin.Context) string {
	return c.GetString(CtxSid)
}
