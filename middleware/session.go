package middleware

import (
	"Agora/pkg/context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sidCookie = "sid"

// 会话 cookie 保存时长(秒)，与 redis 里列表状态的 TTL 对齐
const sidMaxAge = 14 * 24 * 60 * 60

// Session 保证每个请求都有一个会话ID
// 匿名用户也有会话，列表状态按会话而不是按用户保存
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sidCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sidCookie, sid, sidMaxAge, "/", "", false, true)
		}
		c.Set(context.CtxSid, sid)
		c.Next()
	}
}
