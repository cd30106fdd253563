package middleware

import (
	"net/http"
	"strings"

	"Agora/pkg/context"
	"Agora/pkg/jwt"
	"Agora/pkg/response"
	"Agora/types"

	"github.com/gin-gonic/gin"
)

// Auth 登录校验，未登录的请求统一带着登录入口跳转
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortToLogin(c, "请先登录")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortToLogin(c, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			abortToLogin(c, "登录状态已失效")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUsername, claims.Username)
		c.Set(context.CtxIsStaff, claims.IsStaff)

		c.Next()
	}
}

func abortToLogin(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
		Code: http.StatusUnauthorized,
		Msg:  msg,
		Data: gin.H{"redirect": types.LoginRoute},
	})
}
