package types

import "fmt"

// 跳转目标路由，随消息一起返回给前端
const LoginRoute = "/api/v1/auth/login"

func QuestionListRoute(categoryName string) string {
	return fmt.Sprintf("/api/v1/questions/%s", categoryName)
}

func QuestionDetailRoute(questionID int64) string {
	return fmt.Sprintf("/api/v1/question/%d", questionID)
}
