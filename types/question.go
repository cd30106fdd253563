package types

import (
	"Agora/models"
	"Agora/pkg/paginator"
)

// 列表排序方式
const (
	SortRecommend = "recommend" // 推荐数优先
	SortPopular   = "popular"   // 回答数优先
	SortRecent    = "recent"    // 最新优先
)

// Pagination 分页常量
const (
	DefaultPage      int = 1
	QuestionPageSize int = 25 // 问题列表每页条数
	AnswerPageSize   int = 10 // 回答列表每页条数
)

// QuestionWithCounts 问题行 + 统计列
// num_voter = 问题推荐人数 + 各回答推荐人数(去重)
// num_answer = 回答数 + 问题评论数 + 回答评论数
type QuestionWithCounts struct {
	models.Question `gorm:"embedded"`
	Author          string `gorm:"column:author" json:"author"`
	NumVoter        int64  `gorm:"column:num_voter" json:"num_voter"`
	NumAnswer       int64  `gorm:"column:num_answer" json:"num_answer"`
}

// AnswerWithVotes 回答行 + 推荐人数
type AnswerWithVotes struct {
	models.Answer `gorm:"embedded"`
	Author        string `gorm:"column:author" json:"author"`
	NumVoter      int64  `gorm:"column:num_voter" json:"num_voter"`
}

// ListState 列表页状态，写入会话供详情页"返回列表"使用
type ListState struct {
	Page int    `json:"page"`
	Kw   string `json:"kw"`
	So   string `json:"so"`
}

// ListQuestionsRequest 列表查询参数
type ListQuestionsRequest struct {
	Page int    `form:"page,default=1"`
	Kw   string `form:"kw"`
	So   string `form:"so,default=recent"`
}

// DetailQuestionRequest 详情页查询参数
type DetailQuestionRequest struct {
	Page int    `form:"page,default=1"`
	So   string `form:"so,default=recommend"`
}

type CreateQuestionRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

type ModifyQuestionRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

type QuestionListResponse struct {
	Category  *models.Category                     `json:"category"`
	Questions *paginator.Page[*QuestionWithCounts] `json:"questions"`
	Page      int                                  `json:"page"`
	Kw        string                               `json:"kw"`
	So        string                               `json:"so"`
}

type QuestionDetailResponse struct {
	Question  *QuestionWithCounts               `json:"question"`
	Answers   *paginator.Page[*AnswerWithVotes] `json:"answers"`
	Category  *models.Category                  `json:"category"`
	Page      int                               `json:"page"`
	So        string                            `json:"so"`
	ListState *ListState                        `json:"list_state,omitempty"`
}

type CreateQuestionResponse struct {
	QuestionID int64  `json:"question_id"`
	Redirect   string `json:"redirect"`
}

type ModifyQuestionResponse struct {
	QuestionID int64  `json:"question_id"`
	Redirect   string `json:"redirect"`
}

type DeleteQuestionResponse struct {
	Redirect string `json:"redirect"`
}
