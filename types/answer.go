package types

type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

type ModifyAnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateAnswerResponse struct {
	AnswerID int64  `json:"answer_id"`
	Redirect string `json:"redirect"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateCommentResponse struct {
	CommentID uint64 `json:"comment_id"`
	Redirect  string `json:"redirect"`
}

type VoteResponse struct {
	NumVoter int64  `json:"num_voter"`
	Redirect string `json:"redirect"`
}
