package response

// BizError 业务错误
// Redirect 非空时表示该失败不致命，前端应带用户跳回一个安全页面
type BizError struct {
	Code     int
	Msg      string
	Redirect string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// NewRedirectError 携带跳转目标的业务错误（无权限、违反删除约束等）
func NewRedirectError(code int, msg string, redirect string) *BizError {
	return &BizError{
		Code:     code,
		Msg:      msg,
		Redirect: redirect,
	}
}
