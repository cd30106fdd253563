package server

import (
	"Agora/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	Question *handler.Question
	Answer   *handler.Answer
}
