//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUser,
	NewCategory,
	NewQuestion,
	NewAnswer,
	NewComment,
	NewQuestionView,
	NewQuestionVoter,
	NewAnswerVoter,
)
