package app

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingobot/internal/adapter/chat"
	"github.com/eslsoft/lingobot/internal/infrastructure/config"
	"github.com/eslsoft/lingobot/internal/infrastructure/server"
	"github.com/eslsoft/lingobot/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Logger *logrus.Logger
	Server *server.Server
}

// NewRand seeds the shared random source used for item and option selection.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewQuizConfig maps application config onto quiz engine tuning.
func NewQuizConfig(cfg *config.Config) usecase.QuizConfig {
	return usecase.QuizConfig{
		Distractors:  cfg.Quiz.Distractors,
		LessonLength: cfg.Quiz.LessonLength,
	}
}

// NewSurface builds the outbound chat surface from configuration.
func NewSurface(cfg *config.Config, logger *logrus.Logger) *chat.WebhookSurface {
	return chat.NewWebhookSurface(cfg.Chat.OutboundURL, logger)
}
