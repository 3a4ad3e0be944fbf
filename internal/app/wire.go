//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/eslsoft/lingobot/internal/adapter/chat"
	adapterrepo "github.com/eslsoft/lingobot/internal/adapter/repository"
	"github.com/eslsoft/lingobot/internal/infrastructure/config"
	"github.com/eslsoft/lingobot/internal/infrastructure/database"
	"github.com/eslsoft/lingobot/internal/infrastructure/server"
	"github.com/eslsoft/lingobot/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var databaseSet = wire.NewSet(
	database.NewEntClient,
)

var repositorySet = wire.NewSet(
	adapterrepo.NewContentRepository,
	adapterrepo.NewConfusionRepository,
)

var usecaseSet = wire.NewSet(
	NewRand,
	NewQuizConfig,
	usecase.NewSessionStore,
	usecase.NewOptionGenerator,
	usecase.NewConfusionUsecase,
	usecase.NewQuizUsecase,
	usecase.NewLessonUsecase,
)

var chatSet = wire.NewSet(
	NewSurface,
	wire.Bind(new(chat.Surface), new(*chat.WebhookSurface)),
	chat.NewDispatcher,
)

var serverSet = wire.NewSet(
	server.NewLogger,
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		chatSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Server"),
	)
	return nil, nil, nil
}
