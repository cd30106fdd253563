//go:build wireinject
// +build wireinject

package main

import (
	"Agora/config"
	"Agora/dao"
	"Agora/dao/cache"
	"Agora/handler"
	"Agora/pkg/client"
	"Agora/pkg/database"
	"Agora/pkg/server"
	"Agora/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Question), "*"),
		wire.Struct(new(handler.Answer), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
