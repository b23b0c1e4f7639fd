//go:build wireinject
// +build wireinject

package main

import (
	"pointmax/config"
	"pointmax/dao"
	"pointmax/dao/cache"
	"pointmax/handler"
	"pointmax/pkg/client"
	"pointmax/pkg/database"
	"pointmax/pkg/server"
	"pointmax/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Account), "*"),
		wire.Struct(new(handler.Point), "*"),
		wire.Struct(new(handler.Achievement), "*"),
		wire.Struct(new(handler.Referral), "*"),
		wire.Struct(new(handler.Gacha), "*"),
		wire.Struct(new(handler.Exchange), "*"),
		wire.Struct(new(handler.Daily), "*"),
		wire.Struct(new(handler.Leaderboard), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
	)
	return nil
}
