//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"gojournal/internal/config"
	"gojournal/internal/dailyimage"
	"gojournal/internal/entry"
	"gojournal/internal/identity"
	"gojournal/internal/media"
	socialhandler "gojournal/internal/social/handler"
	"gojournal/internal/social/repository"
	"gojournal/internal/social/service"
)

var infraSet = wire.NewSet(
	ProvideLogger,
	ProvideDatabase,
	ProvideJWTManager,
	ProvideMongo,
	ProvideBlobStore,
	ProvideRedis,
	ProvideLikeCountCache,
)

var identitySet = wire.NewSet(
	identity.NewUserRepository,
	identity.NewUserService,
	identity.NewDirectory,
	identity.NewHandler,
	wire.Bind(new(service.UserLookup), new(*identity.Directory)),
)

var dailyImageSet = wire.NewSet(
	dailyimage.NewImageRepository,
	ProvideWikipediaClient,
	wire.Bind(new(dailyimage.Fetcher), new(*dailyimage.WikipediaClient)),
	dailyimage.NewService,
	ProvideDailyImageHandler,
	media.NewHTTPServer,
)

var entrySet = wire.NewSet(
	entry.NewEntryRepository,
	wire.Bind(new(entry.ImageProvider), new(*dailyimage.Service)),
	entry.NewEntryService,
	entry.NewLookup,
	wire.Bind(new(service.EntryLookup), new(*entry.Lookup)),
	entry.NewHandler,
)

var socialSet = wire.NewSet(
	repository.NewStore,
	ProvideSocialConfig,
	service.NewEngine,
	socialhandler.NewSocialHandler,
)

func InitializeApplication(cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		infraSet,
		identitySet,
		dailyImageSet,
		entrySet,
		socialSet,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
