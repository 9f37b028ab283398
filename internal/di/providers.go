package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gojournal/internal/cache"
	"gojournal/internal/common"
	"gojournal/internal/config"
	"gojournal/internal/dailyimage"
	"gojournal/internal/dbmongo"
	"gojournal/internal/dbmysql"
	"gojournal/internal/entry"
	"gojournal/internal/identity"
	"gojournal/internal/logger"
	"gojournal/internal/media"
	socialhandler "gojournal/internal/social/handler"
	"gojournal/internal/social/service"
)

// Application is everything the serve command needs.
type Application struct {
	Config   *config.Config
	Log      *zap.Logger
	DB       *gorm.DB
	Tokens   *common.JWTManager
	Identity *identity.Handler
	Images   *dailyimage.Handler
	Entries  *entry.Handler
	Social   *socialhandler.SocialHandler
	Media    *media.HTTPServer
}

func ProvideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return log, func() { _ = log.Sync() }, nil
}

func ProvideDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := dbmysql.Close(db); err != nil {
			log.Warn("closing MySQL", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

func ProvideJWTManager(cfg *config.Config) *common.JWTManager {
	return common.NewJWTManager(cfg.JWT)
}

func ProvideSocialConfig(cfg *config.Config) config.SocialConfig {
	return cfg.Social
}

// ProvideMongo connects only when mirroring is switched on. A nil client
// disables the GridFS mirror.
func ProvideMongo(cfg *config.Config, log *zap.Logger) (*dbmongo.MongoClient, func(), error) {
	if !cfg.MongoDB.Enabled || !cfg.DailyImage.MirrorImages {
		return nil, func() {}, nil
	}
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("connected to MongoDB", zap.String("database", cfg.MongoDB.Database))
	cleanup := func() {
		ctx, cancel := contextWithTimeout(5 * time.Second)
		defer cancel()
		if err := client.Close(ctx); err != nil {
			log.Warn("closing MongoDB", zap.Error(err))
		}
	}
	return client, cleanup, nil
}

func ProvideBlobStore(client *dbmongo.MongoClient) dailyimage.BlobStore {
	if client == nil {
		return nil
	}
	return dbmongo.NewImageStorage(client)
}

// ProvideRedis returns nil when redis is disabled or unreachable; like
// counts then come straight from MySQL.
func ProvideRedis(cfg *config.Config, log *zap.Logger) (*redis.Client, func()) {
	if !cfg.Redis.Enabled {
		return nil, func() {}
	}
	client, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		log.Warn("redis unavailable, like counts are uncached", zap.Error(err))
		return nil, func() {}
	}
	return client, func() { _ = client.Close() }
}

func ProvideLikeCountCache(client *redis.Client, cfg *config.Config, log *zap.Logger) service.LikeCountCache {
	if client == nil {
		return service.NoopLikeCountCache{}
	}
	ttl := time.Duration(cfg.Redis.LikeCountTTL) * time.Second
	return cache.NewLikeCountStorage(client, ttl, log)
}

func ProvideWikipediaClient(cfg *config.Config) *dailyimage.WikipediaClient {
	return dailyimage.NewWikipediaClient(cfg.DailyImage)
}

func ProvideDailyImageHandler(svc *dailyimage.Service, cfg *config.Config, log *zap.Logger) *dailyimage.Handler {
	return dailyimage.NewHandler(svc, cfg.Server.MediaBaseURL, log)
}
