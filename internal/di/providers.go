package di

import (
	"pronet/internal/common"
	"pronet/internal/config"
	"pronet/internal/dbmongo"
	"pronet/internal/feed"
)

func ProvideTokenService(cfg *config.Config) *common.TokenService {
	return common.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func ProvideMediaStorage(mongo *dbmongo.MongoClient) *dbmongo.MediaStorage {
	return dbmongo.NewMediaStorage(mongo)
}

func ProvideBlobStorage(storage *dbmongo.MediaStorage) feed.BlobStorage {
	return storage
}

func ProvideAggregateCache(repo feed.PostRepository, cfg *config.Config) *feed.AggregateCache {
	return feed.NewAggregateCache(repo, cfg.Cache.FreshnessWindow)
}
