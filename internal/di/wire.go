//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"pronet/internal/config"
	"pronet/internal/dbmongo"
	"pronet/internal/feed"
	"pronet/internal/media"
	"pronet/internal/server"
	"pronet/internal/user"
)

// InitializeRouter wires the whole HTTP surface. This is just a declaration,
// wire generates the real body.
func InitializeRouter(cfg *config.Config, db *gorm.DB, mongo *dbmongo.MongoClient) *mux.Router {
	wire.Build(
		ProvideTokenService,
		ProvideMediaStorage,
		ProvideBlobStorage,
		ProvideAggregateCache,
		user.NewUserRepository,
		user.NewUserService,
		user.NewHandler,
		feed.NewPostRepository,
		feed.NewFeedService,
		wire.Bind(new(feed.FeedUsecase), new(*feed.FeedService)),
		feed.NewHandler,
		media.NewHandler,
		server.NewRouter,
	)
	return &mux.Router{} // dummy for compilation
}
