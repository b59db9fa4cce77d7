package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"pronet/internal/config"
	"pronet/internal/dbmongo"
	"pronet/internal/dbmysql"
	"pronet/internal/di"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	log.Println("configuration loaded")

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("failed to initialize MySQL: %v", err)
	}

	mongo, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Fatalf("failed to initialize MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongo.Close(ctx); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()

	router := di.InitializeRouter(cfg, db, mongo)
	log.Println("dependencies wired")

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	log.Printf("pronet server listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
