package main

import (
	"context"
	"log"
	"net/http"

	_ "streamflix-api/docs" // swagger docs

	"streamflix-api/internal/cache"
	"streamflix-api/internal/config"
	"streamflix-api/internal/db"
	"streamflix-api/internal/handler"
	"streamflix-api/internal/repository"
	"streamflix-api/internal/service"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title StreamFlix API
// @version 1.0
// @description Backend de catálogo de streaming (Mongo, JWT)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	mongo, err := db.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}
	defer mongo.Close(context.Background())
	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)

	redisCache, err := cache.New(cfg.RedisAddr, cfg.RedisPass)
	if err != nil {
		log.Fatalf("[redis] error conectando: %v", err)
	}
	if redisCache == nil {
		log.Println("[redis] REDIS_ADDR vacío, cache deshabilitado")
	}

	// repos
	userRepo := repository.NewUserRepository(mongo)
	profileRepo := repository.NewProfileRepository(mongo)
	movieRepo := repository.NewMovieRepository(mongo)
	progressRepo := repository.NewViewProgressRepository(mongo)

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	profileSvc := service.NewProfileService(profileRepo, userRepo)
	movieSvc := service.NewMovieService(movieRepo, redisCache)
	progressSvc := service.NewProgressService(progressRepo, profileRepo, movieRepo)
	watchlistSvc := service.NewWatchlistService(profileRepo, movieRepo)
	translationSvc := service.NewTranslationService()

	// handlers + router
	r := handler.NewRouter(handler.RouterDeps{
		AuthSvc:      authSvc,
		Auth:         handler.NewAuthHandler(authSvc),
		Profiles:     handler.NewProfileHandler(profileSvc),
		Movies:       handler.NewMovieHandler(movieSvc),
		Views:        handler.NewProgressHandler(progressSvc),
		Watchlist:    handler.NewWatchlistHandler(watchlistSvc),
		Translations: handler.NewTranslationHandler(translationSvc),
		CORSOrigins:  cfg.CORSOrigins,
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
