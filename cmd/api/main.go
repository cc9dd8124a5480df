package main

// @title Places Microservice API
// @version 1.0.0
// @description Шлюз поиска мест: принимает географические поисковые запросы, транслирует их в запросы к Overpass API и Nominatim и приводит сырые элементы к единому формату места.
// @description
// @description Основные возможности:
// @description - Поиск мест по категории или свободному тексту в радиусе от точки
// @description - Детальная карточка места по OSM-идентификатору
// @description - Featured-выдача: ближайшее место по каждой из фиксированных категорий
// @description - Прямое и обратное геокодирование

// @contact.name API Support
// @contact.email support@places-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/places-microservice/docs"
	"github.com/places-microservice/internal/config"
	httpDelivery "github.com/places-microservice/internal/delivery/http"
	"github.com/places-microservice/internal/delivery/http/handler"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/infrastructure/nominatim"
	"github.com/places-microservice/internal/infrastructure/overpass"
	"github.com/places-microservice/internal/pkg/logger"
	"github.com/places-microservice/internal/repository/cache"
	"github.com/places-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("overpass_url", cfg.Overpass.BaseURL),
		zap.String("nominatim_url", cfg.Nominatim.BaseURL),
	)

	// 3. Connect to Redis (optional response cache)
	var cacheRepo repository.CacheRepository
	var redisConn *cache.Redis
	if cfg.Cache.Enabled {
		redisConn, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisConn.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisConn.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		cacheRepo = cache.NewCacheRepository(redisConn)
		log.Info("Search cache enabled", zap.Duration("ttl", cfg.Cache.SearchCacheTTL))
	} else {
		log.Info("Search cache disabled")
	}

	// 4. Initialize provider clients
	geodataRepo := overpass.NewOverpassClient(&cfg.Overpass, log)
	geocodingRepo := nominatim.NewNominatimClient(&cfg.Nominatim, log)

	log.Info("Provider clients initialized")

	// 5. Initialize Use Cases
	placesUC := usecase.NewPlacesUseCase(
		geodataRepo,
		cacheRepo,
		usecase.NewTagNormalizer(),
		log,
		cfg.Cache.SearchCacheTTL,
		cfg.Overpass.QueryTimeout,
	)

	geocodeUC := usecase.NewGeocodeUseCase(geocodingRepo, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	placesHandler := handler.NewPlacesHandler(placesUC, log)
	geocodeHandler := handler.NewGeocodeHandler(geocodeUC, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		placesHandler,
		geocodeHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
