package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/recipehub/recipe-platform/internal/api"
	"github.com/recipehub/recipe-platform/internal/infrastructure/config"
	"github.com/recipehub/recipe-platform/internal/infrastructure/memory"
	"github.com/recipehub/recipe-platform/pkg/logger"
)

// @title        Recipe Platform API
// @version      1.0
// @description  Recipe sharing platform with role-based access for admins, contributors, and explorers.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	repos := api.Repositories{
		Users:     memory.NewUserRepository(),
		Recipes:   memory.NewRecipeRepository(),
		Reviews:   memory.NewReviewRepository(),
		Favorites: memory.NewFavoriteRepository(),
		Activity:  memory.NewActivityRepository(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SeedDemoData {
		memory.Seed(ctx, repos.Users, repos.Recipes)
		log.Info().Msg("demo fixture loaded")
	}

	e := api.NewRouter(repos, cfg.JWTSecret, cfg.TokenTTL, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
