package main

import (
	"FileShare/internal/config"
	"FileShare/internal/handlers"
	"FileShare/internal/middleware"
	"FileShare/internal/repo"
	"FileShare/internal/service"
	"net/http"
	"os"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	if cfg.UsesDefaultAuthSecret() {
		sugar.Warnw("AUTH_SECRET is not set, using the built-in development secret; session cookies are forgeable")
	}

	// каталог обмена создаём заранее, как и исходная версия
	if err := os.MkdirAll(cfg.StorageDir, 0o755); err != nil {
		sugar.Fatalw("failed to create storage dir", "dir", cfg.StorageDir, "error", err)
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	activityRepo := repo.NewActivityRepository(gormDB)

	userService := service.NewUserService(userRepo)
	activityService := service.NewActivityService(activityRepo, sugar)
	fileService := service.NewFileService(cfg.StorageDir, cfg.AllowedExtensionList())

	h := handlers.NewHandler(userService, fileService, activityService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"StorageDir", cfg.StorageDir,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
