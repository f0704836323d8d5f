package handlers

import (
	"FileShare/internal/config"
	"FileShare/internal/middleware"
	"FileShare/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	fileService *service.FileService,
	activityService *service.ActivityService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, activityService, logger, config)
	fileHandler := NewFileHandler(fileService, activityService, logger, config)

	// File routes
	r.Get("/", fileHandler.Index)
	r.Post("/upload", fileHandler.Upload)
	r.Get("/download/{filename}", fileHandler.Download)

	// User routes
	r.Get("/login", userHandler.LoginForm)
	r.Post("/login", userHandler.Login)
	r.Get("/logout", userHandler.Logout)
	r.Get("/register", userHandler.RegisterForm)
	r.Post("/register", userHandler.Register)

	return &Handler{Router: r}
}
