package handlers

import (
	"FileShare/internal/config"
	"FileShare/internal/middleware"
	"FileShare/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и выход.
type UserHandler struct {
	UserService     *service.UserService
	ActivityService *service.ActivityService
	Logger          *zap.SugaredLogger
	Config          *config.Config
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, activityService *service.ActivityService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, ActivityService: activityService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// readCredentials принимает и JSON, и обычную HTML-форму.
func readCredentials(r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Login = r.PostFormValue("login")
	req.Password = r.PostFormValue("password")
	return req, nil
}

// LoginForm: HTML не рендерим, только подсказываем ожидаемые поля формы.
func (h *UserHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"action": "/login",
		"method": http.MethodPost,
		"fields": []string{"login", "password"},
	})
}

// Login проверяет учётные данные и ставит сессионную cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := readCredentials(r)
	if err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// одинаковый ответ для неизвестного логина и неверного пароля
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.Logger.Errorw("Login: service error", "login", req.Login, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.ActivityService.Record(r.Context(), &user.ID, service.ActionLogin, clientIP(r))

	redirectWithFlash(w, r, "/", "Login successful")
}

// Logout всегда переводит клиента в анонимы, в каком бы состоянии он ни был.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	uid := actorID(r.Context())

	middleware.ClearLoginCookie(w)

	h.ActivityService.Record(r.Context(), uid, service.ActionLogout, clientIP(r))

	redirectWithFlash(w, r, "/", "Logged out")
}

// RegisterForm: подсказка полей формы регистрации.
func (h *UserHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"action": "/register",
		"method": http.MethodPost,
		"fields": []string{"login", "password"},
	})
}

// Register создаёт пользователя и сразу ставит сессионную cookie (автологин).
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := readCredentials(r)
	if err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLoginTaken):
			http.Error(w, "login already taken", http.StatusConflict)
		case errors.Is(err, service.ErrEmptyCredentials):
			http.Error(w, "login and password are required", http.StatusBadRequest)
		default:
			h.Logger.Errorw("Register: service error", "login", req.Login, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: failed to set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.ActivityService.Record(r.Context(), &user.ID, service.ActionRegister, clientIP(r))

	redirectWithFlash(w, r, "/", "Registration successful")
}
