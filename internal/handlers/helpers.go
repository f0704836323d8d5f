package handlers

import (
	"FileShare/internal/middleware"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/url"
	"strings"
)

const flashCookieName = "flash"

// setFlash ставит короткоживущую cookie с сообщением для следующей страницы.
// Явная замена флеш-сообщений веб-фреймворка: клиент показывает и забывает.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:   flashCookieName,
		Value:  url.QueryEscape(message),
		Path:   "/",
		MaxAge: 10,
	})
}

// redirectWithFlash ставит флеш-сообщение и отправляет 303 на target.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string) {
	setFlash(w, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// clientIP возвращает адрес клиента: X-Real-IP, первый из X-Forwarded-For
// или host из RemoteAddr.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return xff
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// actorID возвращает указатель на user_id из контекста либо nil для анонима.
func actorID(ctx context.Context) *int64 {
	if uid, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &uid
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
