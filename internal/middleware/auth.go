package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "user_id"

const authCookieName = "auth_token"

// tokenTTL время жизни сессионной cookie
const tokenTTL = 24 * time.Hour

// claims полезная нагрузка токена сессии
type claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// SetLoginCookie подписывает токен для userID и ставит cookie auth_token.
// Каждый вход получает собственный идентификатор токена (jti), так что
// токены разных сессий различимы даже у одного пользователя.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(tokenTTL / time.Second),
	})
	return nil
}

// ClearLoginCookie затирает сессионную cookie — выход из системы.
// Работает безусловно: не важно, была ли cookie вообще.
func ClearLoginCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// WithAuth разбирает cookie auth_token и кладёт user_id в контекст запроса.
// Отсутствующая или невалидная cookie не ошибка: запрос идёт дальше анонимом,
// решение «пускать или нет» принимает конкретный хендлер.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(authCookieName); err == nil && c.Value != "" {
				cl := &claims{}
				token, parseErr := jwt.ParseWithClaims(c.Value, cl,
					func(t *jwt.Token) (interface{}, error) {
						return []byte(secret), nil
					},
					jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
				)
				if parseErr == nil && token.Valid {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, cl.UserID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext возвращает user_id, положенный WithAuth.
// Второе значение false — запрос анонимный.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(userIDKey).(int64)
	return uid, ok
}
