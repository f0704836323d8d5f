package handlers_test

import (
	"FileShare/internal/config"
	"FileShare/internal/handlers"
	"FileShare/internal/middleware"
	"FileShare/internal/model"
	"FileShare/internal/repo"
	"FileShare/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockActivityRepo struct{ mock.Mock }

func (m *mockActivityRepo) Append(ctx context.Context, entry *model.ActivityLog) error {
	return m.Called(ctx, entry).Error(0)
}

var _ repo.ActivityRepository = (*mockActivityRepo)(nil)

// --- Helpers ---

// newTestRouter собирает роутер поверх моков репозиториев и временного
// каталога обмена. FileService настоящий: файловые эффекты проверяем на диске.
func newTestRouter(t *testing.T, ur repo.UserRepository, ar repo.ActivityRepository) (http.Handler, string) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", UploadMaxSizeMB: 1}
	logger := zap.NewNop().Sugar()
	dir := t.TempDir()

	userSvc := service.NewUserService(ur)
	activitySvc := service.NewActivityService(ar, logger)
	fileSvc := service.NewFileService(dir, []string{".txt"})

	h := handlers.NewHandler(userSvc, fileSvc, activitySvc, logger, cfg)
	return h.Router, dir
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// getFlash достаёт расшифрованное флеш-сообщение из ответа
func getFlash(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == "flash" {
			msg, err := url.QueryUnescape(c.Value)
			if err != nil {
				t.Fatalf("flash cookie is not url-escaped: %v", err)
			}
			return msg
		}
	}
	return ""
}

// hasAuthCookie проверяет наличие непустой сессионной cookie в ответе
func hasAuthCookie(rr *httptest.ResponseRecorder) bool {
	for _, c := range rr.Result().Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return true
		}
	}
	return false
}

// expectActivity ожидает ровно одну запись журнала с данным актором и действием
func expectActivity(ar *mockActivityRepo, userID *int64, action string) {
	ar.On("Append", mock.Anything, mock.MatchedBy(func(e *model.ActivityLog) bool {
		if e.Action != action {
			return false
		}
		if userID == nil {
			return e.UserID == nil
		}
		return e.UserID != nil && *e.UserID == *userID
	})).Return(nil).Once()
}
