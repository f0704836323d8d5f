package service

import (
	"FileShare/internal/model"
	"FileShare/internal/repo"
	"context"

	"go.uber.org/zap"
)

// Тексты действий журнала.
const (
	ActionViewList = "Viewed file list"
	ActionLogin    = "Logged in"
	ActionLogout   = "Logged out"
	ActionRegister = "Registered"
)

// ActionUpload текст записи о загрузке файла
func ActionUpload(filename string) string { return "Uploaded file: " + filename }

// ActionDownload текст записи о скачивании файла
func ActionDownload(filename string) string { return "Downloaded file: " + filename }

// ActivityService пишет журнал действий. Запись журнала не должна ломать
// основную операцию: ошибку логируем и глотаем.
type ActivityService struct {
	repo   repo.ActivityRepository
	logger *zap.SugaredLogger
}

func NewActivityService(r repo.ActivityRepository, logger *zap.SugaredLogger) *ActivityService {
	return &ActivityService{repo: r, logger: logger}
}

// Record добавляет одну запись. userID == nil — анонимное действие.
func (s *ActivityService) Record(ctx context.Context, userID *int64, action, ip string) {
	entry := &model.ActivityLog{UserID: userID, Action: action, IPAddress: ip}
	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.Errorw("activity log append failed", "action", action, "error", err)
	}
}
