package repo

import (
	"FileShare/internal/model"
	"context"

	"gorm.io/gorm"
)

// ActivityRepository — контракт журнала действий. Только вставка: чтение
// журнала — административная задача вне пользовательского API.
type ActivityRepository interface {
	Append(ctx context.Context, entry *model.ActivityLog) error
}

type activityRepo struct {
	db *gorm.DB
}

// NewActivityRepository создаёт реализацию репозитория журнала.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Append(ctx context.Context, entry *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
