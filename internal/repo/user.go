package repo

import (
	"FileShare/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository минимальный контракт доступа к User для слоя сервиса.
type UserRepository interface {
	// CreateUser вставляет нового пользователя и возвращает запись с ID.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByLogin ищет пользователя по логину.
	// Если пользователя нет — возвращает gorm.ErrRecordNotFound.
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
