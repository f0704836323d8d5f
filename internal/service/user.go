package service

import (
	"FileShare/internal/model"
	"FileShare/internal/repo"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrLoginTaken логин уже занят другим пользователем
	ErrLoginTaken = errors.New("login already taken")

	// ErrInvalidCredentials неверная пара логин/пароль. Наружу не различаем
	// «нет такого пользователя» и «неверный пароль»
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmptyCredentials пустой логин или пароль при регистрации
	ErrEmptyCredentials = errors.New("login and password must not be empty")
)

// dummyHash — заранее посчитанный bcrypt-хеш. Сравнение с ним при неизвестном
// логине выравнивает время ответа с веткой «пароль не подошёл».
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService инкапсулирует регистрацию и проверку учётных данных.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт нового пользователя с bcrypt-хешем пароля.
// Сессионную cookie сервис не ставит — это забота хендлера.
func (s *UserService) Register(ctx context.Context, login, password string) (*model.User, error) {
	if login == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	existing, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Гонку check-then-create страхует уникальный индекс по login:
	// вторая вставка упадёт на уровне БД
	user, err := s.repo.CreateUser(ctx, &model.User{Login: login, Password: string(hash)})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login проверяет учётные данные и возвращает пользователя.
func (s *UserService) Login(ctx context.Context, login, password string) (*model.User, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil || user == nil {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
