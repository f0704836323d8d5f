package model

import "time"

// Серверная модель пользователя.
type User struct {
	ID    int64  `gorm:"primaryKey"`
	Login string `gorm:"uniqueIndex;not null"`

	// Password хранит bcrypt-хеш, сырой пароль никогда не пишем
	Password string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
