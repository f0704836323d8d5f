package model

import "time"

// ActivityLog — запись журнала действий. Журнал append-only: записи не
// изменяются и не удаляются.
type ActivityLog struct {
	ID     int64  `gorm:"primaryKey"`
	UserID *int64 `gorm:"index"` // nil — анонимное действие

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	Action    string `gorm:"not null"`
	IPAddress string

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
