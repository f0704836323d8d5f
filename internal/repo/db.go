package repo

import (
	"FileShare/internal/model"
	"strings"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД и накатывает автомиграции.
// Postgres выбирается по виду DSN; любая другая строка трактуется как путь
// к файлу SQLite (драйвер modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.HasPrefix(dsn, "host="):
		dial = gormpostgres.Open(dsn)
	default:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.ActivityLog{}); err != nil {
		return nil, err
	}

	return db, nil
}
