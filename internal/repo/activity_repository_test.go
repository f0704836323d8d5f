package repo

import (
	"FileShare/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityRepository_Append(t *testing.T) {
	db := newTestDB(t)
	r := NewActivityRepository(db)
	ctx := context.Background()

	// запись от имени пользователя
	uid := int64(7)
	err := r.Append(ctx, &model.ActivityLog{UserID: &uid, Action: "Uploaded file: a.txt", IPAddress: "10.0.0.1"})
	assert.NoError(t, err)

	// анонимная запись — UserID остаётся NULL
	err = r.Append(ctx, &model.ActivityLog{UserID: nil, Action: "Viewed file list", IPAddress: "10.0.0.2"})
	assert.NoError(t, err)

	var entries []model.ActivityLog
	assert.NoError(t, db.Order("id").Find(&entries).Error)
	if assert.Len(t, entries, 2) {
		if assert.NotNil(t, entries[0].UserID) {
			assert.Equal(t, int64(7), *entries[0].UserID)
		}
		assert.Equal(t, "Uploaded file: a.txt", entries[0].Action)
		assert.Equal(t, "10.0.0.1", entries[0].IPAddress)
		assert.False(t, entries[0].CreatedAt.IsZero())

		assert.Nil(t, entries[1].UserID)
		assert.Equal(t, "Viewed file list", entries[1].Action)
	}
}
