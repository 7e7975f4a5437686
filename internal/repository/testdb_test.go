package repository

import (
	"cinelog/model"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDb opens an in-memory sqlite database with the same error
// translation the postgres connection uses, so constraint violations
// surface as gorm.ErrDuplicatedKey here too.
func newTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDb, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDb.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Review{},
		&model.ReviewLike{},
		&model.Comment{},
		&model.WatchlistEntry{},
		&model.Recommendation{},
	)
	require.NoError(t, err)

	return db
}
