package repository

import (
	"cinelog/model"

	"gorm.io/gorm"
)

type IWatchlistRepository interface {
	GetEntries(userId int64) ([]model.WatchlistEntry, error)
	CreateEntry(entry *model.WatchlistEntry) error
	DeleteEntry(userId int64, movieId int64) error
	SetCurrentlyWatching(userId int64, movieId int64) error
	SetNextUp(userId int64, movieId int64) error
}

type WatchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *WatchlistRepository) GetEntries(userId int64) ([]model.WatchlistEntry, error) {
	var result []model.WatchlistEntry
	err := r.db.
		Model(&model.WatchlistEntry{}).
		Where("user_id = ?", userId).
		Order("position ASC, id ASC").
		Find(&result).
		Error
	return result, err
}

// CreateEntry appends the entry at the end of the user's list.
func (r *WatchlistRepository) CreateEntry(entry *model.WatchlistEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var maxPosition int
		err := tx.
			Model(&model.WatchlistEntry{}).
			Where("user_id = ?", entry.UserId).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPosition).
			Error
		if err != nil {
			return err
		}

		entry.Position = maxPosition + 1
		return tx.Create(entry).Error
	})
}

// DeleteEntry is idempotent, removing an absent entry is a no-op.
func (r *WatchlistRepository) DeleteEntry(userId int64, movieId int64) error {
	return r.db.
		Where("user_id = ? AND movie_id = ?", userId, movieId).
		Delete(&model.WatchlistEntry{}).
		Error
}

// SetCurrentlyWatching promotes the entry into slot 1. The clear, set and
// shift statements run in a single transaction so concurrent promotions for
// the same user cannot leave the flag half-applied.
func (r *WatchlistRepository) SetCurrentlyWatching(userId int64, movieId int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&model.WatchlistEntry{}).
			Where("user_id = ?", userId).
			Update("currently_watching", false).
			Error
		if err != nil {
			return err
		}

		res := tx.
			Model(&model.WatchlistEntry{}).
			Where("user_id = ? AND movie_id = ?", userId, movieId).
			Updates(map[string]interface{}{
				"currently_watching": true,
				"position":           1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.
			Model(&model.WatchlistEntry{}).
			Where("user_id = ? AND movie_id <> ?", userId, movieId).
			Update("position", gorm.Expr("position + 1")).
			Error
	})
}

// SetNextUp promotes the entry into slot 2. Entries below slot 2 keep their
// position so the "currently watching" slot is preserved.
func (r *WatchlistRepository) SetNextUp(userId int64, movieId int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&model.WatchlistEntry{}).
			Where("user_id = ?", userId).
			Update("next_up", false).
			Error
		if err != nil {
			return err
		}

		res := tx.
			Model(&model.WatchlistEntry{}).
			Where("user_id = ? AND movie_id = ?", userId, movieId).
			Updates(map[string]interface{}{
				"next_up":  true,
				"position": 2,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.
			Model(&model.WatchlistEntry{}).
			Where("user_id = ? AND movie_id <> ? AND position >= 2", userId, movieId).
			Update("position", gorm.Expr("position + 1")).
			Error
	})
}
