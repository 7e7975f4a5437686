package repository

import (
	"cinelog/model"

	"gorm.io/gorm"
)

type IRecommendationRepository interface {
	GetForUser(receiverId int64) ([]model.Recommendation, error)
	AddWithEviction(rec *model.Recommendation, limit int) error
}

type RecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *RecommendationRepository) GetForUser(receiverId int64) ([]model.Recommendation, error) {
	var result []model.Recommendation
	err := r.db.
		Model(&model.Recommendation{}).
		Where("recommended_to = ?", receiverId).
		Order("created_at DESC, id DESC").
		Find(&result).
		Error
	return result, err
}

// AddWithEviction inserts the recommendation and keeps the receiver's window
// at `limit` rows, dropping the oldest first. Count, evict and insert run in
// one transaction so the bound holds under concurrent senders.
func (r *RecommendationRepository) AddWithEviction(rec *model.Recommendation, limit int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var oldestIds []int64
		err := tx.
			Model(&model.Recommendation{}).
			Where("recommended_to = ?", rec.RecommendedTo).
			Order("created_at ASC, id ASC").
			Pluck("id", &oldestIds).
			Error
		if err != nil {
			return err
		}

		if excess := len(oldestIds) - (limit - 1); excess > 0 {
			err = tx.
				Where("id IN ?", oldestIds[:excess]).
				Delete(&model.Recommendation{}).
				Error
			if err != nil {
				return err
			}
		}

		return tx.Create(rec).Error
	})
}
