package repository

import (
	"cinelog/model"

	"gorm.io/gorm"
)

type IReviewRepository interface {
	CreateReview(review *model.Review) error
	GetReview(reviewId int64) (*model.Review, error)
	GetAllReviews() ([]model.ReviewWithMovie, error)
	GetReviewsByMovie(movieId int64) ([]model.ReviewWithMovie, error)
	GetReviewsByUser(userId int64) ([]model.ReviewWithMovie, error)
	CreateLike(reviewId int64, userId int64) error
	DeleteLike(reviewId int64, userId int64) error
	CountLikes(reviewId int64) (int64, error)
	CreateComment(comment *model.Comment) error
	GetComments(reviewId int64) ([]model.Comment, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *ReviewRepository) CreateReview(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) GetReview(reviewId int64) (*model.Review, error) {
	var result model.Review
	err := r.db.
		Model(&model.Review{}).
		Where("id = ?", reviewId).
		First(&result).
		Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ReviewRepository) GetAllReviews() ([]model.ReviewWithMovie, error) {
	return r.reviewsWithMovie("")
}

func (r *ReviewRepository) GetReviewsByMovie(movieId int64) ([]model.ReviewWithMovie, error) {
	return r.reviewsWithMovie("reviews.movie_id = ?", movieId)
}

func (r *ReviewRepository) GetReviewsByUser(userId int64) ([]model.ReviewWithMovie, error) {
	return r.reviewsWithMovie("reviews.user_id = ?", userId)
}

func (r *ReviewRepository) reviewsWithMovie(cond string, args ...interface{}) ([]model.ReviewWithMovie, error) {
	result := make([]model.ReviewWithMovie, 0)

	query := r.db.
		Model(&model.Review{}).
		Select("reviews.*, movies.title AS movie_title, movies.thumbnail, movies.logo").
		Joins("JOIN movies ON movies.movie_id = reviews.movie_id").
		Order("reviews.created_at DESC, reviews.id DESC")
	if cond != "" {
		query = query.Where(cond, args...)
	}

	err := query.Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

//------------------------------------------
//------------------------------------------

// CreateLike relies on the (review_id, user_id) primary key, a duplicate
// like surfaces as gorm.ErrDuplicatedKey.
func (r *ReviewRepository) CreateLike(reviewId int64, userId int64) error {
	return r.db.Create(&model.ReviewLike{ReviewId: reviewId, UserId: userId}).Error
}

func (r *ReviewRepository) DeleteLike(reviewId int64, userId int64) error {
	return r.db.
		Where("review_id = ? AND user_id = ?", reviewId, userId).
		Delete(&model.ReviewLike{}).
		Error
}

func (r *ReviewRepository) CountLikes(reviewId int64) (int64, error) {
	var count int64
	err := r.db.
		Model(&model.ReviewLike{}).
		Where("review_id = ?", reviewId).
		Count(&count).
		Error
	return count, err
}

//------------------------------------------
//------------------------------------------

func (r *ReviewRepository) CreateComment(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *ReviewRepository) GetComments(reviewId int64) ([]model.Comment, error) {
	result := make([]model.Comment, 0)
	err := r.db.
		Model(&model.Comment{}).
		Where("review_id = ?", reviewId).
		Order("created_at ASC, id ASC").
		Find(&result).
		Error
	return result, err
}
