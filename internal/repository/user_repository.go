package repository

import (
	"cinelog/model"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserById(userId int64) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	UpdateProfile(userId int64, user *model.User) error
	GetMoviesByIds(movieIds []int64) ([]model.Movie, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) CreateUser(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetUserById(userId int64) (*model.User, error) {
	var result model.User
	err := r.db.
		Model(&model.User{}).
		Where("id = ?", userId).
		First(&result).
		Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) GetUserByUsername(username string) (*model.User, error) {
	var result model.User
	err := r.db.
		Model(&model.User{}).
		Where("LOWER(username) = LOWER(?)", username).
		First(&result).
		Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) UpdateProfile(userId int64, user *model.User) error {
	res := r.db.
		Model(&model.User{}).
		Where("id = ?", userId).
		Select("bio", "favorite_genres", "top_movies", "profile_picture").
		Updates(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) GetMoviesByIds(movieIds []int64) ([]model.Movie, error) {
	var result []model.Movie
	err := r.db.
		Model(&model.Movie{}).
		Where("movie_id IN ?", movieIds).
		Find(&result).
		Error
	return result, err
}
