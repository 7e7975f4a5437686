package repository

import (
	"cinelog/model"

	"gorm.io/gorm"
)

type IMovieRepository interface {
	GetMovie(movieId int64) (*model.Movie, error)
	GetMovies() ([]model.Movie, error)
	CreateMovie(movie *model.Movie) error
	UpdateMovie(movieId int64, movie *model.Movie) error
}

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) GetMovie(movieId int64) (*model.Movie, error) {
	var result model.Movie
	err := r.db.
		Model(&model.Movie{}).
		Where("movie_id = ?", movieId).
		First(&result).
		Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *MovieRepository) GetMovies() ([]model.Movie, error) {
	var result []model.Movie
	err := r.db.
		Model(&model.Movie{}).
		Order("created_at DESC").
		Find(&result).
		Error
	return result, err
}

func (r *MovieRepository) CreateMovie(movie *model.Movie) error {
	return r.db.Create(movie).Error
}

func (r *MovieRepository) UpdateMovie(movieId int64, movie *model.Movie) error {
	return r.db.
		Model(&model.Movie{}).
		Where("movie_id = ?", movieId).
		Select("title", "thumbnail", "logo").
		Updates(movie).
		Error
}
