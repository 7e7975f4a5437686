package service

import (
	"cinelog/internal/repository"
	"cinelog/model"
)

type IReviewService interface {
	CreateReview(userId int64, req *model.CreateReviewReq) (*model.Review, error)
	GetAllReviews() ([]model.ReviewWithMovie, error)
	GetReviewsByMovie(movieId int64) ([]model.ReviewWithMovie, error)
	GetReviewsByUser(userId int64) ([]model.ReviewWithMovie, error)
	LikeReview(reviewId int64, userId int64) error
	UnlikeReview(reviewId int64, userId int64) error
	GetLikesCount(reviewId int64) (int64, error)
	AddComment(reviewId int64, userId int64, content string) (*model.Comment, error)
	GetComments(reviewId int64) ([]model.Comment, error)
}

type ReviewService struct {
	reviewRepo   repository.IReviewRepository
	movieService IMovieService
}

func NewReviewService(reviewRepo repository.IReviewRepository, movieService IMovieService) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

func (s *ReviewService) CreateReview(userId int64, req *model.CreateReviewReq) (*model.Review, error) {
	seed := &model.MovieSeed{
		Title:     req.MovieTitle,
		Thumbnail: req.Thumbnail,
		Logo:      req.Logo,
	}
	if _, err := s.movieService.EnsureMovieCached(req.MovieId, seed); err != nil {
		return nil, err
	}

	review := &model.Review{
		UserId:         userId,
		MovieId:        req.MovieId,
		Content:        req.Content,
		Recommendation: req.Recommendation,
		Rating:         req.Rating,
	}
	if err := s.reviewRepo.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) GetAllReviews() ([]model.ReviewWithMovie, error) {
	return s.reviewRepo.GetAllReviews()
}

func (s *ReviewService) GetReviewsByMovie(movieId int64) ([]model.ReviewWithMovie, error) {
	return s.reviewRepo.GetReviewsByMovie(movieId)
}

func (s *ReviewService) GetReviewsByUser(userId int64) ([]model.ReviewWithMovie, error) {
	return s.reviewRepo.GetReviewsByUser(userId)
}

//------------------------------------------
//------------------------------------------

// LikeReview inserts the like row, a duplicate surfaces as
// gorm.ErrDuplicatedKey and a missing review as gorm.ErrRecordNotFound.
func (s *ReviewService) LikeReview(reviewId int64, userId int64) error {
	if _, err := s.reviewRepo.GetReview(reviewId); err != nil {
		return err
	}
	return s.reviewRepo.CreateLike(reviewId, userId)
}

func (s *ReviewService) UnlikeReview(reviewId int64, userId int64) error {
	return s.reviewRepo.DeleteLike(reviewId, userId)
}

func (s *ReviewService) GetLikesCount(reviewId int64) (int64, error) {
	return s.reviewRepo.CountLikes(reviewId)
}

//------------------------------------------
//------------------------------------------

func (s *ReviewService) AddComment(reviewId int64, userId int64, content string) (*model.Comment, error) {
	if _, err := s.reviewRepo.GetReview(reviewId); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ReviewId: reviewId,
		UserId:   userId,
		Content:  content,
	}
	if err := s.reviewRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *ReviewService) GetComments(reviewId int64) ([]model.Comment, error) {
	return s.reviewRepo.GetComments(reviewId)
}
