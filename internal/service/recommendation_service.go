package service

import (
	"cinelog/internal/repository"
	"cinelog/model"
)

type IRecommendationService interface {
	AddRecommendation(senderId int64, req *model.AddRecommendationReq) (*model.Recommendation, error)
	GetForUser(receiverId int64) ([]model.Recommendation, error)
}

type RecommendationService struct {
	recommendationRepo repository.IRecommendationRepository
	movieService       IMovieService
}

func NewRecommendationService(
	recommendationRepo repository.IRecommendationRepository,
	movieService IMovieService,
) *RecommendationService {
	return &RecommendationService{
		recommendationRepo: recommendationRepo,
		movieService:       movieService,
	}
}

//------------------------------------------
//------------------------------------------

// AddRecommendation resolves the movie through the cache (fetching the
// catalog on first reference) and inserts it into the receiver's rolling
// window, evicting the oldest entry past the cap.
func (s *RecommendationService) AddRecommendation(senderId int64, req *model.AddRecommendationReq) (*model.Recommendation, error) {
	movie, err := s.movieService.EnsureMovieCached(req.MovieId, nil)
	if err != nil {
		return nil, err
	}

	rec := &model.Recommendation{
		MovieId:       req.MovieId,
		RecommendedBy: senderId,
		RecommendedTo: req.RecommendedTo,
		Title:         movie.Title,
		Poster:        movie.Thumbnail,
	}
	if err = s.recommendationRepo.AddWithEviction(rec, model.RecommendationWindowSize); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecommendationService) GetForUser(receiverId int64) ([]model.Recommendation, error) {
	return s.recommendationRepo.GetForUser(receiverId)
}
