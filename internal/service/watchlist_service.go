package service

import (
	"cinelog/internal/repository"
	"cinelog/model"
)

type IWatchlistService interface {
	AddEntry(userId int64, req *model.AddWatchlistReq) (*model.WatchlistEntry, error)
	RemoveEntry(userId int64, movieId int64) error
	SetCurrentlyWatching(userId int64, movieId int64) error
	SetNextUp(userId int64, movieId int64) error
	ListForUser(userId int64) ([]model.WatchlistEntry, error)
}

type WatchlistService struct {
	watchlistRepo repository.IWatchlistRepository
	movieService  IMovieService
}

func NewWatchlistService(watchlistRepo repository.IWatchlistRepository, movieService IMovieService) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		movieService:  movieService,
	}
}

//------------------------------------------
//------------------------------------------

func (s *WatchlistService) AddEntry(userId int64, req *model.AddWatchlistReq) (*model.WatchlistEntry, error) {
	seed := &model.MovieSeed{
		Title:     req.Title,
		Thumbnail: req.Poster,
	}
	movie, err := s.movieService.EnsureMovieCached(req.MovieId, seed)
	if err != nil {
		return nil, err
	}

	entry := &model.WatchlistEntry{
		UserId:  userId,
		MovieId: req.MovieId,
		Title:   movie.Title,
		Poster:  movie.Thumbnail,
	}
	if err = s.watchlistRepo.CreateEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *WatchlistService) RemoveEntry(userId int64, movieId int64) error {
	return s.watchlistRepo.DeleteEntry(userId, movieId)
}

func (s *WatchlistService) SetCurrentlyWatching(userId int64, movieId int64) error {
	return s.watchlistRepo.SetCurrentlyWatching(userId, movieId)
}

func (s *WatchlistService) SetNextUp(userId int64, movieId int64) error {
	return s.watchlistRepo.SetNextUp(userId, movieId)
}

func (s *WatchlistService) ListForUser(userId int64) ([]model.WatchlistEntry, error) {
	return s.watchlistRepo.GetEntries(userId)
}
