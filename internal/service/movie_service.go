package service

import (
	"cinelog/internal/catalog"
	"cinelog/internal/repository"
	"cinelog/model"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type IMovieService interface {
	EnsureMovieCached(movieId int64, seed *model.MovieSeed) (*model.Movie, error)
	GetMovie(movieId int64) (*model.Movie, error)
	GetMovies() ([]model.Movie, error)
	SearchMovies(query string, page int) (*catalog.ListResponse, error)
	TrendingMovies(page int) (*catalog.ListResponse, error)
	UpcomingMovies(page int) (*catalog.ListResponse, error)
}

type MovieService struct {
	movieRepo     repository.IMovieRepository
	catalogClient catalog.IClient
	listingTTL    time.Duration
}

func NewMovieService(movieRepo repository.IMovieRepository, catalogClient catalog.IClient) *MovieService {
	return &MovieService{
		movieRepo:     movieRepo,
		catalogClient: catalogClient,
		listingTTL:    10 * time.Minute,
	}
}

//------------------------------------------
//------------------------------------------

// EnsureMovieCached makes sure the movie has a local cache row. When the
// stored copy is absent it is filled from the seed, or fetched from the
// catalog when no seed is given. A stored copy that drifted from a provided
// seed gets updated in place. Any catalog failure aborts the caller's write.
func (s *MovieService) EnsureMovieCached(movieId int64, seed *model.MovieSeed) (*model.Movie, error) {
	movie, err := s.movieRepo.GetMovie(movieId)
	if err == nil {
		if seed != nil && seed.Title != "" && movieDrifted(movie, seed) {
			movie.Title = seed.Title
			movie.Thumbnail = seed.Thumbnail
			movie.Logo = seed.Logo
			if err = s.movieRepo.UpdateMovie(movieId, movie); err != nil {
				return nil, err
			}
		}
		return movie, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newMovie := &model.Movie{MovieId: movieId}
	if seed != nil && seed.Title != "" {
		newMovie.Title = seed.Title
		newMovie.Thumbnail = seed.Thumbnail
		newMovie.Logo = seed.Logo
	} else {
		detail, err := s.catalogClient.GetMovieDetail(movieId)
		if err != nil {
			return nil, err
		}
		newMovie.Title = detail.Title
		newMovie.Thumbnail = s.catalogClient.PosterUrl(detail.PosterPath)
		newMovie.Logo = s.catalogClient.PosterUrl(detail.LogoPath)
	}

	err = s.movieRepo.CreateMovie(newMovie)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost the insert race, the stored copy wins
		return s.movieRepo.GetMovie(movieId)
	}
	if err != nil {
		return nil, err
	}
	return newMovie, nil
}

func movieDrifted(movie *model.Movie, seed *model.MovieSeed) bool {
	return movie.Title != seed.Title ||
		movie.Thumbnail != seed.Thumbnail ||
		movie.Logo != seed.Logo
}

//------------------------------------------
//------------------------------------------

func (s *MovieService) GetMovie(movieId int64) (*model.Movie, error) {
	return s.movieRepo.GetMovie(movieId)
}

func (s *MovieService) GetMovies() ([]model.Movie, error) {
	return s.movieRepo.GetMovies()
}

//------------------------------------------
//------------------------------------------

func (s *MovieService) SearchMovies(query string, page int) (*catalog.ListResponse, error) {
	return s.catalogClient.SearchMovies(query, page)
}

func (s *MovieService) TrendingMovies(page int) (*catalog.ListResponse, error) {
	return s.cachedListing(fmt.Sprintf("trending:%d", page), func() (*catalog.ListResponse, error) {
		return s.catalogClient.TrendingMovies(page)
	})
}

func (s *MovieService) UpcomingMovies(page int) (*catalog.ListResponse, error) {
	return s.cachedListing(fmt.Sprintf("upcoming:%d", page), func() (*catalog.ListResponse, error) {
		return s.catalogClient.UpcomingMovies(page)
	})
}

func (s *MovieService) cachedListing(key string, fetch func() (*catalog.ListResponse, error)) (*catalog.ListResponse, error) {
	cached, _ := getCatalogListingCache(key)
	if cached != "" {
		var result catalog.ListResponse
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	result, err := fetch()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(result); err == nil {
		setCatalogListingCache(key, string(payload), s.listingTTL)
	}
	return result, nil
}
