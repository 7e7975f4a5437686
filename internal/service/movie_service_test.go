package service

import (
	"cinelog/internal/catalog"
	"cinelog/model"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMovieRepo struct {
	movies      map[int64]model.Movie
	createCalls int
	updateCalls int
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: map[int64]model.Movie{}}
}

func (f *fakeMovieRepo) GetMovie(movieId int64) (*model.Movie, error) {
	if movie, ok := f.movies[movieId]; ok {
		return &movie, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMovieRepo) GetMovies() ([]model.Movie, error) {
	result := make([]model.Movie, 0, len(f.movies))
	for _, movie := range f.movies {
		result = append(result, movie)
	}
	return result, nil
}

func (f *fakeMovieRepo) CreateMovie(movie *model.Movie) error {
	f.createCalls++
	if _, ok := f.movies[movie.MovieId]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.movies[movie.MovieId] = *movie
	return nil
}

func (f *fakeMovieRepo) UpdateMovie(movieId int64, movie *model.Movie) error {
	f.updateCalls++
	stored := f.movies[movieId]
	stored.Title = movie.Title
	stored.Thumbnail = movie.Thumbnail
	stored.Logo = movie.Logo
	f.movies[movieId] = stored
	return nil
}

// racingMovieRepo simulates losing the insert race: another writer stored
// the movie between the read and the create.
type racingMovieRepo struct {
	*fakeMovieRepo
}

func (f *racingMovieRepo) CreateMovie(movie *model.Movie) error {
	f.createCalls++
	f.movies[movie.MovieId] = model.Movie{MovieId: movie.MovieId, Title: "winner copy"}
	return gorm.ErrDuplicatedKey
}

//------------------------------------------
//------------------------------------------

type fakeCatalog struct {
	detail      *catalog.MovieDetail
	detailErr   error
	detailCalls int
}

func (f *fakeCatalog) GetMovieDetail(movieId int64) (*catalog.MovieDetail, error) {
	f.detailCalls++
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.detail, nil
}

func (f *fakeCatalog) SearchMovies(query string, page int) (*catalog.ListResponse, error) {
	return &catalog.ListResponse{Page: page}, nil
}

func (f *fakeCatalog) TrendingMovies(page int) (*catalog.ListResponse, error) {
	return &catalog.ListResponse{Page: page}, nil
}

func (f *fakeCatalog) UpcomingMovies(page int) (*catalog.ListResponse, error) {
	return &catalog.ListResponse{Page: page}, nil
}

func (f *fakeCatalog) PosterUrl(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return "https://img.example.com" + posterPath
}

//------------------------------------------
//------------------------------------------

func TestEnsureMovieCachedFromSeed(t *testing.T) {
	repo := newFakeMovieRepo()
	cat := &fakeCatalog{}
	svc := NewMovieService(repo, cat)

	movie, err := svc.EnsureMovieCached(550, &model.MovieSeed{Title: "Fight Club", Thumbnail: "/fc.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, "/fc.jpg", movie.Thumbnail)

	// a seeded insert never reaches the catalog
	assert.Equal(t, 0, cat.detailCalls)
	assert.Equal(t, 1, repo.createCalls)
}

func TestEnsureMovieCachedFetchesCatalogOnce(t *testing.T) {
	repo := newFakeMovieRepo()
	cat := &fakeCatalog{detail: &catalog.MovieDetail{
		Id:         550,
		Title:      "Fight Club",
		PosterPath: "/fc.jpg",
		LogoPath:   "/fc_backdrop.jpg",
	}}
	svc := NewMovieService(repo, cat)

	movie, err := svc.EnsureMovieCached(550, nil)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, "https://img.example.com/fc.jpg", movie.Thumbnail)
	assert.Equal(t, "https://img.example.com/fc_backdrop.jpg", movie.Logo)

	// the second reference is served from the cache
	movie, err = svc.EnsureMovieCached(550, nil)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, 1, cat.detailCalls)
	assert.Equal(t, 1, repo.createCalls)
}

func TestEnsureMovieCachedUpdatesDriftedCopy(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.movies[550] = model.Movie{MovieId: 550, Title: "Figth Club", Thumbnail: "/fc.jpg"}
	svc := NewMovieService(repo, &fakeCatalog{})

	movie, err := svc.EnsureMovieCached(550, &model.MovieSeed{Title: "Fight Club", Thumbnail: "/fc.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, 1, repo.updateCalls)

	// a matching seed leaves the stored copy alone
	_, err = svc.EnsureMovieCached(550, &model.MovieSeed{Title: "Fight Club", Thumbnail: "/fc.jpg"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestEnsureMovieCachedCatalogFailureAborts(t *testing.T) {
	repo := newFakeMovieRepo()
	cat := &fakeCatalog{detailErr: errors.New("catalog returned status 404")}
	svc := NewMovieService(repo, cat)

	_, err := svc.EnsureMovieCached(550, nil)
	require.Error(t, err)
	assert.Equal(t, 0, repo.createCalls)
}

func TestEnsureMovieCachedLostInsertRace(t *testing.T) {
	repo := &racingMovieRepo{newFakeMovieRepo()}
	svc := NewMovieService(repo, &fakeCatalog{})

	movie, err := svc.EnsureMovieCached(550, &model.MovieSeed{Title: "my copy"})
	require.NoError(t, err)

	// the copy that won the race is returned, not the seed
	assert.Equal(t, "winner copy", movie.Title)
}
