package service

import (
	"cinelog/internal/catalog"
	"cinelog/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecommendationRepo struct {
	lastRec   *model.Recommendation
	lastLimit int
}

func (f *fakeRecommendationRepo) GetForUser(receiverId int64) ([]model.Recommendation, error) {
	return nil, nil
}

func (f *fakeRecommendationRepo) AddWithEviction(rec *model.Recommendation, limit int) error {
	rec.Id = 1
	f.lastRec = rec
	f.lastLimit = limit
	return nil
}

//------------------------------------------
//------------------------------------------

func TestAddRecommendationResolvesMovieFromCatalog(t *testing.T) {
	recRepo := &fakeRecommendationRepo{}
	movieRepo := newFakeMovieRepo()
	cat := &fakeCatalog{detail: &catalog.MovieDetail{
		Id:         550,
		Title:      "Fight Club",
		PosterPath: "/fc.jpg",
	}}
	svc := NewRecommendationService(recRepo, NewMovieService(movieRepo, cat))

	rec, err := svc.AddRecommendation(1, &model.AddRecommendationReq{MovieId: 550, RecommendedTo: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(1), rec.RecommendedBy)
	assert.Equal(t, int64(2), rec.RecommendedTo)
	assert.Equal(t, "Fight Club", rec.Title)
	assert.Equal(t, "https://img.example.com/fc.jpg", rec.Poster)
	assert.Equal(t, 1, cat.detailCalls)
	assert.Equal(t, model.RecommendationWindowSize, recRepo.lastLimit)
}

func TestAddRecommendationReusesCachedMovie(t *testing.T) {
	recRepo := &fakeRecommendationRepo{}
	movieRepo := newFakeMovieRepo()
	movieRepo.movies[550] = model.Movie{MovieId: 550, Title: "Fight Club", Thumbnail: "/cached.jpg"}
	cat := &fakeCatalog{}
	svc := NewRecommendationService(recRepo, NewMovieService(movieRepo, cat))

	rec, err := svc.AddRecommendation(1, &model.AddRecommendationReq{MovieId: 550, RecommendedTo: 2})
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", rec.Title)
	assert.Equal(t, "/cached.jpg", rec.Poster)
	assert.Equal(t, 0, cat.detailCalls)
}
