package repository

import (
	"cinelog/model"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMovieCreateAndGet(t *testing.T) {
	repo := NewMovieRepository(newTestDb(t))

	err := repo.CreateMovie(&model.Movie{MovieId: 550, Title: "Fight Club", Thumbnail: "/fc.jpg"})
	require.NoError(t, err)

	movie, err := repo.GetMovie(550)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, "/fc.jpg", movie.Thumbnail)
}

// The timestamp columns must scan back into time.Time on the sqlite
// test driver, not only on postgres.
func TestMovieTimestampsRoundTrip(t *testing.T) {
	repo := NewMovieRepository(newTestDb(t))

	require.NoError(t, repo.CreateMovie(&model.Movie{MovieId: 550, Title: "Fight Club"}))

	movie, err := repo.GetMovie(550)
	require.NoError(t, err)
	assert.False(t, movie.CreatedAt.IsZero())
	assert.False(t, movie.UpdatedAt.IsZero())
}

func TestMovieNotFound(t *testing.T) {
	repo := NewMovieRepository(newTestDb(t))

	_, err := repo.GetMovie(550)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestMovieDuplicateIdConflicts(t *testing.T) {
	repo := NewMovieRepository(newTestDb(t))

	require.NoError(t, repo.CreateMovie(&model.Movie{MovieId: 550, Title: "Fight Club"}))
	err := repo.CreateMovie(&model.Movie{MovieId: 550, Title: "Fight Club again"})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestMovieUpdateTouchesDisplayFieldsOnly(t *testing.T) {
	repo := NewMovieRepository(newTestDb(t))

	require.NoError(t, repo.CreateMovie(&model.Movie{MovieId: 550, Title: "Fight Clb"}))
	err := repo.UpdateMovie(550, &model.Movie{Title: "Fight Club", Thumbnail: "/fc.jpg", Logo: "/fc_logo.jpg"})
	require.NoError(t, err)

	movie, err := repo.GetMovie(550)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, "/fc.jpg", movie.Thumbnail)
	assert.Equal(t, "/fc_logo.jpg", movie.Logo)
	assert.Equal(t, int64(550), movie.MovieId)
}
