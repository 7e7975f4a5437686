package repository

import (
	"cinelog/model"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedWatchlist(t *testing.T, repo *WatchlistRepository, userId int64, movieIds ...int64) {
	t.Helper()
	for i, movieId := range movieIds {
		err := repo.CreateEntry(&model.WatchlistEntry{
			Id:      userId*100 + int64(i) + 1,
			UserId:  userId,
			MovieId: movieId,
			Title:   fmt.Sprintf("movie %d", movieId),
		})
		require.NoError(t, err)
	}
}

func entriesByMovie(t *testing.T, repo *WatchlistRepository, userId int64) map[int64]model.WatchlistEntry {
	t.Helper()
	entries, err := repo.GetEntries(userId)
	require.NoError(t, err)

	result := map[int64]model.WatchlistEntry{}
	for _, entry := range entries {
		result[entry.MovieId] = entry
	}
	return result
}

//------------------------------------------
//------------------------------------------

func TestWatchlistCreateEntryAppendsPositions(t *testing.T) {
	repo := NewWatchlistRepository(newTestDb(t))
	seedWatchlist(t, repo, 1, 10, 20, 30)

	entries, err := repo.GetEntries(1)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, int64(10), entries[0].MovieId)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, int64(20), entries[1].MovieId)
	assert.Equal(t, 2, entries[1].Position)
	assert.Equal(t, int64(30), entries[2].MovieId)
	assert.Equal(t, 3, entries[2].Position)
}

func TestWatchlistDuplicateEntryConflicts(t *testing.T) {
	repo := NewWatchlistRepository(newTestDb(t))
	seedWatchlist(t, repo, 1, 10)

	err := repo.CreateEntry(&model.WatchlistEntry{
		Id:      999,
		UserId:  1,
		MovieId: 10,
		Title:   "movie 10 again",
	})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	// the same movie on another user's list is fine
	err = repo.CreateEntry(&model.WatchlistEntry{
		Id:      1000,
		UserId:  2,
		MovieId: 10,
		Title:   "movie 10",
	})
	assert.NoError(t, err)
}

func TestWatchlistDeleteEntryIsIdempotent(t *testing.T) {
	repo := NewWatchlistRepository(newTestDb(t))
	seedWatchlist(t, repo, 1, 10, 20)

	require.NoError(t, repo.DeleteEntry(1, 10))
	require.NoError(t, repo.DeleteEntry(1, 10))

	entries, err := repo.GetEntries(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(20), entries[0].MovieId)
}

//------------------------------------------
//------------------------------------------

func TestSetCurrentlyWatchingMovesEntryToFront(t *testing.T) {
	repo := NewWatchlistRepository(newTestDb(t))
	seedWatchlist(t, repo, 1, 10, 20, 30, 40)

	require.NoError(t, repo.SetCurrentlyWatching(1, 30))

	byMovie := entriesByMovie(t, repo, 1)
	assert.True(t, byMovie[30].CurrentlyWatching)
	assert.Equal(t, 1, byMovie[30].Position)
	assert.Equal(t, 2, byMovie[10].Position)
	assert.Equal(t, 3, byMovie[20].Position)
	assert.Equal(t, 5, byMovie[40].Position)

	entries, err := repo.GetEntries(1)
	require.NoError(t, err)
	assert.Equal(t, int64(30), entries[0].MovieId)
}

func TestSetCurrentlyWatchingIsExclusive(t *testing.T) {
	repo := NewWatchlistRepository(newTestDb(t))
	seedWatchlist(t, repo, 1, 10, 20, 30)

	require.NoError(t, repo.SetCurrentlyWatching(1, 10))
	require.NoError(t, repo.SetCurrentlyWatching(1, 20))

	flagged := 0
	for _, entry := range entriesByMovie(t, repo, 1) {
		if entry.CurrentlyWatching {
			flagged++
			assert.Equal(t, int64(20), entry.MovieId)
		}
	}
	assert.Equal(t, 1, flagged)
}

func TestSetNextUpKeepsCurrentlyWatchingSlot(t *testing.T) {
	repo := NewWatchlistRepository(newTestDb(t))
	seedWatchlist(t, repo, 1, 10, 20, 30, 40)

	require.NoError(t, repo.SetCurrentlyWatching(1, 30))
	require.NoError(t, repo.SetNextUp(1, 40))

	byMovie := entriesByMovie(t, repo, 1)
	assert.True(t, byMovie[30].CurrentlyWatching)
	assert.Equal(t, 1, byMovie[30].Position)
	assert.True(t, byMovie[40].NextUp)
	assert.Equal(t, 2, byMovie[40].Position)
	assert.False(t, byMovie[30].NextUp)

	// the former occupants of the middle shifted down, slot 1 untouched
	assert.Equal(t, 3, byMovie[10].Position)
	assert.Equal(t, 4, byMovie[20].Position)
}

func TestSetNextUpIsExclusive(t *testing.T) {
	repo := NewWatchlistRepository(newTestDb(t))
	seedWatchlist(t, repo, 1, 10, 20, 30)

	require.NoError(t, repo.SetNextUp(1, 10))
	require.NoError(t, repo.SetNextUp(1, 30))

	flagged := 0
	for _, entry := range entriesByMovie(t, repo, 1) {
		if entry.NextUp {
			flagged++
			assert.Equal(t, int64(30), entry.MovieId)
		}
	}
	assert.Equal(t, 1, flagged)
}

func TestSlotPromotionUnknownMovie(t *testing.T) {
	repo := NewWatchlistRepository(newTestDb(t))
	seedWatchlist(t, repo, 1, 10)

	err := repo.SetCurrentlyWatching(1, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = repo.SetNextUp(1, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// the failed promotion must not have cleared the existing flags
	require.NoError(t, repo.SetCurrentlyWatching(1, 10))
	err = repo.SetNextUp(1, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	byMovie := entriesByMovie(t, repo, 1)
	assert.True(t, byMovie[10].CurrentlyWatching)
}

func TestSlotPromotionScopedToUser(t *testing.T) {
	repo := NewWatchlistRepository(newTestDb(t))
	seedWatchlist(t, repo, 1, 10, 20)
	seedWatchlist(t, repo, 2, 10, 20)

	require.NoError(t, repo.SetCurrentlyWatching(1, 20))

	other := entriesByMovie(t, repo, 2)
	assert.False(t, other[10].CurrentlyWatching)
	assert.False(t, other[20].CurrentlyWatching)
	assert.Equal(t, 1, other[10].Position)
	assert.Equal(t, 2, other[20].Position)
}
