package repository

import (
	"cinelog/model"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, repo *UserRepository) *model.User {
	t.Helper()
	user := &model.User{
		Id:             1,
		Username:       "MovieBuff",
		Email:          "buff@example.com",
		Password:       "hash",
		FavoriteGenres: []string{"horror"},
		TopMovies:      []int64{550},
	}
	require.NoError(t, repo.CreateUser(user))
	return user
}

//------------------------------------------
//------------------------------------------

func TestGetUserByUsernameCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(newTestDb(t))
	seedUser(t, repo)

	for _, name := range []string{"MovieBuff", "moviebuff", "MOVIEBUFF"} {
		user, err := repo.GetUserByUsername(name)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.Id)
		assert.Equal(t, "MovieBuff", user.Username)
	}

	_, err := repo.GetUserByUsername("nobody")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCreateUserDuplicateUsernameConflicts(t *testing.T) {
	repo := NewUserRepository(newTestDb(t))
	seedUser(t, repo)

	err := repo.CreateUser(&model.User{
		Id:       2,
		Username: "MovieBuff",
		Email:    "other@example.com",
		Password: "hash",
	})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	err = repo.CreateUser(&model.User{
		Id:       3,
		Username: "OtherBuff",
		Email:    "buff@example.com",
		Password: "hash",
	})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

//------------------------------------------
//------------------------------------------

func TestUpdateProfileSelectedColumns(t *testing.T) {
	repo := NewUserRepository(newTestDb(t))
	seedUser(t, repo)

	err := repo.UpdateProfile(1, &model.User{
		Bio:            "longtime horror fan",
		FavoriteGenres: []string{"horror", "sci-fi"},
		TopMovies:      []int64{550, 78},
		ProfilePicture: "/uploads/abc.jpg",
	})
	require.NoError(t, err)

	user, err := repo.GetUserById(1)
	require.NoError(t, err)
	assert.Equal(t, "longtime horror fan", user.Bio)
	assert.Equal(t, []string{"horror", "sci-fi"}, user.FavoriteGenres)
	assert.Equal(t, []int64{550, 78}, user.TopMovies)
	assert.Equal(t, "/uploads/abc.jpg", user.ProfilePicture)

	// columns outside the profile surface stay put
	assert.Equal(t, "MovieBuff", user.Username)
	assert.Equal(t, "buff@example.com", user.Email)
	assert.Equal(t, "hash", user.Password)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	repo := NewUserRepository(newTestDb(t))

	err := repo.UpdateProfile(42, &model.User{Bio: "ghost"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestGetMoviesByIds(t *testing.T) {
	db := newTestDb(t)
	repo := NewUserRepository(db)

	require.NoError(t, db.Create(&model.Movie{MovieId: 550, Title: "Fight Club"}).Error)
	require.NoError(t, db.Create(&model.Movie{MovieId: 78, Title: "Blade Runner"}).Error)
	require.NoError(t, db.Create(&model.Movie{MovieId: 11, Title: "Star Wars"}).Error)

	movies, err := repo.GetMoviesByIds([]int64{550, 78})
	require.NoError(t, err)
	assert.Len(t, movies, 2)
}
