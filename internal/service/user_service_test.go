package service

import (
	"cinelog/configs"
	"cinelog/model"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users       map[int64]*model.User
	nextId      int64
	lastProfile *model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*model.User{}, nextId: 1}
}

func (f *fakeUserRepo) CreateUser(user *model.User) error {
	for _, existing := range f.users {
		if strings.EqualFold(existing.Username, user.Username) || existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.Id = f.nextId
	f.nextId++
	stored := *user
	f.users[user.Id] = &stored
	return nil
}

func (f *fakeUserRepo) GetUserById(userId int64) (*model.User, error) {
	if user, ok := f.users[userId]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByUsername(username string) (*model.User, error) {
	for _, user := range f.users {
		if strings.EqualFold(user.Username, username) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateProfile(userId int64, user *model.User) error {
	stored, ok := f.users[userId]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Bio = user.Bio
	stored.FavoriteGenres = user.FavoriteGenres
	stored.TopMovies = user.TopMovies
	stored.ProfilePicture = user.ProfilePicture
	f.lastProfile = user
	return nil
}

func (f *fakeUserRepo) GetMoviesByIds(movieIds []int64) ([]model.Movie, error) {
	result := make([]model.Movie, 0, len(movieIds))
	for _, movieId := range movieIds {
		result = append(result, model.Movie{MovieId: movieId, Title: "cached"})
	}
	return result, nil
}

func registerTestUser(t *testing.T, svc *UserService) *model.UserSummary {
	t.Helper()
	summary, err := svc.Register(&model.RegisterReq{
		Username: "MovieBuff",
		Email:    "buff@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	return summary
}

//------------------------------------------
//------------------------------------------

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	summary := registerTestUser(t, svc)
	assert.Equal(t, "MovieBuff", summary.Username)
	assert.NotZero(t, summary.Id)

	stored := repo.users[summary.Id]
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(&model.RegisterReq{
		Username: "MovieBuff",
		Email:    "not-an-email",
		Password: "hunter22",
	})
	assert.True(t, errors.Is(err, ErrInvalidEmail))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	registerTestUser(t, svc)

	_, err := svc.Register(&model.RegisterReq{
		Username: "moviebuff",
		Email:    "other@example.com",
		Password: "hunter22",
	})
	assert.True(t, errors.Is(err, ErrUsernameTaken))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	registerTestUser(t, svc)

	_, err := svc.Register(&model.RegisterReq{
		Username: "OtherBuff",
		Email:    "buff@example.com",
		Password: "hunter22",
	})
	assert.True(t, errors.Is(err, ErrEmailTaken))
}

//------------------------------------------
//------------------------------------------

func TestLoginIssuesTokens(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	summary := registerTestUser(t, svc)

	res, err := svc.Login(&model.LoginReq{Username: "moviebuff", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, summary.Id, res.User.Id)
	assert.Equal(t, "MovieBuff", res.User.Username)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	registerTestUser(t, svc)

	_, err := svc.Login(&model.LoginReq{Username: "MovieBuff", Password: "wrong"})
	assert.True(t, errors.Is(err, ErrBadCredentials))

	// an unknown username gets the same answer as a wrong password
	_, err = svc.Login(&model.LoginReq{Username: "nobody", Password: "hunter22"})
	assert.True(t, errors.Is(err, ErrBadCredentials))
}

func TestRefreshTokens(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "test-refresh-secret")
	configs.LoadEnvVariables()

	svc := NewUserService(newFakeUserRepo())
	summary := registerTestUser(t, svc)

	res, err := svc.Login(&model.LoginReq{Username: "MovieBuff", Password: "hunter22"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(res.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
	assert.Equal(t, summary.Id, refreshed.User.Id)

	// an access token is signed with the other secret and must be rejected
	_, err = svc.RefreshTokens(res.AccessToken)
	assert.True(t, errors.Is(err, ErrInvalidRefreshToken))

	_, err = svc.RefreshTokens("not.a.jwt")
	assert.True(t, errors.Is(err, ErrInvalidRefreshToken))
}

func TestLogoutExpiredTokenIsNoop(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.Logout("some.jwt.token", time.Now().Add(-time.Minute).UnixMilli())
	assert.NoError(t, err)
}

//------------------------------------------
//------------------------------------------

func TestGetProfileResolvesTopMovies(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	summary := registerTestUser(t, svc)

	repo.users[summary.Id].TopMovies = []int64{550, 78}

	profile, err := svc.GetProfile(summary.Id)
	require.NoError(t, err)
	assert.Equal(t, []int64{550, 78}, profile.TopMovies)
	require.Len(t, profile.TopMovieDetails, 2)
	assert.Equal(t, int64(550), profile.TopMovieDetails[0].MovieId)
}

func TestUpdateProfileKeepsOldPicture(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	summary := registerTestUser(t, svc)

	repo.users[summary.Id].ProfilePicture = "/uploads/old.jpg"

	err := svc.UpdateProfile(summary.Id, &model.UpdateProfileReq{Bio: "new bio"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "new bio", repo.lastProfile.Bio)
	assert.Equal(t, "/uploads/old.jpg", repo.lastProfile.ProfilePicture)
	assert.Equal(t, []string{}, repo.lastProfile.FavoriteGenres)
	assert.Equal(t, []int64{}, repo.lastProfile.TopMovies)
}

func TestUpdateProfileRejectsBrokenImage(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.UpdateProfile(1, &model.UpdateProfileReq{}, []byte("definitely not an image"))
	assert.True(t, errors.Is(err, ErrBadImage))
}
