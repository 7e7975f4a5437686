package service

import (
	"bytes"
	"cinelog/configs"
	"cinelog/internal/repository"
	"cinelog/model"
	"cinelog/util"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/badoux/checkmail"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrBadCredentials      = errors.New("username and password do not match")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrBadImage            = errors.New("cannot decode profile image")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrEmailTaken          = errors.New("email already exists")
)

type IUserService interface {
	Register(req *model.RegisterReq) (*model.UserSummary, error)
	Login(req *model.LoginReq) (*model.LoginRes, error)
	RefreshTokens(refreshToken string) (*model.LoginRes, error)
	Logout(token string, expiresAt int64) error
	GetProfile(userId int64) (*model.ProfileRes, error)
	UpdateProfile(userId int64, req *model.UpdateProfileReq, picture []byte) error
	GetUserByUsername(username string) (*model.ProfileRes, error)
}

type UserService struct {
	userRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *UserService) Register(req *model.RegisterReq) (*model.UserSummary, error) {
	if err := checkmail.ValidateFormat(req.Email); err != nil {
		return nil, ErrInvalidEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		Password:       string(hash),
		FavoriteGenres: []string{},
		TopMovies:      []int64{},
	}
	if err = s.userRepo.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// the schema carries two unique constraints, look up which one fired
			if _, lookupErr := s.userRepo.GetUserByUsername(req.Username); lookupErr == nil {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &model.UserSummary{Id: user.Id, Username: user.Username}, nil
}

func (s *UserService) Login(req *model.LoginReq) (*model.LoginRes, error) {
	user, err := s.userRepo.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrBadCredentials
	}

	tokens, err := util.CreateTokens(user.Id, user.Username)
	if err != nil {
		return nil, err
	}

	return &model.LoginRes{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt,
		User:         &model.UserSummary{Id: user.Id, Username: user.Username},
	}, nil
}

// RefreshTokens exchanges a valid refresh token for a fresh token pair.
func (s *UserService) RefreshTokens(refreshToken string) (*model.LoginRes, error) {
	_, claims, err := util.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetUserById(claims.UserId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	tokens, err := util.CreateTokens(user.Id, user.Username)
	if err != nil {
		return nil, err
	}

	return &model.LoginRes{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt,
		User:         &model.UserSummary{Id: user.Id, Username: user.Username},
	}, nil
}

// Logout blacklists the presented token until it would expire anyway.
func (s *UserService) Logout(token string, expiresAt int64) error {
	remaining := time.Until(time.UnixMilli(expiresAt))
	if remaining <= 0 {
		return nil
	}
	return SetJwtBlacklistCache(token, "logout", remaining)
}

//------------------------------------------
//------------------------------------------

func (s *UserService) GetProfile(userId int64) (*model.ProfileRes, error) {
	user, err := s.userRepo.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	return s.buildProfile(user)
}

func (s *UserService) GetUserByUsername(username string) (*model.ProfileRes, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.buildProfile(user)
}

func (s *UserService) buildProfile(user *model.User) (*model.ProfileRes, error) {
	details := make([]model.Movie, 0)
	if len(user.TopMovies) > 0 {
		var err error
		details, err = s.userRepo.GetMoviesByIds(user.TopMovies)
		if err != nil {
			return nil, err
		}
	}

	return &model.ProfileRes{
		Id:              user.Id,
		Username:        user.Username,
		Bio:             user.Bio,
		ProfilePicture:  user.ProfilePicture,
		FavoriteGenres:  user.FavoriteGenres,
		TopMovies:       user.TopMovies,
		TopMovieDetails: details,
	}, nil
}

func (s *UserService) UpdateProfile(userId int64, req *model.UpdateProfileReq, picture []byte) error {
	update := &model.User{
		Bio:            req.Bio,
		FavoriteGenres: req.FavoriteGenres,
		TopMovies:      req.TopMovies,
	}
	if update.FavoriteGenres == nil {
		update.FavoriteGenres = []string{}
	}
	if update.TopMovies == nil {
		update.TopMovies = []int64{}
	}

	if len(picture) > 0 {
		path, err := s.saveProfilePicture(picture)
		if err != nil {
			return err
		}
		update.ProfilePicture = path
	} else {
		user, err := s.userRepo.GetUserById(userId)
		if err != nil {
			return err
		}
		update.ProfilePicture = user.ProfilePicture
	}

	return s.userRepo.UpdateProfile(userId, update)
}

func (s *UserService) saveProfilePicture(picture []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(picture))
	if err != nil {
		return "", ErrBadImage
	}

	maxWidth := configs.GetConfigs().ProfileImageMaxWidth
	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	dir := configs.GetConfigs().ProfileImageDir
	if err = os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s.jpg", uuid.NewString())
	fullPath := filepath.Join(dir, filename)
	if err = imaging.Save(img, fullPath, imaging.JPEGQuality(85)); err != nil {
		return "", err
	}

	return "/uploads/" + filename, nil
}
