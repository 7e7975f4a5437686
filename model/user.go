package model

import "time"

type User struct {
	Id             int64     `gorm:"column:id;type:serial;autoIncrement;primaryKey;" json:"id"`
	Username       string    `gorm:"column:username;type:text;not null;uniqueIndex:users_username_key;" json:"username"`
	Email          string    `gorm:"column:email;type:text;not null;uniqueIndex:users_email_key;" json:"email"`
	Password       string    `gorm:"column:password;type:text;not null;" json:"-"`
	Bio            string    `gorm:"column:bio;type:text;default:\"\";" json:"bio"`
	ProfilePicture string    `gorm:"column:profile_picture;type:text;default:\"\";" json:"profilePicture"`
	FavoriteGenres []string  `gorm:"column:favorite_genres;type:text;serializer:json;" json:"favoriteGenres"`
	TopMovies      []int64   `gorm:"column:top_movies;type:text;serializer:json;" json:"topMovies"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at;type:timestamp;not null;" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

//------------------------------------------
//------------------------------------------

type RegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

type LoginRes struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresAt    int64        `json:"expiresAt"`
	User         *UserSummary `json:"user"`
}

type UserSummary struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
}

//------------------------------------------
//------------------------------------------

type UpdateProfileReq struct {
	Bio            string   `json:"bio"`
	FavoriteGenres []string `json:"favoriteGenres"`
	TopMovies      []int64  `json:"topMovies"`
}

type ProfileRes struct {
	Id              int64    `json:"id"`
	Username        string   `json:"username"`
	Bio             string   `json:"bio"`
	ProfilePicture  string   `json:"profilePicture"`
	FavoriteGenres  []string `json:"favoriteGenres"`
	TopMovies       []int64  `json:"topMovies"`
	TopMovieDetails []Movie  `json:"topMovieDetails"`
}
