package util

import (
	"cinelog/configs"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type MyJwtClaims struct {
	UserId      int64  `json:"userId"`
	Username    string `json:"username"`
	GeneratedAt int64  `json:"generatedAt"`
	ExpiresAt   int64  `json:"expiresAt"`
	jwt.RegisteredClaims
}

type TokenDetail struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64
}

func CreateTokens(userId int64, username string) (*TokenDetail, error) {
	conf := configs.GetConfigs()
	now := time.Now()

	accessExpire := now.Add(time.Duration(conf.AccessTokenExpireHour) * time.Hour)
	accessClaims := MyJwtClaims{
		UserId:      userId,
		Username:    username,
		GeneratedAt: now.UnixMilli(),
		ExpiresAt:   accessExpire.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessExpire),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(conf.AccessTokenSecret))
	if err != nil {
		return nil, err
	}

	refreshExpire := now.Add(time.Duration(conf.RefreshTokenExpireDay) * 24 * time.Hour)
	refreshClaims := MyJwtClaims{
		UserId:      userId,
		Username:    username,
		GeneratedAt: now.UnixMilli(),
		ExpiresAt:   refreshExpire.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(refreshExpire),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(conf.RefreshTokenSecret))
	if err != nil {
		return nil, err
	}

	return &TokenDetail{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExpire.UnixMilli(),
	}, nil
}

func VerifyToken(tokenString string) (*jwt.Token, *MyJwtClaims, error) {
	claims := MyJwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return []byte(configs.GetConfigs().AccessTokenSecret), nil
	})

	if err != nil {
		return nil, nil, err
	}

	return token, &claims, nil
}

func VerifyRefreshToken(tokenString string) (*jwt.Token, *MyJwtClaims, error) {
	claims := MyJwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return []byte(configs.GetConfigs().RefreshTokenSecret), nil
	})

	if err != nil {
		return nil, nil, err
	}

	return token, &claims, nil
}
