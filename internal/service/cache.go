package service

import (
	"cinelog/db/redis"
	errorHandler "cinelog/pkg/error"
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	jwtBlacklistCachePrefix   = "jwtKey:"
	catalogListingCachePrefix = "catalog:"
)

//------------------------------------------
//------------------------------------------

func GetJwtBlacklistCache(key string) (string, error) {
	result, err := redis.GetRedis(context.Background(), jwtBlacklistCachePrefix+key)
	return result, err
}

func SetJwtBlacklistCache(key string, value string, duration time.Duration) error {
	err := redis.SetRedis(context.Background(), jwtBlacklistCachePrefix+key, value, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving jwt blacklist: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

//------------------------------------------
//------------------------------------------

// isCacheMiss reports whether the redis error is an ordinary miss
// rather than a failure worth reporting.
func isCacheMiss(err error) bool {
	return errors.Is(err, goredis.Nil)
}

func getCatalogListingCache(key string) (string, error) {
	result, err := redis.GetRedis(context.Background(), catalogListingCachePrefix+key)
	if err != nil {
		if !isCacheMiss(err) {
			errorMessage := fmt.Sprintf("Redis Error on reading catalog listing: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
		return "", nil
	}
	return result, nil
}

func setCatalogListingCache(key string, payload string, duration time.Duration) {
	err := redis.SetRedis(context.Background(), catalogListingCachePrefix+key, payload, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving catalog listing: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}
