package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                      string
	DbUrl                     string
	AccessTokenSecret         string
	RefreshTokenSecret        string
	AccessTokenExpireHour     int
	RefreshTokenExpireDay     int
	WaitForRedisConnectionSec int
	RedisUrl                  string
	RedisPassword             string
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	CatalogApiKey             string
	CatalogBaseUrl            string
	CatalogImageBaseUrl       string
	ProfileImageDir           string
	ProfileImageMaxWidth      int
	Domain                    string
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	configs.DbUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	configs.RefreshTokenSecret = os.Getenv("REFRESH_TOKEN_SECRET")
	configs.AccessTokenExpireHour, _ = strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_HOUR"))
	if configs.AccessTokenExpireHour == 0 {
		configs.AccessTokenExpireHour = 1
	}
	configs.RefreshTokenExpireDay, _ = strconv.Atoi(os.Getenv("REFRESH_TOKEN_EXPIRE_DAY"))
	if configs.RefreshTokenExpireDay == 0 {
		configs.RefreshTokenExpireDay = 30
	}
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.WaitForRedisConnectionSec, _ = strconv.Atoi(os.Getenv("WAIT_REDIS_CONNECTION_SEC"))
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.CatalogApiKey = os.Getenv("CATALOG_API_KEY")
	configs.CatalogBaseUrl = os.Getenv("CATALOG_BASE_URL")
	if configs.CatalogBaseUrl == "" {
		configs.CatalogBaseUrl = "https://api.themoviedb.org/3"
	}
	configs.CatalogImageBaseUrl = os.Getenv("CATALOG_IMAGE_BASE_URL")
	if configs.CatalogImageBaseUrl == "" {
		configs.CatalogImageBaseUrl = "https://image.tmdb.org/t/p/w500"
	}
	configs.ProfileImageDir = os.Getenv("PROFILE_IMAGE_DIR")
	if configs.ProfileImageDir == "" {
		configs.ProfileImageDir = "./uploads"
	}
	configs.ProfileImageMaxWidth, _ = strconv.Atoi(os.Getenv("PROFILE_IMAGE_MAX_WIDTH"))
	if configs.ProfileImageMaxWidth == 0 {
		configs.ProfileImageMaxWidth = 512
	}
	configs.Domain = os.Getenv("DOMAIN")
}
