package main

import (
	"cinelog/api"
	"cinelog/configs"
	"cinelog/db"
	"cinelog/db/redis"
	"cinelog/internal/catalog"
	"cinelog/internal/handler"
	"cinelog/internal/repository"
	"cinelog/internal/service"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						CineLog
// @version					1.0
// @description				Movie review and social tracking service.
// @termsOfService				http://swagger.io/terms/
// @contact.name				API Support
// @contact.url				http://www.swagger.io/support
// @contact.email				support@swagger.io
// @license.name				Apache 2.0
// @license.url				http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath					/
// @schemes					https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	database, err := db.NewDatabase()
	if err != nil {
		if db.IsConnectionNotAcceptingError(err) {
			log.Fatalf("database is not accepting connections: %s", err)
		}
		log.Fatalf("could not initialize database connection: %s", err)
	}
	if err = database.AutoMigrate(); err != nil {
		log.Fatalf("could not migrate database schema: %s", err)
	}

	conf := configs.GetConfigs()
	catalogClient := catalog.NewClient(conf.CatalogApiKey, conf.CatalogBaseUrl, conf.CatalogImageBaseUrl)

	movieRep := repository.NewMovieRepository(database.GetDB())
	movieSvc := service.NewMovieService(movieRep, catalogClient)
	movieHandler := handler.NewMovieHandler(movieSvc)

	userRep := repository.NewUserRepository(database.GetDB())
	userSvc := service.NewUserService(userRep)
	userHandler := handler.NewUserHandler(userSvc)

	reviewRep := repository.NewReviewRepository(database.GetDB())
	reviewSvc := service.NewReviewService(reviewRep, movieSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc)

	watchlistRep := repository.NewWatchlistRepository(database.GetDB())
	watchlistSvc := service.NewWatchlistService(watchlistRep, movieSvc)
	watchlistHandler := handler.NewWatchlistHandler(watchlistSvc)

	recommendationRep := repository.NewRecommendationRepository(database.GetDB())
	recommendationSvc := service.NewRecommendationService(recommendationRep, movieSvc)
	recommendationHandler := handler.NewRecommendationHandler(recommendationSvc)

	api.InitRouter(userHandler, movieHandler, reviewHandler, watchlistHandler, recommendationHandler)
	api.Start("0.0.0.0:" + configs.GetConfigs().Port)
}
