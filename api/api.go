package api

import (
	"cinelog/api/middleware"
	"cinelog/configs"
	_ "cinelog/docs"
	"cinelog/internal/handler"
	"cinelog/pkg/response"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

var router *fiber.App

func InitRouter(
	userHandler *handler.UserHandler,
	movieHandler *handler.MovieHandler,
	reviewHandler *handler.ReviewHandler,
	watchlistHandler *handler.WatchlistHandler,
	recommendationHandler *handler.RecommendationHandler,
) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, "Internal Error", code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		BodyLimit:    20 * 1024 * 1024,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	router.Static("/uploads", configs.GetConfigs().ProfileImageDir, fiber.Static{
		Compress:  false,
		ByteRange: false,
		Browse:    false,
		MaxAge:    3600,
	})

	authRoutes := router.Group("api/auth")
	{
		authRoutes.Post("/register", userHandler.Register)
		authRoutes.Post("/login", userHandler.Login)
		authRoutes.Post("/refresh", userHandler.RefreshToken)
		authRoutes.Post("/logout", middleware.AuthMiddleware, userHandler.Logout)
	}

	movieRoutes := router.Group("api/movies")
	{
		movieRoutes.Get("/", movieHandler.GetMovies)
		movieRoutes.Get("/search", movieHandler.SearchMovies)
		movieRoutes.Get("/trending", movieHandler.TrendingMovies)
		movieRoutes.Get("/upcoming", movieHandler.UpcomingMovies)
		movieRoutes.Get("/:movieId", movieHandler.GetMovie)
	}

	reviewRoutes := router.Group("api/reviews")
	{
		reviewRoutes.Get("/", reviewHandler.GetAllReviews)
		reviewRoutes.Post("/", middleware.AuthMiddleware, reviewHandler.CreateReview)
		reviewRoutes.Get("/user/:userId", middleware.AuthMiddleware, reviewHandler.GetReviewsByUser)
		reviewRoutes.Get("/movie/:movieId", reviewHandler.GetReviewsByMovie)
		reviewRoutes.Get("/:reviewId/likes", reviewHandler.GetLikesCount)
		reviewRoutes.Post("/:reviewId/like", middleware.AuthMiddleware, reviewHandler.LikeReview)
		reviewRoutes.Delete("/:reviewId/like", middleware.AuthMiddleware, reviewHandler.UnlikeReview)
		reviewRoutes.Get("/:reviewId/comments", reviewHandler.GetComments)
		reviewRoutes.Post("/:reviewId/comments", middleware.AuthMiddleware, reviewHandler.AddComment)
	}

	watchlistRoutes := router.Group("api/watchlist", middleware.AuthMiddleware)
	{
		watchlistRoutes.Get("/", watchlistHandler.GetWatchlist)
		watchlistRoutes.Get("/user/:userId", watchlistHandler.GetWatchlistByUser)
		watchlistRoutes.Post("/add", watchlistHandler.AddToWatchlist)
		watchlistRoutes.Delete("/remove/:movieId", watchlistHandler.RemoveFromWatchlist)
		watchlistRoutes.Put("/currently-watching/:movieId", watchlistHandler.SetCurrentlyWatching)
		watchlistRoutes.Put("/next-up/:movieId", watchlistHandler.SetNextUp)
	}

	recommendationRoutes := router.Group("api/recommendations", middleware.AuthMiddleware)
	{
		recommendationRoutes.Get("/", recommendationHandler.GetRecommendations)
		recommendationRoutes.Post("/add", recommendationHandler.AddRecommendation)
	}

	userRoutes := router.Group("api/users", middleware.AuthMiddleware)
	{
		userRoutes.Get("/profile", userHandler.GetProfile)
		userRoutes.Put("/profile", userHandler.UpdateProfile)
		userRoutes.Get("/:username", userHandler.GetUserByUsername)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault) // default
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.Context(), timeout)

		defer func() {
			// check if context timeout was reached
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {

				// write response and abort the request
				c.SendStatus(fiber.StatusGatewayTimeout)
			}

			//cancel to clear resources after finished
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
