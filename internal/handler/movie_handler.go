package handler

import (
	"cinelog/internal/service"
	"cinelog/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IMovieHandler interface {
	GetMovies(c *fiber.Ctx) error
	GetMovie(c *fiber.Ctx) error
	SearchMovies(c *fiber.Ctx) error
	TrendingMovies(c *fiber.Ctx) error
	UpcomingMovies(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// GetMovies godoc
//
//	@Summary		Get Movies
//	@Description	list the locally cached movies.
//	@Tags			Movies
//	@Success		200	{object}	response.ResponseOKWithDataModel
//	@Failure		500	{object}	response.ResponseErrorModel
//	@Router			/api/movies [get]
func (h *MovieHandler) GetMovies(c *fiber.Ctx) error {
	result, err := h.movieService.GetMovies()
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// GetMovie godoc
//
//	@Summary		Get Movie
//	@Description	get one locally cached movie.
//	@Tags			Movies
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{object}	model.Movie
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/api/movies/:movieId [get]
func (h *MovieHandler) GetMovie(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId <= 0 {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	result, err := h.movieService.GetMovie(int64(movieId))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

//------------------------------------------
//------------------------------------------

// SearchMovies godoc
//
//	@Summary		Search Movies
//	@Description	search the external catalog.
//	@Tags			Movies
//	@Param			query	query		string	true	"search query"
//	@Param			page	query		int		false	"page"
//	@Success		200		{object}	catalog.ListResponse
//	@Failure		400,500	{object}	response.ResponseErrorModel
//	@Router			/api/movies/search [get]
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	query := c.Query("query", "")
	if query == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	page := c.QueryInt("page", 1)

	result, err := h.movieService.SearchMovies(query, page)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// TrendingMovies godoc
//
//	@Summary		Trending Movies
//	@Description	trending listing from the external catalog, short-lived cache.
//	@Tags			Movies
//	@Param			page	query		int	false	"page"
//	@Success		200		{object}	catalog.ListResponse
//	@Failure		500		{object}	response.ResponseErrorModel
//	@Router			/api/movies/trending [get]
func (h *MovieHandler) TrendingMovies(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	result, err := h.movieService.TrendingMovies(page)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// UpcomingMovies godoc
//
//	@Summary		Upcoming Movies
//	@Description	upcoming listing from the external catalog, short-lived cache.
//	@Tags			Movies
//	@Param			page	query		int	false	"page"
//	@Success		200		{object}	catalog.ListResponse
//	@Failure		500		{object}	response.ResponseErrorModel
//	@Router			/api/movies/upcoming [get]
func (h *MovieHandler) UpcomingMovies(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	result, err := h.movieService.UpcomingMovies(page)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}
