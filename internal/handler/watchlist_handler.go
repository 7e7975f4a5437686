package handler

import (
	"cinelog/internal/service"
	"cinelog/model"
	"cinelog/pkg/response"
	"cinelog/util"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IWatchlistHandler interface {
	GetWatchlist(c *fiber.Ctx) error
	GetWatchlistByUser(c *fiber.Ctx) error
	AddToWatchlist(c *fiber.Ctx) error
	RemoveFromWatchlist(c *fiber.Ctx) error
	SetCurrentlyWatching(c *fiber.Ctx) error
	SetNextUp(c *fiber.Ctx) error
}

type WatchlistHandler struct {
	watchlistService service.IWatchlistService
}

func NewWatchlistHandler(watchlistService service.IWatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
	}
}

//------------------------------------------
//------------------------------------------

// GetWatchlist godoc
//
//	@Summary		Get Watchlist
//	@Description	the authenticated user's watchlist, slots first.
//	@Tags			Watchlist
//	@Success		200	{object}	response.ResponseOKWithDataModel
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/watchlist [get]
func (h *WatchlistHandler) GetWatchlist(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)

	result, err := h.watchlistService.ListForUser(claims.UserId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// GetWatchlistByUser godoc
//
//	@Summary		Get User Watchlist
//	@Description	another user's watchlist.
//	@Tags			Watchlist
//	@Param			userId	path		int	true	"userId"
//	@Success		200		{object}	response.ResponseOKWithDataModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/watchlist/user/:userId [get]
func (h *WatchlistHandler) GetWatchlistByUser(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId", 0)
	if err != nil || userId <= 0 {
		return response.ResponseError(c, response.InvalidUserId, fiber.StatusBadRequest)
	}

	result, err := h.watchlistService.ListForUser(int64(userId))
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// AddToWatchlist godoc
//
//	@Summary		Add To Watchlist
//	@Description	append a movie to the watchlist, caching it locally on first reference.
//	@Tags			Watchlist
//	@Param			entry	body		model.AddWatchlistReq	true	"movieId, title, poster"
//	@Success		201		{object}	model.WatchlistEntry
//	@Failure		400,401,409	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/watchlist/add [post]
func (h *WatchlistHandler) AddToWatchlist(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.AddWatchlistReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.MovieId <= 0 || req.Title == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.watchlistService.AddEntry(claims.UserId, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.ResponseError(c, response.AlreadyExist, fiber.StatusConflict)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, result)
}

// RemoveFromWatchlist godoc
//
//	@Summary		Remove From Watchlist
//	@Description	remove a movie from the watchlist, removing an absent entry is a no-op.
//	@Tags			Watchlist
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/watchlist/remove/:movieId [delete]
func (h *WatchlistHandler) RemoveFromWatchlist(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId <= 0 {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	if err = h.watchlistService.RemoveEntry(claims.UserId, int64(movieId)); err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "")
}

//------------------------------------------
//------------------------------------------

// SetCurrentlyWatching godoc
//
//	@Summary		Set Currently Watching
//	@Description	promote a watchlist entry into the "currently watching" slot.
//	@Tags			Watchlist
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/watchlist/currently-watching/:movieId [put]
func (h *WatchlistHandler) SetCurrentlyWatching(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId <= 0 {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	err = h.watchlistService.SetCurrentlyWatching(claims.UserId, int64(movieId))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ResponseError(c, response.WatchlistEntryNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "")
}

// SetNextUp godoc
//
//	@Summary		Set Next Up
//	@Description	promote a watchlist entry into the "next up" slot.
//	@Tags			Watchlist
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/watchlist/next-up/:movieId [put]
func (h *WatchlistHandler) SetNextUp(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId <= 0 {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	err = h.watchlistService.SetNextUp(claims.UserId, int64(movieId))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ResponseError(c, response.WatchlistEntryNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "")
}
