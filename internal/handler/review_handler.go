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

type IReviewHandler interface {
	CreateReview(c *fiber.Ctx) error
	GetAllReviews(c *fiber.Ctx) error
	GetReviewsByMovie(c *fiber.Ctx) error
	GetReviewsByUser(c *fiber.Ctx) error
	LikeReview(c *fiber.Ctx) error
	UnlikeReview(c *fiber.Ctx) error
	GetLikesCount(c *fiber.Ctx) error
	AddComment(c *fiber.Ctx) error
	GetComments(c *fiber.Ctx) error
}

type ReviewHandler struct {
	reviewService service.IReviewService
}

func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

//------------------------------------------
//------------------------------------------

// CreateReview godoc
//
//	@Summary		Create Review
//	@Description	submit a review, caching the movie locally on first reference.
//	@Tags			Reviews
//	@Param			review	body		model.CreateReviewReq	true	"review fields"
//	@Success		201		{object}	model.Review
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.CreateReviewReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.MovieId <= 0 || req.Content == "" || req.MovieTitle == "" || req.Thumbnail == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.Rating < 1 || req.Rating > 10 {
		return response.ResponseError(c, response.InvalidRating, fiber.StatusBadRequest)
	}

	result, err := h.reviewService.CreateReview(claims.UserId, &req)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, result)
}

// GetAllReviews godoc
//
//	@Summary		Get Reviews
//	@Description	all reviews, newest first, with movie display fields.
//	@Tags			Reviews
//	@Success		200	{object}	response.ResponseOKWithDataModel
//	@Failure		500	{object}	response.ResponseErrorModel
//	@Router			/api/reviews [get]
func (h *ReviewHandler) GetAllReviews(c *fiber.Ctx) error {
	result, err := h.reviewService.GetAllReviews()
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// GetReviewsByMovie godoc
//
//	@Summary		Get Movie Reviews
//	@Description	reviews for one movie.
//	@Tags			Reviews
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{object}	response.ResponseOKWithDataModel
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/api/reviews/movie/:movieId [get]
func (h *ReviewHandler) GetReviewsByMovie(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId <= 0 {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	result, err := h.reviewService.GetReviewsByMovie(int64(movieId))
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// GetReviewsByUser godoc
//
//	@Summary		Get User Reviews
//	@Description	reviews written by one user, 404 when the user has none.
//	@Tags			Reviews
//	@Param			userId	path		int	true	"userId"
//	@Success		200		{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/reviews/user/:userId [get]
func (h *ReviewHandler) GetReviewsByUser(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId", 0)
	if err != nil || userId <= 0 {
		return response.ResponseError(c, response.InvalidUserId, fiber.StatusBadRequest)
	}

	result, err := h.reviewService.GetReviewsByUser(int64(userId))
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	if len(result) == 0 {
		return response.ResponseError(c, response.ReviewsNotFound, fiber.StatusNotFound)
	}
	return response.ResponseOKWithData(c, result)
}

//------------------------------------------
//------------------------------------------

// LikeReview godoc
//
//	@Summary		Like Review
//	@Description	like a review, at most one like per user and review.
//	@Tags			Reviews
//	@Param			reviewId	path		int	true	"reviewId"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,404,409	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/reviews/:reviewId/like [post]
func (h *ReviewHandler) LikeReview(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)
	reviewId, err := c.ParamsInt("reviewId", 0)
	if err != nil || reviewId <= 0 {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	err = h.reviewService.LikeReview(int64(reviewId), claims.UserId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ResponseError(c, response.ReviewNotFound, fiber.StatusNotFound)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.ResponseError(c, response.AlreadyLiked, fiber.StatusConflict)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "")
}

// UnlikeReview godoc
//
//	@Summary		Unlike Review
//	@Description	remove a like, removing an absent like is a no-op.
//	@Tags			Reviews
//	@Param			reviewId	path		int	true	"reviewId"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/reviews/:reviewId/like [delete]
func (h *ReviewHandler) UnlikeReview(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)
	reviewId, err := c.ParamsInt("reviewId", 0)
	if err != nil || reviewId <= 0 {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if err = h.reviewService.UnlikeReview(int64(reviewId), claims.UserId); err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "")
}

// GetLikesCount godoc
//
//	@Summary		Likes Count
//	@Description	number of likes on a review.
//	@Tags			Reviews
//	@Param			reviewId	path		int	true	"reviewId"
//	@Success		200	{object}	model.LikesCountRes
//	@Failure		400	{object}	response.ResponseErrorModel
//	@Router			/api/reviews/:reviewId/likes [get]
func (h *ReviewHandler) GetLikesCount(c *fiber.Ctx) error {
	reviewId, err := c.ParamsInt("reviewId", 0)
	if err != nil || reviewId <= 0 {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	count, err := h.reviewService.GetLikesCount(int64(reviewId))
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, model.LikesCountRes{ReviewId: int64(reviewId), Likes: count})
}

//------------------------------------------
//------------------------------------------

// AddComment godoc
//
//	@Summary		Add Comment
//	@Description	comment on a review.
//	@Tags			Reviews
//	@Param			reviewId	path		int						true	"reviewId"
//	@Param			comment		body		model.CreateCommentReq	true	"content"
//	@Success		201			{object}	model.Comment
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/reviews/:reviewId/comments [post]
func (h *ReviewHandler) AddComment(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)
	reviewId, err := c.ParamsInt("reviewId", 0)
	if err != nil || reviewId <= 0 {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	var req model.CreateCommentReq
	if err = c.BodyParser(&req); err != nil || req.Content == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.reviewService.AddComment(int64(reviewId), claims.UserId, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ResponseError(c, response.ReviewNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, result)
}

// GetComments godoc
//
//	@Summary		Get Comments
//	@Description	comments on a review, oldest first.
//	@Tags			Reviews
//	@Param			reviewId	path		int	true	"reviewId"
//	@Success		200	{object}	response.ResponseOKWithDataModel
//	@Failure		400	{object}	response.ResponseErrorModel
//	@Router			/api/reviews/:reviewId/comments [get]
func (h *ReviewHandler) GetComments(c *fiber.Ctx) error {
	reviewId, err := c.ParamsInt("reviewId", 0)
	if err != nil || reviewId <= 0 {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.reviewService.GetComments(int64(reviewId))
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}
