package handler

import (
	"cinelog/internal/service"
	"cinelog/model"
	"cinelog/pkg/response"
	"cinelog/util"

	"github.com/gofiber/fiber/v2"
)

type IRecommendationHandler interface {
	GetRecommendations(c *fiber.Ctx) error
	AddRecommendation(c *fiber.Ctx) error
}

type RecommendationHandler struct {
	recommendationService service.IRecommendationService
}

func NewRecommendationHandler(recommendationService service.IRecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
	}
}

//------------------------------------------
//------------------------------------------

// GetRecommendations godoc
//
//	@Summary		Get Recommendations
//	@Description	recommendations received by the authenticated user, newest first.
//	@Tags			Recommendations
//	@Success		200	{object}	response.ResponseOKWithDataModel
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)

	result, err := h.recommendationService.GetForUser(claims.UserId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// AddRecommendation godoc
//
//	@Summary		Add Recommendation
//	@Description	recommend a movie to another user, the receiver keeps the 5 most recent.
//	@Tags			Recommendations
//	@Param			recommendation	body		model.AddRecommendationReq	true	"movieId, recommendedTo"
//	@Success		201		{object}	model.Recommendation
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/recommendations/add [post]
func (h *RecommendationHandler) AddRecommendation(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.AddRecommendationReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.MovieId <= 0 || req.RecommendedTo <= 0 {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.recommendationService.AddRecommendation(claims.UserId, &req)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, result)
}
