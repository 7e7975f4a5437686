package handler

import (
	"cinelog/internal/service"
	"cinelog/model"
	"cinelog/pkg/response"
	"cinelog/util"
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IUserHandler interface {
	Register(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	RefreshToken(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	GetProfile(c *fiber.Ctx) error
	UpdateProfile(c *fiber.Ctx) error
	GetUserByUsername(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

// Register godoc
//
//	@Summary		Register
//	@Description	create a new account.
//	@Tags			Auth
//	@Param			user	body		model.RegisterReq	true	"username, email, password"
//	@Success		201		{object}	model.UserSummary
//	@Failure		400,409	{object}	response.ResponseErrorModel
//	@Router			/api/auth/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req model.RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.userService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			return response.ResponseError(c, response.InvalidEmail, fiber.StatusBadRequest)
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			return response.ResponseError(c, response.UsernameAlreadyExist, fiber.StatusConflict)
		}
		if errors.Is(err, service.ErrEmailTaken) {
			return response.ResponseError(c, response.EmailAlreadyExist, fiber.StatusConflict)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, result)
}

// Login godoc
//
//	@Summary		Login
//	@Description	issue access and refresh tokens.
//	@Tags			Auth
//	@Param			user	body		model.LoginReq	true	"username, password"
//	@Success		200		{object}	model.LoginRes
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/api/auth/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req model.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.Username == "" || req.Password == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.userService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			return response.ResponseError(c, response.UserPassNotMatch, fiber.StatusBadRequest)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// RefreshToken godoc
//
//	@Summary		Refresh Token
//	@Description	exchange a refresh token for a fresh token pair.
//	@Tags			Auth
//	@Param			token	body		model.RefreshReq	true	"refresh token"
//	@Success		200		{object}	model.LoginRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Router			/api/auth/refresh [post]
func (h *UserHandler) RefreshToken(c *fiber.Ctx) error {
	var req model.RefreshReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.RefreshToken == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.userService.RefreshTokens(req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	blacklist the presented token until it expires.
//	@Tags			Auth
//	@Success		200	{object}	response.ResponseOKModel
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/auth/logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	token := c.Locals("accessToken").(string)
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)

	if err := h.userService.Logout(token, claims.ExpiresAt); err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "")
}

//------------------------------------------
//------------------------------------------

// GetProfile godoc
//
//	@Summary		Get Profile
//	@Description	get the authenticated user's profile with top movie details.
//	@Tags			User
//	@Success		200		{object}	model.ProfileRes
//	@Failure		401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/users/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)

	result, err := h.userService.GetProfile(claims.UserId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// UpdateProfile godoc
//
//	@Summary		Update Profile
//	@Description	update bio, favorite genres, top movies and profile picture.
//	@Tags			User
//	@Accept			multipart/form-data
//	@Param			bio				formData	string	false	"bio"
//	@Param			favoriteGenres	formData	string	false	"json array of genres"
//	@Param			topMovies		formData	string	false	"json array of movie ids"
//	@Param			profilePicture	formData	file	false	"profile picture"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/users/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	claims := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.UpdateProfileReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if len(req.FavoriteGenres) > 6 {
		return response.ResponseError(c, response.ExceedGenres, fiber.StatusBadRequest)
	}
	if len(req.TopMovies) > 5 {
		return response.ResponseError(c, response.ExceedTopMovies, fiber.StatusBadRequest)
	}

	var picture []byte
	if fileHeader, err := c.FormFile("profilePicture"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
		}
		picture, err = io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
		}
	}

	err := h.userService.UpdateProfile(claims.UserId, &req, picture)
	if err != nil {
		if errors.Is(err, service.ErrBadImage) {
			return response.ResponseError(c, err.Error(), fiber.StatusBadRequest)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "")
}

// GetUserByUsername godoc
//
//	@Summary		Get User
//	@Description	public profile view, username match is case-insensitive.
//	@Tags			User
//	@Param			username	path		string	true	"username"
//	@Success		200			{object}	model.ProfileRes
//	@Failure		401,404		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/users/:username [get]
func (h *UserHandler) GetUserByUsername(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Params("username", ""))
	if username == "" || username == ":username" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.userService.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}
