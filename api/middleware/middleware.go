package middleware

import (
	"cinelog/internal/service"
	"cinelog/pkg/response"
	"cinelog/util"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(c *fiber.Ctx) error {
	accessToken := c.Get("Authorization", "")
	strArr := strings.Split(accessToken, " ")
	if len(strArr) == 2 {
		accessToken = strArr[1]
	}
	if len(accessToken) < 30 {
		return response.ResponseError(c, "Unauthorized, Invalid accessToken", fiber.StatusUnauthorized)
	}

	result, err := service.GetJwtBlacklistCache(accessToken)
	if result != "" && err == nil {
		return response.ResponseError(c, "Unauthorized, accessToken is in blacklist", fiber.StatusUnauthorized)
	}

	token, claims, err := util.VerifyToken(accessToken)
	if err != nil {
		return response.ResponseError(c, "Unauthorized, Invalid accessToken", fiber.StatusUnauthorized)
	}
	if token == nil || claims == nil {
		return response.ResponseError(c, "Unauthorized, Invalid accessToken metaData", fiber.StatusUnauthorized)
	}

	c.Locals("accessToken", accessToken)
	c.Locals("jwtUserData", claims)
	return c.Next()
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
