package authctrl

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mindtrace/bpdscreen/internal/dto"
	"github.com/mindtrace/bpdscreen/internal/middleware"
	"github.com/mindtrace/bpdscreen/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	identityService service.IdentityService
}

func NewAuthController(identityService service.IdentityService) *AuthController {
	return &AuthController{identityService: identityService}
}

// ExchangeOAuth godoc
// @Summary Exchange an OAuth profile for a session token
// @Description Upserts the user from the provider profile, re-owns anonymous results, issues a JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param profile body dto.OAuthExchangeDTO true "Provider profile and optional anonymous session id"
// @Success 200 {object} dto.AuthResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/oauth [post]
func (c *AuthController) ExchangeOAuth(ctx *gin.Context) {
	var req dto.OAuthExchangeDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.identityService.ExchangeOAuth(req)
	if err != nil {
		log.Error().Err(err).Str("provider", req.Provider).Msg("ExchangeOAuth: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to complete sign-in", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.ProfileDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString(middleware.CtxSubjectID)
	profile, err := c.identityService.Profile(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load profile", Details: []string{err.Error()}})
		return
	}
	if profile == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
