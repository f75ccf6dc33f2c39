package v1

import (
	"net/http"

	"github.com/MGTheTrain/rms/internal/domain/auth"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// AuthHandler defines the interface for handling token operations
type AuthHandler interface {
	Login(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	Logout(ctx *gin.Context)
	SwaggerToken(ctx *gin.Context)
}

type authHandler struct {
	authService auth.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

// Login handles the POST request issuing an access and refresh token pair
// @Summary Log in
// @Description Verify the credentials and issue an access token and a refresh token. The refresh token is stored on the user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body auth.Credentials true "Credentials"
// @Success 200 {object} CommonResponse{data=TokenResponse}
// @Failure 401 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Router /auth/tokens [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request auth.Credentials
	if !bindJSON(ctx, &request) {
		return
	}

	pair, err := handler.authService.Login(ctx.Request.Context(), &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewTokenResponse(pair), "")
}

// Refresh handles the PUT request exchanging a refresh token for a new access token
// @Summary Refresh the access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} CommonResponse{data=TokenResponse}
// @Failure 401 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Router /auth/tokens [put]
func (handler *authHandler) Refresh(ctx *gin.Context) {
	var request RefreshTokenRequest
	if !bindJSON(ctx, &request) {
		return
	}

	pair, err := handler.authService.Refresh(ctx.Request.Context(), request.RefreshToken)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewTokenResponse(pair), "Token refreshed successfully")
}

// Logout handles the PATCH request revoking the stored refresh token
// @Summary Log out
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LogoutRequest true "Session to revoke"
// @Success 200 {object} CommonResponse
// @Failure 401 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Router /auth/tokens [patch]
func (handler *authHandler) Logout(ctx *gin.Context) {
	var request LogoutRequest
	if !bindJSON(ctx, &request) {
		return
	}

	if err := handler.authService.Logout(ctx.Request.Context(), request.Username, request.RefreshToken); err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, nil, "Logged out successfully")
}

// SwaggerToken handles the OAuth2 password flow used by API explorers
// @Summary Issue an access token from form credentials
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} SwaggerTokenResponse
// @Failure 401 {object} CommonResponse
// @Router /auth/swagger-token [post]
func (handler *authHandler) SwaggerToken(ctx *gin.Context) {
	var request auth.Credentials
	if !bind(ctx, &request, binding.Form) {
		return
	}

	accessToken, err := handler.authService.IssueAccessToken(ctx.Request.Context(), &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SwaggerTokenResponse{AccessToken: accessToken, TokenType: auth.TokenTypeBearer})
}
