package v1

import (
	"net/http"

	"github.com/MGTheTrain/rms/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for handling user-related operations
type UserHandler interface {
	List(ctx *gin.Context)
	GetBySeq(ctx *gin.Context)
	Create(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
	Delete(ctx *gin.Context)
	SoftDelete(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{
		userService: userService,
	}
}

// List handles the GET request listing users
// @Summary List users
// @Description Fetch one page of users sorted by any user column.
// @Tags User
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Param sort_by query string false "Sort column"
// @Param order query string false "Sort order (asc/desc)"
// @Success 200 {object} CommonResponse{data=PaginatedResponse[UserResponse]}
// @Failure 400 {object} CommonResponse
// @Security BearerAuth
// @Router /user [get]
func (handler *userHandler) List(ctx *gin.Context) {
	var params PageParams
	if !bindQuery(ctx, &params) {
		return
	}

	query := params.ToPageQuery()
	list, total, err := handler.userService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewPaginatedResponse(list, total, query, NewUserResponse), "")
}

// GetBySeq handles the GET request fetching a single user
// @Summary Get a user
// @Tags User
// @Produce json
// @Param seq path int true "User seq"
// @Success 200 {object} CommonResponse{data=UserResponse}
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /user/{seq} [get]
func (handler *userHandler) GetBySeq(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	user, err := handler.userService.GetBySeq(ctx.Request.Context(), seq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewUserResponse(user), "")
}

// Create handles the POST request registering a user
// @Summary Create a user
// @Description Store a new user with a bcrypt hashed password.
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body users.CreateUser true "User data"
// @Success 201 {object} CommonResponse{data=UserResponse}
// @Failure 400 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Security BearerAuth
// @Router /user [post]
func (handler *userHandler) Create(ctx *gin.Context) {
	var request users.CreateUser
	if !bindJSON(ctx, &request) {
		return
	}

	user, err := handler.userService.Create(ctx.Request.Context(), &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusCreated, NewUserResponse(user), "User created successfully")
}

// ChangePassword handles the PATCH request replacing a password
// @Summary Change a user password
// @Tags User
// @Accept json
// @Produce json
// @Param seq path int true "User seq"
// @Param requestBody body users.ChangePassword true "New password"
// @Success 200 {object} CommonResponse{data=UserResponse}
// @Failure 404 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Security BearerAuth
// @Router /user/{seq}/password [patch]
func (handler *userHandler) ChangePassword(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	var request users.ChangePassword
	if !bindJSON(ctx, &request) {
		return
	}

	user, err := handler.userService.ChangePassword(ctx.Request.Context(), seq, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewUserResponse(user), "Password updated successfully")
}

// Delete handles the DELETE request removing a user
// @Summary Delete a user
// @Tags User
// @Produce json
// @Param seq path int true "User seq"
// @Success 200 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /user/{seq} [delete]
func (handler *userHandler) Delete(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	if err := handler.userService.Delete(ctx.Request.Context(), seq); err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, nil, "User deleted successfully")
}

// SoftDelete handles the PATCH request marking a user as deleted
// @Summary Soft delete a user
// @Tags User
// @Produce json
// @Param seq path int true "User seq"
// @Success 200 {object} CommonResponse{data=UserResponse}
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /user/{seq}/soft-delete [patch]
func (handler *userHandler) SoftDelete(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	user, err := handler.userService.SoftDelete(ctx.Request.Context(), seq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewUserResponse(user), "User soft deleted successfully")
}
