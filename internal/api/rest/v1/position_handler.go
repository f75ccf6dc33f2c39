package v1

import (
	"net/http"

	"github.com/MGTheTrain/rms/internal/domain/positions"

	"github.com/gin-gonic/gin"
)

// PositionHandler defines the interface for handling position-related operations
type PositionHandler interface {
	List(ctx *gin.Context)
	GetBySeq(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	SoftDelete(ctx *gin.Context)
}

type positionHandler struct {
	positionService positions.PositionService
}

// NewPositionHandler creates a new PositionHandler
func NewPositionHandler(positionService positions.PositionService) PositionHandler {
	return &positionHandler{
		positionService: positionService,
	}
}

// List handles the GET request listing positions
// @Summary List positions
// @Tags Position
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Param sort_by query string false "Sort column"
// @Param order query string false "Sort order (asc/desc)"
// @Success 200 {object} CommonResponse{data=PaginatedResponse[PositionResponse]}
// @Failure 400 {object} CommonResponse
// @Security BearerAuth
// @Router /position [get]
func (handler *positionHandler) List(ctx *gin.Context) {
	var params PageParams
	if !bindQuery(ctx, &params) {
		return
	}

	query := params.ToPageQuery()
	list, total, err := handler.positionService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewPaginatedResponse(list, total, query, NewPositionResponse), "")
}

// GetBySeq handles the GET request fetching a single position
// @Summary Get a position
// @Tags Position
// @Produce json
// @Param seq path int true "Position seq"
// @Success 200 {object} CommonResponse{data=PositionResponse}
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /position/{seq} [get]
func (handler *positionHandler) GetBySeq(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	position, err := handler.positionService.GetBySeq(ctx.Request.Context(), seq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewPositionResponse(position), "")
}

// Create handles the POST request creating a position
// @Summary Create a position
// @Description Create a position. Titles are unique.
// @Tags Position
// @Accept json
// @Produce json
// @Param requestBody body positions.CreatePosition true "Position data"
// @Success 201 {object} CommonResponse{data=PositionResponse}
// @Failure 400 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Security BearerAuth
// @Router /position [post]
func (handler *positionHandler) Create(ctx *gin.Context) {
	var request positions.CreatePosition
	if !bindJSON(ctx, &request) {
		return
	}

	position, err := handler.positionService.Create(ctx.Request.Context(), &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusCreated, NewPositionResponse(position), "Position created successfully")
}

// Update handles the PATCH request changing a position
// @Summary Update a position
// @Description Partially update a position. An empty body is rejected.
// @Tags Position
// @Accept json
// @Produce json
// @Param seq path int true "Position seq"
// @Param requestBody body positions.UpdatePosition true "Fields to change"
// @Success 200 {object} CommonResponse{data=PositionResponse}
// @Failure 400 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Security BearerAuth
// @Router /position/{seq} [patch]
func (handler *positionHandler) Update(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	var request positions.UpdatePosition
	if !bindJSON(ctx, &request) {
		return
	}

	position, err := handler.positionService.Update(ctx.Request.Context(), seq, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewPositionResponse(position), "Position updated successfully")
}

// Delete handles the DELETE request removing a position
// @Summary Delete a position
// @Tags Position
// @Produce json
// @Param seq path int true "Position seq"
// @Success 200 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /position/{seq} [delete]
func (handler *positionHandler) Delete(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	if err := handler.positionService.Delete(ctx.Request.Context(), seq); err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, nil, "Position deleted successfully")
}

// SoftDelete handles the PATCH request marking a position as deleted
// @Summary Soft delete a position
// @Tags Position
// @Produce json
// @Param seq path int true "Position seq"
// @Success 200 {object} CommonResponse{data=PositionResponse}
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /position/{seq}/soft-delete [patch]
func (handler *positionHandler) SoftDelete(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	position, err := handler.positionService.SoftDelete(ctx.Request.Context(), seq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewPositionResponse(position), "Position soft deleted successfully")
}
