package v1

import (
	"net/http"

	"github.com/MGTheTrain/rms/internal/domain/ranks"

	"github.com/gin-gonic/gin"
)

// RankHandler defines the interface for handling rank-related operations
type RankHandler interface {
	List(ctx *gin.Context)
	GetBySeq(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	SoftDelete(ctx *gin.Context)
}

type rankHandler struct {
	rankService ranks.RankService
}

// NewRankHandler creates a new RankHandler
func NewRankHandler(rankService ranks.RankService) RankHandler {
	return &rankHandler{
		rankService: rankService,
	}
}

// List handles the GET request listing ranks
// @Summary List ranks
// @Tags Rank
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Param sort_by query string false "Sort column"
// @Param order query string false "Sort order (asc/desc)"
// @Success 200 {object} CommonResponse{data=PaginatedResponse[RankResponse]}
// @Failure 400 {object} CommonResponse
// @Security BearerAuth
// @Router /rank [get]
func (handler *rankHandler) List(ctx *gin.Context) {
	var params PageParams
	if !bindQuery(ctx, &params) {
		return
	}

	query := params.ToPageQuery()
	list, total, err := handler.rankService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewPaginatedResponse(list, total, query, NewRankResponse), "")
}

// GetBySeq handles the GET request fetching a single rank
// @Summary Get a rank
// @Tags Rank
// @Produce json
// @Param seq path int true "Rank seq"
// @Success 200 {object} CommonResponse{data=RankResponse}
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /rank/{seq} [get]
func (handler *rankHandler) GetBySeq(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	rank, err := handler.rankService.GetBySeq(ctx.Request.Context(), seq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewRankResponse(rank), "")
}

// Create handles the POST request creating a rank
// @Summary Create a rank
// @Description Create a rank. Titles are unique.
// @Tags Rank
// @Accept json
// @Produce json
// @Param requestBody body ranks.CreateRank true "Rank data"
// @Success 201 {object} CommonResponse{data=RankResponse}
// @Failure 400 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Security BearerAuth
// @Router /rank [post]
func (handler *rankHandler) Create(ctx *gin.Context) {
	var request ranks.CreateRank
	if !bindJSON(ctx, &request) {
		return
	}

	rank, err := handler.rankService.Create(ctx.Request.Context(), &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusCreated, NewRankResponse(rank), "Rank created successfully")
}

// Update handles the PATCH request changing a rank
// @Summary Update a rank
// @Description Partially update a rank. An empty body is rejected.
// @Tags Rank
// @Accept json
// @Produce json
// @Param seq path int true "Rank seq"
// @Param requestBody body ranks.UpdateRank true "Fields to change"
// @Success 200 {object} CommonResponse{data=RankResponse}
// @Failure 400 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Security BearerAuth
// @Router /rank/{seq} [patch]
func (handler *rankHandler) Update(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	var request ranks.UpdateRank
	if !bindJSON(ctx, &request) {
		return
	}

	rank, err := handler.rankService.Update(ctx.Request.Context(), seq, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewRankResponse(rank), "Rank updated successfully")
}

// Delete handles the DELETE request removing a rank
// @Summary Delete a rank
// @Tags Rank
// @Produce json
// @Param seq path int true "Rank seq"
// @Success 200 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /rank/{seq} [delete]
func (handler *rankHandler) Delete(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	if err := handler.rankService.Delete(ctx.Request.Context(), seq); err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, nil, "Rank deleted successfully")
}

// SoftDelete handles the PATCH request marking a rank as deleted
// @Summary Soft delete a rank
// @Tags Rank
// @Produce json
// @Param seq path int true "Rank seq"
// @Success 200 {object} CommonResponse{data=RankResponse}
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /rank/{seq}/soft-delete [patch]
func (handler *rankHandler) SoftDelete(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	rank, err := handler.rankService.SoftDelete(ctx.Request.Context(), seq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewRankResponse(rank), "Rank soft deleted successfully")
}
