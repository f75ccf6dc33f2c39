package v1

import (
	"net/http"

	"github.com/MGTheTrain/rms/internal/domain/history"

	"github.com/gin-gonic/gin"
)

// HistoryHandler defines the interface for reading change history
type HistoryHandler interface {
	List(ctx *gin.Context)
	GetBySeq(ctx *gin.Context)
}

type historyHandler struct {
	historyService history.HistoryService
	toResponse     func(*history.Entry) interface{}
}

// NewEmployeeHistoryHandler creates a HistoryHandler answering with employee history entries
func NewEmployeeHistoryHandler(historyService history.HistoryService) HistoryHandler {
	return &historyHandler{
		historyService: historyService,
		toResponse:     NewEmployeeHistoryResponse,
	}
}

// NewOrganizationHistoryHandler creates a HistoryHandler answering with organization history entries
func NewOrganizationHistoryHandler(historyService history.HistoryService) HistoryHandler {
	return &historyHandler{
		historyService: historyService,
		toResponse:     NewOrganizationHistoryResponse,
	}
}

// List handles the GET request listing history entries
// @Summary List history entries
// @Tags History
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Param sort_by query string false "Sort column"
// @Param order query string false "Sort order (asc/desc)"
// @Success 200 {object} CommonResponse{data=PaginatedResponse[EmployeeHistoryResponse]}
// @Failure 400 {object} CommonResponse
// @Security BearerAuth
// @Router /employee-history [get]
// @Router /organization-history [get]
func (handler *historyHandler) List(ctx *gin.Context) {
	var params PageParams
	if !bindQuery(ctx, &params) {
		return
	}

	query := params.ToPageQuery()
	list, total, err := handler.historyService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewPaginatedResponse(list, total, query, handler.toResponse), "")
}

// GetBySeq handles the GET request fetching a single history entry
// @Summary Get a history entry
// @Tags History
// @Produce json
// @Param seq path int true "History seq"
// @Success 200 {object} CommonResponse{data=EmployeeHistoryResponse}
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /employee-history/{seq} [get]
// @Router /organization-history/{seq} [get]
func (handler *historyHandler) GetBySeq(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	entry, err := handler.historyService.GetBySeq(ctx.Request.Context(), seq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, handler.toResponse(entry), "")
}
