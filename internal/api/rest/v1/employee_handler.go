package v1

import (
	"net/http"

	"github.com/MGTheTrain/rms/internal/domain/employees"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler defines the interface for handling employee-related operations
type EmployeeHandler interface {
	List(ctx *gin.Context)
	GetBySeq(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	SoftDelete(ctx *gin.Context)
}

type employeeHandler struct {
	employeeService employees.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService employees.EmployeeService) EmployeeHandler {
	return &employeeHandler{
		employeeService: employeeService,
	}
}

// List handles the GET request listing employees
// @Summary List employees
// @Tags Employee
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Param sort_by query string false "Sort column"
// @Param order query string false "Sort order (asc/desc)"
// @Success 200 {object} CommonResponse{data=PaginatedResponse[EmployeeResponse]}
// @Failure 400 {object} CommonResponse
// @Security BearerAuth
// @Router /employee [get]
func (handler *employeeHandler) List(ctx *gin.Context) {
	var params PageParams
	if !bindQuery(ctx, &params) {
		return
	}

	query := params.ToPageQuery()
	list, total, err := handler.employeeService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewPaginatedResponse(list, total, query, NewEmployeeResponse), "")
}

// GetBySeq handles the GET request fetching a single employee
// @Summary Get an employee
// @Tags Employee
// @Produce json
// @Param seq path int true "Employee seq"
// @Success 200 {object} CommonResponse{data=EmployeeResponse}
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /employee/{seq} [get]
func (handler *employeeHandler) GetBySeq(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	employee, err := handler.employeeService.GetBySeq(ctx.Request.Context(), seq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewEmployeeResponse(employee), "")
}

// Create handles the POST request creating an employee
// @Summary Create an employee
// @Description Register an employee. The email must not be used by another employee.
// @Tags Employee
// @Accept json
// @Produce json
// @Param requestBody body employees.CreateEmployee true "Employee data"
// @Success 201 {object} CommonResponse{data=EmployeeResponse}
// @Failure 400 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Security BearerAuth
// @Router /employee [post]
func (handler *employeeHandler) Create(ctx *gin.Context) {
	var request employees.CreateEmployee
	if !bindJSON(ctx, &request) {
		return
	}

	employee, err := handler.employeeService.Create(ctx.Request.Context(), &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusCreated, NewEmployeeResponse(employee), "Employee created successfully")
}

// Update handles the PATCH request changing an employee
// @Summary Update an employee
// @Description Partially update an employee. Email and status must always be sent.
// @Tags Employee
// @Accept json
// @Produce json
// @Param seq path int true "Employee seq"
// @Param requestBody body employees.UpdateEmployee true "Fields to change"
// @Success 200 {object} CommonResponse{data=EmployeeResponse}
// @Failure 400 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Security BearerAuth
// @Router /employee/{seq} [patch]
func (handler *employeeHandler) Update(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	var request employees.UpdateEmployee
	if !bindJSON(ctx, &request) {
		return
	}

	employee, err := handler.employeeService.Update(ctx.Request.Context(), seq, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewEmployeeResponse(employee), "Employee updated successfully")
}

// Delete handles the DELETE request removing an employee
// @Summary Delete an employee
// @Tags Employee
// @Produce json
// @Param seq path int true "Employee seq"
// @Success 200 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /employee/{seq} [delete]
func (handler *employeeHandler) Delete(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	if err := handler.employeeService.Delete(ctx.Request.Context(), seq); err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, nil, "Employee deleted successfully")
}

// SoftDelete handles the PATCH request marking an employee as deleted
// @Summary Soft delete an employee
// @Tags Employee
// @Produce json
// @Param seq path int true "Employee seq"
// @Success 200 {object} CommonResponse{data=EmployeeResponse}
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /employee/{seq}/soft-delete [patch]
func (handler *employeeHandler) SoftDelete(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	employee, err := handler.employeeService.SoftDelete(ctx.Request.Context(), seq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewEmployeeResponse(employee), "Employee soft deleted successfully")
}
