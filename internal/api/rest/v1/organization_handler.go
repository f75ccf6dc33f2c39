package v1

import (
	"context"
	"net/http"

	"github.com/MGTheTrain/rms/internal/domain/organizations"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler defines the interface for handling organization-related operations
type OrganizationHandler interface {
	List(ctx *gin.Context)
	GetBySeq(ctx *gin.Context)
	Hierarchy(ctx *gin.Context)
	CreateDepartment(ctx *gin.Context)
	CreateHeadquarters(ctx *gin.Context)
	CreateTeam(ctx *gin.Context)
	Update(ctx *gin.Context)
	Move(ctx *gin.Context)
	Delete(ctx *gin.Context)
	SoftDelete(ctx *gin.Context)
}

type organizationHandler struct {
	organizationService organizations.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(organizationService organizations.OrganizationService) OrganizationHandler {
	return &organizationHandler{
		organizationService: organizationService,
	}
}

// List handles the GET request listing organizations
// @Summary List organizations
// @Description Fetch one page of organizations, optionally filtered by level and parent.
// @Tags Organization
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Param sort_by query string false "Sort column"
// @Param order query string false "Sort order (asc/desc)"
// @Param level query int false "Organization level (1-3)"
// @Param parent_seq query int false "Parent organization seq"
// @Success 200 {object} CommonResponse{data=PaginatedResponse[OrganizationResponse]}
// @Failure 400 {object} CommonResponse
// @Security BearerAuth
// @Router /organization [get]
func (handler *organizationHandler) List(ctx *gin.Context) {
	var params OrganizationParams
	if !bindQuery(ctx, &params) {
		return
	}

	query := params.ToOrganizationQuery()
	list, total, err := handler.organizationService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewPaginatedResponse(list, total, &query.PageQuery, NewOrganizationResponse), "")
}

// Hierarchy handles the GET request returning the organization tree
// @Summary Organization hierarchy
// @Description Return every organization nested below its parent, starting from the departments.
// @Tags Organization
// @Produce json
// @Success 200 {object} CommonResponse{data=[]OrganizationResponse}
// @Security BearerAuth
// @Router /organization/hierarchy [get]
func (handler *organizationHandler) Hierarchy(ctx *gin.Context) {
	roots, err := handler.organizationService.Tree(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	tree := make([]OrganizationResponse, 0, len(roots))
	for _, root := range roots {
		tree = append(tree, NewOrganizationResponse(root))
	}

	success(ctx, http.StatusOK, tree, "")
}

// GetBySeq handles the GET request fetching a single organization
// @Summary Get an organization
// @Tags Organization
// @Produce json
// @Param seq path int true "Organization seq"
// @Success 200 {object} CommonResponse{data=OrganizationResponse}
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /organization/{seq} [get]
func (handler *organizationHandler) GetBySeq(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	organization, err := handler.organizationService.GetBySeq(ctx.Request.Context(), seq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewOrganizationResponse(organization), "")
}

// CreateDepartment handles the POST request creating a level 1 organization
// @Summary Create a department
// @Description Level must be 1 and parent_seq must be omitted.
// @Tags Organization
// @Accept json
// @Produce json
// @Param requestBody body organizations.CreateOrganization true "Department data"
// @Success 201 {object} CommonResponse{data=OrganizationResponse}
// @Failure 400 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Security BearerAuth
// @Router /organization/departments [post]
func (handler *organizationHandler) CreateDepartment(ctx *gin.Context) {
	handler.create(ctx, handler.organizationService.CreateDepartment, "Department created successfully")
}

// CreateHeadquarters handles the POST request creating a level 2 organization
// @Summary Create headquarters
// @Description Level must be 2 and parent_seq must reference a department.
// @Tags Organization
// @Accept json
// @Produce json
// @Param requestBody body organizations.CreateOrganization true "Headquarters data"
// @Success 201 {object} CommonResponse{data=OrganizationResponse}
// @Failure 400 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Security BearerAuth
// @Router /organization/headquarters [post]
func (handler *organizationHandler) CreateHeadquarters(ctx *gin.Context) {
	handler.create(ctx, handler.organizationService.CreateHeadquarters, "Headquarters created successfully")
}

// CreateTeam handles the POST request creating a level 3 organization
// @Summary Create a team
// @Description Level must be 3 and parent_seq must reference headquarters.
// @Tags Organization
// @Accept json
// @Produce json
// @Param requestBody body organizations.CreateOrganization true "Team data"
// @Success 201 {object} CommonResponse{data=OrganizationResponse}
// @Failure 400 {object} CommonResponse
// @Failure 422 {object} CommonResponse
// @Security BearerAuth
// @Router /organization/teams [post]
func (handler *organizationHandler) CreateTeam(ctx *gin.Context) {
	handler.create(ctx, handler.organizationService.CreateTeam, "Team created successfully")
}

type createOrganizationFunc func(ctx context.Context, cmd *organizations.CreateOrganization) (*organizations.Organization, error)

func (handler *organizationHandler) create(ctx *gin.Context, create createOrganizationFunc, message string) {
	var request organizations.CreateOrganization
	if !bindJSON(ctx, &request) {
		return
	}

	organization, err := create(ctx.Request.Context(), &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusCreated, NewOrganizationResponse(organization), message)
}

// Update handles the PATCH request changing name or visibility
// @Summary Update an organization
// @Tags Organization
// @Accept json
// @Produce json
// @Param seq path int true "Organization seq"
// @Param requestBody body organizations.UpdateOrganization true "Fields to change"
// @Success 200 {object} CommonResponse{data=OrganizationResponse}
// @Failure 400 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /organization/{seq} [patch]
func (handler *organizationHandler) Update(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	var request organizations.UpdateOrganization
	if !bindJSON(ctx, &request) {
		return
	}

	organization, err := handler.organizationService.Update(ctx.Request.Context(), seq, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewOrganizationResponse(organization), "Organization updated successfully")
}

// Move handles the PATCH request re-parenting an organization
// @Summary Move an organization
// @Description The new parent must sit exactly one level above the organization. The level itself never changes.
// @Tags Organization
// @Accept json
// @Produce json
// @Param seq path int true "Organization seq"
// @Param requestBody body MoveOrganizationRequest true "New parent"
// @Success 200 {object} CommonResponse{data=OrganizationResponse}
// @Failure 400 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /organization/{seq}/move [patch]
func (handler *organizationHandler) Move(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	var request MoveOrganizationRequest
	if !bindJSON(ctx, &request) {
		return
	}

	organization, err := handler.organizationService.Move(ctx.Request.Context(), seq, *request.NewParentSeq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewOrganizationResponse(organization), "Organization moved successfully")
}

// Delete handles the DELETE request removing an organization
// @Summary Delete an organization
// @Description Refused while employees or sub organizations reference it.
// @Tags Organization
// @Produce json
// @Param seq path int true "Organization seq"
// @Success 200 {object} CommonResponse
// @Failure 400 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /organization/{seq} [delete]
func (handler *organizationHandler) Delete(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	if err := handler.organizationService.Delete(ctx.Request.Context(), seq); err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, nil, "Organization deleted successfully")
}

// SoftDelete handles the PATCH request marking an organization as deleted
// @Summary Soft delete an organization
// @Tags Organization
// @Produce json
// @Param seq path int true "Organization seq"
// @Success 200 {object} CommonResponse{data=OrganizationResponse}
// @Failure 400 {object} CommonResponse
// @Failure 404 {object} CommonResponse
// @Security BearerAuth
// @Router /organization/{seq}/soft-delete [patch]
func (handler *organizationHandler) SoftDelete(ctx *gin.Context) {
	seq, ok := seqParam(ctx, "seq")
	if !ok {
		return
	}

	organization, err := handler.organizationService.SoftDelete(ctx.Request.Context(), seq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	success(ctx, http.StatusOK, NewOrganizationResponse(organization), "Organization soft deleted successfully")
}
