package v1

import (
	"github.com/MGTheTrain/rms/internal/domain/auth"
	"github.com/MGTheTrain/rms/internal/domain/employees"
	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/organizations"
	"github.com/MGTheTrain/rms/internal/domain/positions"
	"github.com/MGTheTrain/rms/internal/domain/ranks"
	"github.com/MGTheTrain/rms/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1. With requireAuth every
// route outside /auth needs a bearer access token.
func SetupRoutes(r *gin.Engine,
	authService auth.AuthService,
	userService users.UserService,
	employeeService employees.EmployeeService,
	organizationService organizations.OrganizationService,
	positionService positions.PositionService,
	rankService ranks.RankService,
	employeeHistoryService history.HistoryService,
	organizationHistoryService history.HistoryService,
	requireAuth bool) {

	v1 := r.Group(BasePath) // lookup in version file

	// Auth Routes
	authHandler := NewAuthHandler(authService)
	authRoutes := v1.Group("/auth")
	authRoutes.POST("/swagger-token", authHandler.SwaggerToken)
	authRoutes.POST("/tokens", authHandler.Login)
	authRoutes.PUT("/tokens", authHandler.Refresh)
	authRoutes.PATCH("/tokens", authHandler.Logout)

	protected := v1.Group("")
	if requireAuth {
		protected.Use(BearerAuth(authService))
	}

	// User Routes
	userHandler := NewUserHandler(userService)
	protected.GET("/user", userHandler.List)
	protected.GET("/user/:seq", userHandler.GetBySeq)
	protected.POST("/user", userHandler.Create)
	protected.PATCH("/user/:seq/password", userHandler.ChangePassword)
	protected.DELETE("/user/:seq", userHandler.Delete)
	protected.PATCH("/user/:seq/soft-delete", userHandler.SoftDelete)

	// Employee Routes
	employeeHandler := NewEmployeeHandler(employeeService)
	protected.GET("/employee", employeeHandler.List)
	protected.GET("/employee/:seq", employeeHandler.GetBySeq)
	protected.POST("/employee", employeeHandler.Create)
	protected.PATCH("/employee/:seq", employeeHandler.Update)
	protected.DELETE("/employee/:seq", employeeHandler.Delete)
	protected.PATCH("/employee/:seq/soft-delete", employeeHandler.SoftDelete)

	// Organization Routes
	organizationHandler := NewOrganizationHandler(organizationService)
	protected.GET("/organization", organizationHandler.List)
	protected.GET("/organization/hierarchy", organizationHandler.Hierarchy)
	protected.GET("/organization/:seq", organizationHandler.GetBySeq)
	protected.POST("/organization/departments", organizationHandler.CreateDepartment)
	protected.POST("/organization/headquarters", organizationHandler.CreateHeadquarters)
	protected.POST("/organization/teams", organizationHandler.CreateTeam)
	protected.PATCH("/organization/:seq", organizationHandler.Update)
	protected.PATCH("/organization/:seq/move", organizationHandler.Move)
	protected.DELETE("/organization/:seq", organizationHandler.Delete)
	protected.PATCH("/organization/:seq/soft-delete", organizationHandler.SoftDelete)

	// Position Routes
	positionHandler := NewPositionHandler(positionService)
	protected.GET("/position", positionHandler.List)
	protected.GET("/position/:seq", positionHandler.GetBySeq)
	protected.POST("/position", positionHandler.Create)
	protected.PATCH("/position/:seq", positionHandler.Update)
	protected.DELETE("/position/:seq", positionHandler.Delete)
	protected.PATCH("/position/:seq/soft-delete", positionHandler.SoftDelete)

	// Rank Routes
	rankHandler := NewRankHandler(rankService)
	protected.GET("/rank", rankHandler.List)
	protected.GET("/rank/:seq", rankHandler.GetBySeq)
	protected.POST("/rank", rankHandler.Create)
	protected.PATCH("/rank/:seq", rankHandler.Update)
	protected.DELETE("/rank/:seq", rankHandler.Delete)
	protected.PATCH("/rank/:seq/soft-delete", rankHandler.SoftDelete)

	// History Routes
	employeeHistoryHandler := NewEmployeeHistoryHandler(employeeHistoryService)
	protected.GET("/employee-history", employeeHistoryHandler.List)
	protected.GET("/employee-history/:seq", employeeHistoryHandler.GetBySeq)

	organizationHistoryHandler := NewOrganizationHistoryHandler(organizationHistoryService)
	protected.GET("/organization-history", organizationHistoryHandler.List)
	protected.GET("/organization-history/:seq", organizationHistoryHandler.GetBySeq)
}
