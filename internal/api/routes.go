package api

import (
	"net/http"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint onto the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	userService service.UserService,
	membershipService service.MembershipService,
	planService service.WorkoutPlanService,
	logService service.WorkoutLogService,
	dietService service.DietPlanService,
	attendanceService service.AttendanceService,
	dashboardService service.DashboardService,
) {
	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	membershipHandler := NewMembershipHandler(membershipService)
	planHandler := NewWorkoutPlanHandler(planService)
	logHandler := NewWorkoutLogHandler(logService)
	dietHandler := NewDietPlanHandler(dietService)
	attendanceHandler := NewAttendanceHandler(attendanceService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Public auth endpoints ---
	router.POST("/register/", authHandler.Register)
	router.POST("/admin-register/", authHandler.AdminRegister)
	router.POST("/token/", authHandler.Token)
	router.POST("/token/refresh/", authHandler.TokenRefresh)

	protected := router.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/dashboard/", dashboardHandler.Stats)

		users := protected.Group("/users")
		{
			users.GET("/", userHandler.ListUsers)
			users.POST("/", userHandler.CreateUser)
			users.GET("/:id/", userHandler.GetUser)
			users.PUT("/:id/", userHandler.UpdateUser)
			users.PATCH("/:id/", userHandler.UpdateUser)
			users.DELETE("/:id/", userHandler.DeleteUser)
		}

		memberships := protected.Group("/memberships")
		{
			memberships.GET("/", membershipHandler.ListMemberships)
			memberships.POST("/", membershipHandler.CreateMembership)
			memberships.GET("/:id/", membershipHandler.GetMembership)
			memberships.PUT("/:id/", membershipHandler.UpdateMembership)
			memberships.PATCH("/:id/", membershipHandler.UpdateMembership)
			memberships.DELETE("/:id/", membershipHandler.DeleteMembership)
		}

		plans := protected.Group("/workout-plans")
		{
			plans.GET("/", planHandler.ListWorkoutPlans)
			plans.POST("/", planHandler.CreateWorkoutPlan)
			plans.GET("/:id/", planHandler.GetWorkoutPlan)
			plans.PUT("/:id/", planHandler.UpdateWorkoutPlan)
			plans.PATCH("/:id/", planHandler.UpdateWorkoutPlan)
			plans.DELETE("/:id/", planHandler.DeleteWorkoutPlan)
		}

		// Workout logs are a member-only surface; other roles get 403.
		logs := protected.Group("/workout-logs")
		logs.Use(RoleMiddleware(domain.RoleMember))
		{
			logs.GET("/", logHandler.ListWorkoutLogs)
			logs.POST("/", logHandler.CreateWorkoutLog)
			logs.GET("/:id/", logHandler.GetWorkoutLog)
			logs.PUT("/:id/", logHandler.UpdateWorkoutLog)
			logs.PATCH("/:id/", logHandler.UpdateWorkoutLog)
			logs.DELETE("/:id/", logHandler.DeleteWorkoutLog)
		}

		diets := protected.Group("/diet-plans")
		{
			diets.GET("/", dietHandler.ListDietPlans)
			diets.POST("/", dietHandler.CreateDietPlan)
			diets.GET("/:id/", dietHandler.GetDietPlan)
			diets.PUT("/:id/", dietHandler.UpdateDietPlan)
			diets.PATCH("/:id/", dietHandler.UpdateDietPlan)
			diets.DELETE("/:id/", dietHandler.DeleteDietPlan)
		}

		attendance := protected.Group("/attendance")
		{
			attendance.GET("/", attendanceHandler.ListAttendance)
			attendance.POST("/", attendanceHandler.CreateAttendance)
			attendance.GET("/:id/", attendanceHandler.GetAttendance)
			attendance.DELETE("/:id/", attendanceHandler.DeleteAttendance)
		}
	}
}
