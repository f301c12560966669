package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/TauHsu/course-booking/internal/handlers"
	"github.com/TauHsu/course-booking/internal/middleware"
	"github.com/TauHsu/course-booking/internal/models"
	"github.com/TauHsu/course-booking/internal/stores"
	"github.com/TauHsu/course-booking/internal/token"
)

type Handlers struct {
	Auth          *handlers.AuthHandler
	Coach         *handlers.CoachHandler
	Course        *handlers.CourseHandler
	Skill         *handlers.SkillHandler
	CreditPackage *handlers.CreditPackageHandler
	Admin         *handlers.AdminHandler
}

// New builds the gin engine with every route mounted under /api.
func New(h Handlers, tokens token.TokenService, users stores.UserStore, log *zap.Logger) *gin.Engine {
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()
	r.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.ErrorHandler(log),
	)

	auth := middleware.JWTAuth(tokens, users, log)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	api := r.Group("/api")

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("/signup", h.Auth.Signup)
		usersGroup.POST("/login", h.Auth.Login)
		usersGroup.GET("/profile", auth, h.Auth.GetProfile)
		usersGroup.PUT("/profile", auth, h.Auth.UpdateProfile)
		usersGroup.GET("/courses", auth, h.Auth.ListMyCourses)
	}

	coaches := api.Group("/coaches")
	{
		coaches.GET("", h.Coach.List)
		coaches.GET("/:coachId", h.Coach.Get)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", h.Course.List)
		courses.POST("/:courseId", auth, h.Course.Book)
		courses.DELETE("/:courseId", auth, h.Course.Cancel)
	}

	skills := api.Group("/skill")
	{
		skills.GET("", h.Skill.List)
		skills.POST("", h.Skill.Create)
		skills.DELETE("/:skillId", h.Skill.Delete)
	}

	packages := api.Group("/credit-package")
	{
		packages.GET("", h.CreditPackage.List)
		packages.POST("", h.CreditPackage.Create)
		packages.POST("/:creditPackageId", auth, h.CreditPackage.Purchase)
		packages.DELETE("/:creditPackageId", auth, h.CreditPackage.Delete)
	}

	admin := api.Group("/admin", auth)
	{
		admin.POST("/coaches/courses", middleware.RequireRole(models.RoleCoach), h.Admin.CreateCourse)
		admin.POST("/coaches/:userId", middleware.RequireRole(models.RoleAdmin), h.Admin.PromoteCoach)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": "failed", "message": "route not found"})
	})

	return r
}
