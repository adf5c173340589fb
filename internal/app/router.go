package app

import (
	"inspira_backend/docs"
	"inspira_backend/internal/config"
	"inspira_backend/internal/middleware"
	"inspira_backend/internal/model"
	"inspira_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	student := router.Group("/api")
	student.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(student, c)
	}

	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/register/ct", c.auth.RegisterCT)
		public.POST("/login", c.auth.Login)

		// The catalog and pricing are browsable without an account.
		public.GET("/courses", c.course.ListCourses)
		public.GET("/courses/:id", c.course.GetCourse)
		public.POST("/coupons/validate", c.coupon.Validate)
		public.POST("/checkout/quote", c.checkout.Quote)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)
	rg.GET("/my/courses", c.learning.MyCourses)
	rg.GET("/my/courses/:id/progress", c.learning.GetProgress)
	rg.POST("/my/courses/:id/lessons/:lessonId/toggle", c.learning.ToggleLesson)
	rg.POST("/my/courses/:id/lessons/:lessonId/quiz", c.learning.SubmitQuiz)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/courses", c.course.CreateCourse)
		admin.PUT("/courses/:id", c.course.UpdateCourse)
		admin.DELETE("/courses/:id", c.course.DeleteCourse)
		admin.POST("/courses/:id/modules", c.course.AddModule)
		admin.PUT("/courses/:id/modules/:moduleId", c.course.UpdateModule)
		admin.DELETE("/courses/:id/modules/:moduleId", c.course.DeleteModule)
		admin.POST("/courses/:id/modules/:moduleId/lessons", c.course.AddLesson)
		admin.DELETE("/courses/:id/modules/:moduleId/lessons/:lessonId", c.course.DeleteLesson)
		admin.PUT("/courses/:id/lessons/:lessonId", c.course.UpdateLesson)

		admin.POST("/uploads/image", c.course.UploadImage)
		admin.POST("/uploads/video", c.course.UploadVideo)
		admin.POST("/uploads/attachment", c.course.UploadAttachment)

		admin.GET("/students", c.user.ListStudents)
		admin.GET("/students/:id", c.user.GetStudent)
		admin.PUT("/students/:id", c.user.UpdateStudent)
		admin.DELETE("/students/:id", c.user.DeleteStudent)

		admin.POST("/enrollments", c.user.Enroll)
		admin.GET("/progress", c.user.ProgressOverview)

		admin.GET("/coupons", c.coupon.ListCoupons)
		admin.POST("/coupons", c.coupon.CreateCoupon)
		admin.PUT("/coupons/:id", c.coupon.UpdateCoupon)
		admin.DELETE("/coupons/:id", c.coupon.DeleteCoupon)

		admin.GET("/access-codes", c.accessCode.List)
		admin.POST("/access-codes", c.accessCode.Generate)
		admin.PUT("/access-codes/:id", c.accessCode.SetUsed)
		admin.DELETE("/access-codes/:id", c.accessCode.Delete)
	}
}
