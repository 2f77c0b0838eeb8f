package app

import (
	"curso_feedback_backend/docs"
	"curso_feedback_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 单页应用的全部接口，无需登录
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/courses", c.feedback.ListCourses)
		api.GET("/feedbacks", c.feedback.ListFeedbacks)
		api.POST("/feedbacks", c.feedback.CreateFeedback)

		api.GET("/dashboard", c.report.GetDashboard)

		reports := api.Group("/reports")
		{
			reports.GET("/summary", c.report.GetSummary)
			reports.GET("/monthly", c.report.GetMonthlyTrend)
			reports.GET("/distribution", c.report.GetDistribution)
		}
	}
}
