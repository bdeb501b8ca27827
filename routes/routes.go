package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"morvarid-backend/config"
	"morvarid-backend/controllers"
	"morvarid-backend/models"
	"morvarid-backend/utils"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins := strings.Split(env, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return origins
	}
	return []string{"http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		adminOnly := utils.RequireRoles(models.RoleAdmin)

		// Farm routes
		farms := api.Group("/farms")
		{
			farms.GET("", controllers.GetFarms)
			farms.GET("/active", controllers.GetActiveFarms)
			farms.GET("/:id", controllers.GetFarm)
			farms.POST("", adminOnly, controllers.CreateFarm)
			farms.PUT("/:id", adminOnly, controllers.UpdateFarm)
			farms.DELETE("/:id", adminOnly, controllers.DeleteFarm)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", controllers.GetProducts)
			products.GET("/:id", controllers.GetProduct)
			products.POST("", adminOnly, controllers.CreateProduct)
			products.PUT("/:id", adminOnly, controllers.UpdateProduct)
			products.DELETE("/:id", adminOnly, controllers.DeleteProduct)
		}

		// User routes
		users := api.Group("/users")
		{
			users.GET("", controllers.GetUsers)
			users.GET("/:id", controllers.GetUser)
			users.POST("", adminOnly, controllers.CreateUser)
			users.PUT("/:id", adminOnly, controllers.UpdateUser)
			users.DELETE("/:id", adminOnly, controllers.DeleteUser)
		}

		// Production routes (farm-scoped inside the handlers)
		production := api.Group("/production")
		{
			production.GET("", controllers.GetProductionRecords)
			production.GET("/:id", controllers.GetProductionRecord)
			production.POST("", controllers.CreateProductionRecord)
			production.PUT("/:id", controllers.UpdateProductionRecord)
			production.DELETE("/:id", controllers.DeleteProductionRecord)
		}

		// Invoice routes (farm-scoped inside the handlers)
		invoices := api.Group("/invoices")
		{
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.POST("", controllers.CreateInvoice)
			invoices.PUT("/:id", controllers.UpdateInvoice)
			invoices.DELETE("/:id", controllers.DeleteInvoice)
		}

		api.GET("/inventory/:farmId", controllers.GetInventory)
		api.GET("/stats/dashboard", controllers.GetDashboardStats)

		// Notification routes
		notifications := api.Group("/notifications")
		{
			notifications.POST("", adminOnly, controllers.CreateNotification)
			notifications.GET("/:userId", controllers.GetNotifications)
			notifications.PATCH("/:id/read", controllers.MarkNotificationRead)
		}

		// Report export routes
		reports := api.Group("/reports")
		{
			reports.GET("/production/export", controllers.ExportProductionReport)
			reports.GET("/sales/export", controllers.ExportSalesReport)
		}
	}

	return r
}
