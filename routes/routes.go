package routes

import (
	"shopkart/config"
	"shopkart/controllers"
	"shopkart/repositories"
	"shopkart/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, store *repositories.FileStore) {
	productCtrl := controllers.NewProductController(services.NewCatalogService(store))
	authCtrl := controllers.NewAuthController(services.NewAccountService(store))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(store))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/products", productCtrl.GetProducts)
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)
		api.POST("/order", orderCtrl.PlaceOrder)
		api.GET("/orders", orderCtrl.GetOrders)
	}

	router.Static("/static", config.AppConfig.StaticDir)
}
