// @title FocoShop Storefront Gateway API
// @version 1.0
// @description Gateway API for the FocoShop storefront: catalog browsing, weighted product comparison, cart, favorites, reviews and orders.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Migueeel08/focoshop-sub000/config"
	_ "github.com/Migueeel08/focoshop-sub000/docs"
	"github.com/Migueeel08/focoshop-sub000/events"
	"github.com/Migueeel08/focoshop-sub000/routes"
	"github.com/Migueeel08/focoshop-sub000/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.Load()

	// Redis connection (sessions, criteria state, rate limiter)
	config.ConnectRedis()

	// Upstream FocoShop API client
	services.InitStoreAPI(config.APIBaseURL)
	services.InitSessionService(config.RedisClient)
	log.Println("✅ Store API client initialized")

	// Websocket hub bridging the notification bus to storefront tabs
	hub := events.NewHub()
	go hub.Run()
	go hub.Forward(events.Default())

	corsCfg := cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Session-ID", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", "X-Session-ID"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	routes.SetupStorefrontRoutes(api, hub)
	routes.SetupUserRoutes(api)
	routes.SetupSellerRoutes(api)
	log.Println("✅ Routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:" + config.Port)
	router.Run(":" + config.Port)
}
