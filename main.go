// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/repository/mongodb"
	"go-storefront/routes"
	"go-storefront/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	logger := utils.NewLogger("storefront", utils.GetEnv("LOG_LEVEL", "info"))

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatal(err)
		}
	}()

	database := utils.GetEnv("MONGODB_DATABASE", "storefront")
	productRepo := mongodb.NewProductRepository(client, database)
	orderRepo := mongodb.NewOrderRepository(client, database)
	userRepo := mongodb.NewUserRepository(client, database)
	testRepo := mongodb.NewTestRepository(client, database)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo)
	productController := controllers.NewProductController(productRepo)
	orderController := controllers.NewOrderController(orderRepo, emailService)
	testController := controllers.NewTestController(testRepo)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLog(logger))
	routes.RegisterRoutes(router, userController, productController, orderController, testController)

	// Start the server
	port := utils.GetEnv("PORT", "8000")
	logger.Info("server listening", "port", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
