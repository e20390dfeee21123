// routes/routes.go
package routes

import (
	"go-storefront/controllers"
	"go-storefront/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, orderController *controllers.OrderController, testController *controllers.TestController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")

	// Protected routes
	protected := router.PathPrefix("/profile").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("", userController.GetProfile).Methods("GET")

	// Product routes
	router.HandleFunc("/products", productController.ListProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Admin product routes
	admin := router.PathPrefix("/products").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/{id}", productController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/{id}", productController.DeleteProduct).Methods("DELETE")

	// Order routes
	router.HandleFunc("/orders", orderController.ListOrders).Methods("GET")
	router.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")

	// Admin order routes
	adminOrders := router.PathPrefix("/orders").Subrouter()
	adminOrders.Use(middleware.AuthMiddleware)
	adminOrders.Use(middleware.AdminMiddleware)
	adminOrders.HandleFunc("/{id}/status", orderController.UpdateOrderStatus).Methods("PATCH")

	// Scratch CRUD resource
	router.HandleFunc("/test", testController.ListTests).Methods("GET")
	router.HandleFunc("/test", testController.CreateTest).Methods("POST")
	router.HandleFunc("/test/{id}", testController.GetTest).Methods("GET")
	router.HandleFunc("/test/{id}", testController.UpdateTest).Methods("PUT")
	router.HandleFunc("/test/{id}", testController.DeleteTest).Methods("DELETE")
}
