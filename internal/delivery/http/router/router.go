// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopfront/internal/delivery/http/middleware"
	"shopfront/internal/delivery/http/router/handler"
	"shopfront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	AddressHandler  *handler.AddressHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	addressHandler  *handler.AddressHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		addressHandler:  params.AddressHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/otp/request", r.sessionHandler.RequestOTP)
		authGroup.POST("/otp/verify", r.sessionHandler.VerifyOTP)
		authGroup.POST("/admin/login", r.sessionHandler.LoginWithPin)
	}

	// Catalog browsing is open to everyone
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.GET("/categories", r.catalogHandler.ListCategories)
	}

	// Cart routes work for guests too; Identify attaches the cart owner
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Identify)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productId", r.cartHandler.ChangeQuantity)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Address book and checkout require an identified customer
	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.AddAddress)
		addressGroup.GET("/selected", r.addressHandler.SelectedAddress)
		addressGroup.PUT("/selected", r.addressHandler.SelectAddress)
	}

	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("", r.checkoutHandler.PlaceOrder)
		checkoutGroup.POST("/service", r.checkoutHandler.PlaceServiceOrder)
		checkoutGroup.POST("/confirm", r.checkoutHandler.ConfirmPayment)
	}

	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.GET("", r.orderHandler.ListMyOrders)
	}

	// Operator routes require authentication and the "operator" role
	operatorGroup := e.Group("/operator")
	operatorGroup.Use(r.authMiddleware.Authenticate)
	operatorGroup.Use(r.authMiddleware.RequireRole(entity.RoleOperator))
	{
		operatorGroup.GET("/orders", r.orderHandler.ListAllOrders)
		operatorGroup.POST("/orders/:id/status", r.orderHandler.UpdateStatus)
		operatorGroup.GET("/stats", r.orderHandler.Stats)
		operatorGroup.POST("/catalog/products", r.catalogHandler.UpsertProduct)
	}
}
