// Package router wires the bridge's handlers to their paths.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CartHandler       *handler.CartHandler
	ProfileHandler    *handler.ProfileHandler
	OrderHandler      *handler.OrderHandler
	StoreHandler      *handler.StoreHandler
	NavigationHandler *handler.NavigationHandler
	RoleMiddleware    *middleware.RoleMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	cartHandler       *handler.CartHandler
	profileHandler    *handler.ProfileHandler
	orderHandler      *handler.OrderHandler
	storeHandler      *handler.StoreHandler
	navigationHandler *handler.NavigationHandler
	roleMiddleware    *middleware.RoleMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		cartHandler:       params.CartHandler,
		profileHandler:    params.ProfileHandler,
		orderHandler:      params.OrderHandler,
		storeHandler:      params.StoreHandler,
		navigationHandler: params.NavigationHandler,
		roleMiddleware:    params.RoleMiddleware,
	}
}

// RegisterRoutes sets up all the bridge routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.GET("/state", r.authHandler.GetState)
		authGroup.PUT("/phone", r.authHandler.SetPhone)
		authGroup.PUT("/role", r.authHandler.SetRole)
		authGroup.POST("/otp/verify", r.authHandler.VerifyOTP)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/switch-role", r.authHandler.SwitchRole)
		authGroup.PATCH("/user", r.authHandler.UpdateUser)
	}

	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.GET("/summary", r.cartHandler.Summary)
		cartGroup.GET("/stores", r.cartHandler.ItemsByStore)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	profileGroup := e.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.SetProfile)
		profileGroup.POST("/addresses", r.profileHandler.AddAddress)
		profileGroup.PUT("/addresses/:id", r.profileHandler.UpdateAddress)
		profileGroup.DELETE("/addresses/:id", r.profileHandler.RemoveAddress)
		profileGroup.POST("/addresses/:id/default", r.profileHandler.SetDefaultAddress)
		profileGroup.POST("/searches", r.profileHandler.AddRecentSearch)
		profileGroup.DELETE("/searches", r.profileHandler.ClearRecentSearches)
		profileGroup.GET("/favorites", r.profileHandler.ListFavorites)
		profileGroup.POST("/favorites/:productID/toggle", r.profileHandler.ToggleFavorite)
		profileGroup.GET("/favorites/:productID", r.profileHandler.IsFavorite)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.roleMiddleware.RequireRole(entity.RoleCustomer))
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
	}

	storeGroup := e.Group("/store")
	storeGroup.Use(r.roleMiddleware.RequireRole(entity.RoleStore))
	{
		storeGroup.GET("/orders", r.orderHandler.ListOrders)
		storeGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus)
		storeGroup.GET("/settings", r.storeHandler.GetSettings)
		storeGroup.PUT("/settings", r.storeHandler.PutSettings)
	}

	navigationGroup := e.Group("/navigation")
	{
		navigationGroup.POST("/commit", r.navigationHandler.Commit)
		navigationGroup.GET("/ws", r.navigationHandler.Connect)
	}
}
