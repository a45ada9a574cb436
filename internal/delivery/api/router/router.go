// Package router contains the route table of the API.
package router

import (
	"solarjuice/internal/delivery/api/middleware"
	"solarjuice/internal/delivery/api/router/handler"
	"solarjuice/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ShopHandler         *handler.ShopHandler
	MachineHandler      *handler.MachineHandler
	OrderHandler        *handler.OrderHandler
	RegistrationHandler *handler.RegistrationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	shopHandler         *handler.ShopHandler
	machineHandler      *handler.MachineHandler
	orderHandler        *handler.OrderHandler
	registrationHandler *handler.RegistrationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		shopHandler:         params.ShopHandler,
		machineHandler:      params.MachineHandler,
		orderHandler:        params.OrderHandler,
		registrationHandler: params.RegistrationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Everything under /api/v1 requires a valid access token
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/me", r.authHandler.Me)

	shopsGroup := apiV1.Group("/shops")
	{
		shopsGroup.GET("", r.shopHandler.ListNearby)
		shopsGroup.POST("/qr/resolve", r.shopHandler.ResolveQR)
		shopsGroup.GET("/:id", r.shopHandler.GetShop)
		shopsGroup.GET("/:id/machine", r.shopHandler.GetShopMachine)
		shopsGroup.GET("/:id/qr", r.shopHandler.GetShopQR)
	}

	machinesGroup := apiV1.Group("/machines")
	{
		machinesGroup.GET("/:id", r.machineHandler.GetMachine)
		machinesGroup.GET("/:id/status", r.machineHandler.GetMachineStatus)
	}

	customerGroup := apiV1.Group("/customer")
	customerGroup.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		customerGroup.POST("/shops/:id/select", r.shopHandler.SelectShop)
		customerGroup.GET("/shops/:id/directions", r.shopHandler.GetDirections)
		customerGroup.POST("/orders", r.orderHandler.CreateOrder)
		customerGroup.GET("/orders", r.orderHandler.ListCustomerOrders)
	}

	shopkeeperGroup := apiV1.Group("/shopkeeper")
	shopkeeperGroup.Use(r.authMiddleware.RequireRole(entity.RoleShopkeeper))
	{
		shopkeeperGroup.GET("/shop", r.shopHandler.GetMyShop)
		shopkeeperGroup.GET("/orders", r.orderHandler.ListShopOrders)
		shopkeeperGroup.POST("/orders/:id/process", r.orderHandler.ProcessOrder)
		shopkeeperGroup.POST("/orders/:id/complete", r.orderHandler.CompleteOrder)
		shopkeeperGroup.PATCH("/machines/:id", r.machineHandler.UpdateMachine)
		shopkeeperGroup.POST("/machines/:id/fan/cycle", r.machineHandler.CycleFan)
		shopkeeperGroup.POST("/machines/:id/speed/slider", r.machineHandler.SetSpeedFromSlider)
		shopkeeperGroup.POST("/registrations", r.registrationHandler.Submit)
		shopkeeperGroup.GET("/registrations", r.registrationHandler.ListMine)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/registrations", r.registrationHandler.List)
		adminGroup.POST("/registrations/:id/approve", r.registrationHandler.Approve)
		adminGroup.POST("/registrations/:id/reject", r.registrationHandler.Reject)
	}
}
