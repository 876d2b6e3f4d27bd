package http

import (
	"context"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gearshift-labs/partsdepot/internal/domain/contract"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
	"github.com/gearshift-labs/partsdepot/internal/gatekeeper"
	"github.com/gearshift-labs/partsdepot/internal/handler/http/middleware"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/logger"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/session"
	"github.com/gearshift-labs/partsdepot/internal/validation"
)

type Router struct {
	userHandler      *UserHandler
	carHandler       *CarHandler
	sparePartHandler *SparePartHandler
	orderHandler     *OrderHandler
	authHandler      *AuthHandler

	users contract.IUserRepository
	cars  contract.ICarRepository
	parts contract.ISparePartRepository
	codec *session.Codec
}

func NewRouter(
	users contract.IUserRepository,
	cars contract.ICarRepository,
	parts contract.ISparePartRepository,
	orders contract.IOrderRepository,
	codec *session.Codec,
	appLogger logger.Logger,
	baseURL, githubClientID, githubClientSecret string,
) *Router {
	return &Router{
		userHandler:      NewUserHandler(users, appLogger),
		carHandler:       NewCarHandler(cars, appLogger),
		sparePartHandler: NewSparePartHandler(parts, appLogger),
		orderHandler:     NewOrderHandler(orders, appLogger),
		authHandler:      NewAuthHandler(users, codec, appLogger, baseURL, githubClientID, githubClientSecret),
		users:            users,
		cars:             cars,
		parts:            parts,
		codec:            codec,
	}
}

// SparePartHandler exposes the handler so the optional catalog cache can be
// wired in after construction.
func (r *Router) SparePartHandler() *SparePartHandler {
	return r.sparePartHandler
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Register(router)
}

// Register attaches the session middleware and every application route.
// SetupRoutes wraps it with the outer CORS, rate-limit and metrics layers.
func (r *Router) Register(router *gin.Engine) {
	router.Use(middleware.Session(r.codec, r.users))

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Hello World")
	})

	// GitHub OAuth endpoints
	auth := router.Group("/auth")
	{
		auth.GET("/github/login", r.authHandler.HandleGithubLogin)
		auth.GET("/github/callback", r.authHandler.HandleGithubCallback)
	}
	router.GET("/logout", r.authHandler.Logout)

	userLoader := loadUser(r.users)
	carLoader := loadCar(r.cars)

	users := router.Group("/users")
	{
		users.GET("", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeRole(entity.UserRoleAdmin, entity.UserRoleEmployee),
		), r.userHandler.GetUsers)
		users.GET("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeRole(entity.UserRoleAdmin, entity.UserRoleEmployee),
		), r.userHandler.GetUser)
		users.PUT("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeSelfOrRole(entity.UserRoleAdmin),
			gatekeeper.RestrictFieldUpdate("role", "Forbidden: Only admins can update roles.", entity.UserRoleAdmin),
			gatekeeper.RejectEmptyBody(),
			gatekeeper.RequireEntityExists("User", userLoader),
			gatekeeper.RejectNoOpUpdate(entity.UserUpdateFields),
			gatekeeper.ValidateSchema(&validation.UserSchema, validation.Update),
		), r.userHandler.UpdateUser)
		users.DELETE("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeSelfOrRole(entity.UserRoleAdmin),
		), r.userHandler.DeleteUser)
	}

	cars := router.Group("/cars")
	{
		cars.GET("", middleware.Gatekeep(
			gatekeeper.Authenticate(),
		), r.carHandler.GetCars)
		cars.GET("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
		), r.carHandler.GetCar)
		cars.POST("", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.RejectEmptyBody(),
			gatekeeper.ValidateSchema(&validation.CarSchema, validation.Create),
		), r.carHandler.CreateCar)
		cars.PUT("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.RejectEmptyBody(),
			gatekeeper.AuthorizeResourceOwnership("Car", carLoader, "Forbidden: You do not own this car."),
			gatekeeper.RejectNoOpUpdate(entity.CarUpdateFields),
			gatekeeper.ValidateSchema(&validation.CarSchema, validation.Update),
		), r.carHandler.UpdateCar)
		cars.DELETE("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeResourceOwnership("Car", carLoader, "Forbidden: You do not own this car."),
		), r.carHandler.DeleteCar)
	}

	spareParts := router.Group("/spare-parts")
	{
		spareParts.GET("", middleware.Gatekeep(
			gatekeeper.Authenticate(),
		), r.sparePartHandler.GetSpareParts)
		spareParts.GET("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
		), r.sparePartHandler.GetSparePart)
		spareParts.POST("", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeRole(entity.UserRoleAdmin, entity.UserRoleEmployee),
			gatekeeper.RejectEmptyBody(),
			gatekeeper.ValidateSchema(&validation.SparePartSchema, validation.Create),
		), r.sparePartHandler.CreateSparePart)
		spareParts.PUT("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeRole(entity.UserRoleAdmin, entity.UserRoleEmployee),
			gatekeeper.RejectEmptyBody(),
			gatekeeper.RequireEntityExists("Spare Part", loadSparePart(r.parts)),
			gatekeeper.RejectNoOpUpdate(entity.SparePartUpdateFields),
			gatekeeper.ValidateSchema(&validation.SparePartSchema, validation.Update),
		), r.sparePartHandler.UpdateSparePart)
		spareParts.DELETE("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeRole(entity.UserRoleAdmin, entity.UserRoleEmployee),
		), r.sparePartHandler.DeleteSparePart)
	}

	r.setupOrderRoutes(router)
}

func (r *Router) setupOrderRoutes(router *gin.Engine) {
	orderLoader := loadOrder(r.orderHandler.orders)

	orders := router.Group("/orders")
	{
		orders.GET("", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeRole(entity.UserRoleAdmin, entity.UserRoleEmployee),
		), r.orderHandler.GetOrders)
		orders.GET("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeRole(entity.UserRoleAdmin, entity.UserRoleEmployee),
		), r.orderHandler.GetOrder)
		orders.POST("", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.RejectEmptyBody(),
			gatekeeper.ValidateSchema(&validation.OrderSchema, validation.Create),
			gatekeeper.ValidateOrderItems(r.parts),
		), r.orderHandler.CreateOrder)
		orders.PUT("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeRole(entity.UserRoleAdmin, entity.UserRoleEmployee),
			gatekeeper.RejectEmptyBody(),
			gatekeeper.RequireEntityExists("Order", orderLoader),
			gatekeeper.RejectNoOpUpdate(entity.OrderUpdateFields),
			gatekeeper.ValidateSchema(&validation.OrderSchema, validation.Update),
			gatekeeper.ValidateOrderItems(r.parts),
		), r.orderHandler.UpdateOrder)
		orders.DELETE("/:id", middleware.Gatekeep(
			gatekeeper.Authenticate(),
			gatekeeper.AuthorizeRole(entity.UserRoleAdmin, entity.UserRoleEmployee),
		), r.orderHandler.DeleteOrder)
	}
}

// The loaders adapt typed repositories to the gatekeeper's Loader shape. The
// typed nil must be converted explicitly or the interface compare breaks.

func loadUser(users contract.IUserRepository) gatekeeper.Loader {
	return func(ctx context.Context, id string) (gatekeeper.Resource, error) {
		user, err := users.GetUserByID(ctx, id)
		if err != nil || user == nil {
			return nil, err
		}
		return user, nil
	}
}

func loadCar(cars contract.ICarRepository) gatekeeper.Loader {
	return func(ctx context.Context, id string) (gatekeeper.Resource, error) {
		car, err := cars.GetCarByID(ctx, id)
		if err != nil || car == nil {
			return nil, err
		}
		return car, nil
	}
}

func loadSparePart(parts contract.ISparePartRepository) gatekeeper.Loader {
	return func(ctx context.Context, id string) (gatekeeper.Resource, error) {
		part, err := parts.GetSparePartByID(ctx, id)
		if err != nil || part == nil {
			return nil, err
		}
		return part, nil
	}
}

func loadOrder(orders contract.IOrderRepository) gatekeeper.Loader {
	return func(ctx context.Context, id string) (gatekeeper.Resource, error) {
		order, err := orders.GetOrderByID(ctx, id)
		if err != nil || order == nil {
			return nil, err
		}
		return order, nil
	}
}
