// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homestay/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CountryHandler *handler.CountryHandler
	CityHandler    *handler.CityHandler
	AmenityHandler *handler.AmenityHandler
	ReviewHandler  *handler.ReviewHandler
	PlaceHandler   *handler.PlaceHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	countryHandler *handler.CountryHandler
	cityHandler    *handler.CityHandler
	amenityHandler *handler.AmenityHandler
	reviewHandler  *handler.ReviewHandler
	placeHandler   *handler.PlaceHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		countryHandler: params.CountryHandler,
		cityHandler:    params.CityHandler,
		amenityHandler: params.AmenityHandler,
		reviewHandler:  params.ReviewHandler,
		placeHandler:   params.PlaceHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	userGroup := api.Group("/users")
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.POST("", r.userHandler.Create)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.PUT("/:id", r.userHandler.Update)
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}

	// Countries are addressed by alpha code and cannot be deleted.
	countryGroup := api.Group("/countries")
	{
		countryGroup.GET("", r.countryHandler.List)
		countryGroup.POST("", r.countryHandler.Create)
		countryGroup.GET("/:code", r.countryHandler.Get)
		countryGroup.PUT("/:code", r.countryHandler.Update)
		countryGroup.GET("/:code/cities", r.countryHandler.Cities)
	}

	cityGroup := api.Group("/cities")
	{
		cityGroup.GET("", r.cityHandler.List)
		cityGroup.POST("", r.cityHandler.Create)
		cityGroup.GET("/:id", r.cityHandler.Get)
		cityGroup.PUT("/:id", r.cityHandler.Update)
		cityGroup.DELETE("/:id", r.cityHandler.Delete)
		cityGroup.GET("/:id/country", r.cityHandler.Country)
	}

	amenityGroup := api.Group("/amenities")
	{
		amenityGroup.GET("", r.amenityHandler.List)
		amenityGroup.POST("", r.amenityHandler.Create)
		amenityGroup.GET("/:id", r.amenityHandler.Get)
		amenityGroup.PUT("/:id", r.amenityHandler.Update)
		amenityGroup.DELETE("/:id", r.amenityHandler.Delete)
		amenityGroup.GET("/:id/places", r.amenityHandler.Places)
	}

	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.GET("", r.reviewHandler.List)
		reviewGroup.POST("", r.reviewHandler.Create)
		reviewGroup.GET("/:id", r.reviewHandler.Get)
		reviewGroup.PUT("/:id", r.reviewHandler.Update)
		reviewGroup.DELETE("/:id", r.reviewHandler.Delete)
		reviewGroup.GET("/:id/place", r.reviewHandler.Place)
		reviewGroup.GET("/:id/user", r.reviewHandler.User)
	}

	placeGroup := api.Group("/places")
	{
		placeGroup.GET("", r.placeHandler.List)
		placeGroup.POST("", r.placeHandler.Create)
		placeGroup.GET("/:id", r.placeHandler.Get)
		placeGroup.PUT("/:id", r.placeHandler.Update)
		placeGroup.DELETE("/:id", r.placeHandler.Delete)
		placeGroup.GET("/:id/user", r.placeHandler.Host)
		placeGroup.GET("/:id/city", r.placeHandler.City)
		placeGroup.GET("/:id/reviews", r.placeHandler.Reviews)
		placeGroup.GET("/:id/amenities", r.placeHandler.Amenities)
		placeGroup.POST("/:id/amenities/:amenity_id", r.placeHandler.AttachAmenity)
		placeGroup.DELETE("/:id/amenities/:amenity_id", r.placeHandler.DetachAmenity)
	}
}
