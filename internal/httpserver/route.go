package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	ListingHandler *ListingHTTP
	OrderHandler   *OrderHTTP
	UserHandler    *UserHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "PawMart Server is running and ready for API requests.")
	})

	listings := e.Group("/api/listings")
	listings.GET("", d.ListingHandler.GetListings)
	listings.GET("/recent", d.ListingHandler.GetRecentListings)
	listings.GET("/my-listings", d.ListingHandler.GetMyListings)
	listings.GET("/lists/:email", d.ListingHandler.GetMyListings)
	listings.GET("/:id", d.ListingHandler.GetListing)
	listings.POST("", d.ListingHandler.CreateListing)
	listings.POST("/add", d.ListingHandler.CreateListing)
	listings.POST("/batch", d.ListingHandler.CreateListingsBatch)
	listings.PUT("/:id", d.ListingHandler.UpdateListing)
	listings.DELETE("/:id", d.ListingHandler.DeleteListing)

	orders := e.Group("/api/orders")
	orders.GET("", d.OrderHandler.GetMyOrders)
	orders.GET("/my-orders", d.OrderHandler.GetMyOrders)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.POST("/batch", d.OrderHandler.CreateOrdersBatch)

	users := e.Group("/api/users")
	users.POST("", d.UserHandler.UpsertUser)
	users.GET("", d.UserHandler.GetUsers)
}
