package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/keepsafe/internal/api/handlers/notification"
	"github.com/aliskhannn/keepsafe/internal/api/handlers/premium"
	"github.com/aliskhannn/keepsafe/internal/api/handlers/product"
	"github.com/aliskhannn/keepsafe/internal/api/handlers/settings"
	"github.com/aliskhannn/keepsafe/internal/api/handlers/shopping"
)

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Product      *product.Handler
	Shopping     *shopping.Handler
	Notification *notification.Handler
	Premium      *premium.Handler
	Settings     *settings.Handler
	Metrics      http.Handler
}

func New(h Handlers) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	if h.Metrics != nil {
		e.GET("/metrics", func(c *ginext.Context) {
			h.Metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	api := e.Group("/api")

	products := api.Group("/products")
	products.POST("", h.Product.Create)
	products.GET("", h.Product.List)
	products.GET("/:id", h.Product.Get)
	products.PUT("/:id", h.Product.Update)
	products.DELETE("/:id", h.Product.Delete)

	items := api.Group("/shopping")
	items.POST("", h.Shopping.Create)
	items.GET("", h.Shopping.List)
	items.PATCH("/:id/toggle", h.Shopping.Toggle)
	items.DELETE("/:id", h.Shopping.Delete)

	notifications := api.Group("/notifications")
	notifications.GET("/pending", h.Notification.Pending)
	notifications.GET("/permission", h.Notification.Permission)
	notifications.PUT("/permission", h.Notification.SetPermission)
	notifications.POST("/reschedule", h.Notification.Reschedule)
	notifications.GET("/deliveries", h.Notification.Deliveries)
	notifications.DELETE("", h.Notification.CancelAll)

	api.GET("/premium", h.Premium.Get)
	api.PUT("/premium", h.Premium.Set)

	prefs := api.Group("/settings")
	prefs.GET("", h.Settings.Get)
	prefs.PUT("", h.Settings.Update)
	prefs.POST("/reset", h.Settings.Reset)
	prefs.GET("/export", h.Settings.Export)
	prefs.POST("/import", h.Settings.Import)

	return e
}
