package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merchstore/internal/handler/api"
	"merchstore/internal/handler/middleware"
	"merchstore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, productHandler *api.ProductHandler, inventoryHandler *api.InventoryHandler, checkoutHandler *api.CheckoutHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, productHandler, inventoryHandler, checkoutHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, productHandler *api.ProductHandler, inventoryHandler *api.InventoryHandler, checkoutHandler *api.CheckoutHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: productHandler.GetProduct},
				{Method: http.MethodPost, Path: "/:id/orders", Handler: checkoutHandler.Purchase},
			})

			admin := products.Group("")
			admin.Use(authMiddleware.RequireAuth())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: productHandler.CreateProduct},
				{Method: http.MethodPatch, Path: "/:id", Handler: productHandler.UpdateProduct},
				{Method: http.MethodDelete, Path: "/:id", Handler: productHandler.DestroyProduct},
				{Method: http.MethodGet, Path: "/:id/inventory", Handler: inventoryHandler.GetInventory},
				{Method: http.MethodPut, Path: "/:id/inventory", Handler: inventoryHandler.SetInventory},
				{Method: http.MethodPost, Path: "/:id/items", Handler: inventoryHandler.AddItems},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
