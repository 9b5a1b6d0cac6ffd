package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/takab/inventario-golang/internal/handlers"
	"github.com/takab/inventario-golang/internal/middleware"
	"github.com/takab/inventario-golang/internal/policy"
)

// SetupRouter configures all API routes and returns the gin engine.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// The frontend runs on a different origin in development, so allow
	// everything and accept the Authorization header.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	v1 := router.Group("/v1")
	{
		// --- Public Routes ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})
		v1.POST("/login", h.Login)

		// --- Protected Routes ---
		authed := v1.Group("/")
		authed.Use(middleware.AuthMiddleware())
		{
			// Dashboard: every role, scoped by the handler.
			authed.GET("/dashboard", middleware.Authorize(policy.ActionViewDashboard), h.GetDashboardStats)

			// Product catalog: readable by everyone who is logged in.
			view := authed.Group("/")
			view.Use(middleware.Authorize(policy.ActionViewProducts))
			{
				view.GET("/productos", h.GetProducts)
				view.GET("/productos/buscar", h.SearchProducts)
				view.GET("/productos/bajo-stock", h.GetLowStockProducts)
				view.GET("/productos/:id", h.GetProduct)
				view.GET("/categorias", h.GetCategorias)
				view.GET("/proveedores", h.GetProveedores)
				view.GET("/almacenes", h.GetAlmacenes)
				view.GET("/unidades", h.GetUnidades)
			}

			// Product mutations: warehouse staff and admins.
			products := authed.Group("/productos")
			products.Use(middleware.Authorize(policy.ActionManageProducts))
			{
				products.POST("", h.CreateProduct)
				products.PUT("/:id", h.UpdateProduct)
				products.DELETE("/:id", h.DeleteProduct)
			}

			// Lookup table mutations: warehouse staff and admins.
			catalog := authed.Group("/")
			catalog.Use(middleware.Authorize(policy.ActionManageCatalog))
			{
				catalog.POST("/categorias", h.CreateCategoria)
				catalog.PUT("/categorias/:id", h.UpdateCategoria)
				catalog.DELETE("/categorias/:id", h.DeleteCategoria)

				catalog.POST("/proveedores", h.CreateProveedor)
				catalog.PUT("/proveedores/:id", h.UpdateProveedor)
				catalog.DELETE("/proveedores/:id", h.DeleteProveedor)

				catalog.POST("/almacenes", h.CreateAlmacen)
				catalog.PUT("/almacenes/:id", h.UpdateAlmacen)
				catalog.DELETE("/almacenes/:id", h.DeleteAlmacen)

				catalog.POST("/unidades", h.CreateUnidad)
				catalog.PUT("/unidades/:id", h.UpdateUnidad)
				catalog.DELETE("/unidades/:id", h.DeleteUnidad)
			}

			// Material requests: listing is allowed for every role and
			// scoped inside the handler.
			solicitudes := authed.Group("/solicitudes")
			{
				solicitudes.GET("", middleware.Authorize(policy.ActionViewRequests), h.GetSolicitudes)
				solicitudes.GET("/:id", middleware.Authorize(policy.ActionViewRequests), h.GetSolicitud)
				solicitudes.POST("", middleware.Authorize(policy.ActionCreateRequest), h.CreateSolicitud)

				review := solicitudes.Group("/")
				review.Use(middleware.Authorize(policy.ActionReviewRequest))
				{
					review.PATCH("/:id/aprobar", h.ApproveSolicitud)
					review.PATCH("/:id/rechazar", h.RejectSolicitud)
					review.PATCH("/:id/entregar", h.DeliverSolicitud)
					review.PATCH("/:id/devolver", h.ReturnSolicitud)
				}
			}

			// User management: admin only.
			users := authed.Group("/usuarios")
			users.Use(middleware.Authorize(policy.ActionManageUsers))
			{
				users.GET("", h.GetUsers)
				users.POST("", h.CreateUser)
				users.PUT("/:id", h.UpdateUser)
				users.DELETE("/:id", h.DeleteUser)
				users.DELETE("/:id/permanente", h.PermanentlyDeleteUser)
				users.PATCH("/:id/estado", h.ToggleUserStatus)
			}
		}
	}

	return router
}
