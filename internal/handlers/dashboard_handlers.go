package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takab/inventario-golang/internal/models"
)

// GetDashboardStats is the handler for GET /v1/dashboard. Every role gets a
// dashboard, but the shape depends on who is asking.
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	actorID, role := requestActor(c)

	switch role {
	case models.RoleAdmin:
		stats, err := h.Stats.AdminStats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats})

	case models.RoleAlmacen:
		stats, err := h.Stats.AlmacenStats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats})

	case models.RoleEmpleado:
		stats, err := h.Stats.EmpleadoStats(actorID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats})

	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	}
}
