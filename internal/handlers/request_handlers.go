package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/takab/inventario-golang/internal/models"
)

// --- Material Request Handlers ---

func requestActor(c *gin.Context) (int64, string) {
	userID, _ := c.Get("userID")
	return userID.(int64), c.GetString("userRole")
}

// CreateSolicitud is the handler for POST /v1/solicitudes. Requests always
// start in 'pendiente'; the author is taken from the session, never the body.
func (h *Handlers) CreateSolicitud(c *gin.Context) {
	empleadoID, _ := requestActor(c)

	var input models.CrearSolicitudInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solicitudID, err := h.Requests.Create(empleadoID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Request created successfully",
		"solicitud_id": solicitudID,
		"estado":       models.SolicitudPendiente,
	})
}

// GetSolicitudes is the handler for GET /v1/solicitudes. Warehouse staff and
// admins see everything; employees see only their own.
func (h *Handlers) GetSolicitudes(c *gin.Context) {
	actorID, role := requestActor(c)

	var solicitudes []models.SolicitudMaterial
	var err error

	if role == models.RoleEmpleado {
		solicitudes, err = h.Requests.GetByEmpleado(actorID)
	} else {
		solicitudes, err = h.Requests.GetAll()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	if solicitudes == nil {
		solicitudes = []models.SolicitudMaterial{}
	}
	c.JSON(http.StatusOK, gin.H{"solicitudes": solicitudes})
}

// GetSolicitud is the handler for GET /v1/solicitudes/:id. An employee asking
// for someone else's request gets a 404, not a 403; the id space is not
// theirs to probe.
func (h *Handlers) GetSolicitud(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return
	}

	actorID, role := requestActor(c)

	solicitud, err := h.Requests.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if solicitud == nil || (role == models.RoleEmpleado && solicitud.EmpleadoID != actorID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"solicitud": solicitud})
}

// transitionTarget loads the request and verifies the state machine allows
// the move. Terminal states and skipped states are refused here, before any
// write is attempted.
func (h *Handlers) transitionTarget(c *gin.Context, to string) (*models.SolicitudMaterial, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return nil, false
	}

	solicitud, err := h.Requests.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return nil, false
	}
	if solicitud == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return nil, false
	}

	if !models.CanTransition(solicitud.Estado, to) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Invalid transition from '" + solicitud.Estado + "' to '" + to + "'",
		})
		return nil, false
	}
	return solicitud, true
}

// ApproveSolicitud is the handler for PATCH /v1/solicitudes/:id/aprobar.
func (h *Handlers) ApproveSolicitud(c *gin.Context) {
	actorID, _ := requestActor(c)

	solicitud, ok := h.transitionTarget(c, models.SolicitudAprobado)
	if !ok {
		return
	}

	approved, err := h.Requests.Approve(solicitud.ID, actorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve request"})
		return
	}
	if !approved {
		c.JSON(http.StatusConflict, gin.H{"error": "Request was not pending"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request approved successfully"})
}

// RejectSolicitud is the handler for PATCH /v1/solicitudes/:id/rechazar.
func (h *Handlers) RejectSolicitud(c *gin.Context) {
	actorID, _ := requestActor(c)

	solicitud, ok := h.transitionTarget(c, models.SolicitudRechazado)
	if !ok {
		return
	}

	rejected, err := h.Requests.Reject(solicitud.ID, actorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject request"})
		return
	}
	if !rejected {
		c.JSON(http.StatusConflict, gin.H{"error": "Request was not pending"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request rejected"})
}

// DeliverSolicitudInput lists per-item delivered quantities.
type DeliverSolicitudInput struct {
	Items []models.EntregaItem `json:"items" binding:"required,min=1,dive"`
}

// DeliverSolicitud is the handler for PATCH /v1/solicitudes/:id/entregar.
// Delivered quantities may not exceed requested quantities; stock moves in
// the same transaction.
func (h *Handlers) DeliverSolicitud(c *gin.Context) {
	solicitud, ok := h.transitionTarget(c, models.SolicitudEntregado)
	if !ok {
		return
	}

	var input DeliverSolicitudInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivered, err := h.Requests.Deliver(solicitud.ID, input.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !delivered {
		c.JSON(http.StatusConflict, gin.H{"error": "Request was not approved"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request delivered successfully"})
}

// ReturnSolicitudInput lists per-item returned quantities and conditions.
type ReturnSolicitudInput struct {
	Items []models.DevolucionItem `json:"items" binding:"required,min=1,dive"`
}

// ReturnSolicitud is the handler for PATCH /v1/solicitudes/:id/devolver.
// Returned quantities may not exceed delivered quantities; usable
// non-consumables are restocked.
func (h *Handlers) ReturnSolicitud(c *gin.Context) {
	solicitud, ok := h.transitionTarget(c, models.SolicitudDevuelto)
	if !ok {
		return
	}

	var input ReturnSolicitudInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	returned, err := h.Requests.Return(solicitud.ID, input.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !returned {
		c.JSON(http.StatusConflict, gin.H{"error": "Request was not delivered"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request returned successfully"})
}
