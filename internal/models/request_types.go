package models

import "time"

// Material request lifecycle states.
const (
	SolicitudPendiente = "pendiente"
	SolicitudAprobado  = "aprobado"
	SolicitudEntregado = "entregado"
	SolicitudDevuelto  = "devuelto"
	SolicitudRechazado = "rechazado"
)

// Return conditions for request items.
const (
	DevolucionBueno   = "Bueno"
	DevolucionDanado  = "Dañado"
	DevolucionPerdido = "Perdido"
)

// transiciones is the single source of truth for the request state machine:
// pendiente -> aprobado -> entregado -> devuelto, with pendiente -> rechazado
// as the alternate terminal branch.
var transiciones = map[string][]string{
	SolicitudPendiente: {SolicitudAprobado, SolicitudRechazado},
	SolicitudAprobado:  {SolicitudEntregado},
	SolicitudEntregado: {SolicitudDevuelto},
	SolicitudDevuelto:  {},
	SolicitudRechazado: {},
}

// CanTransition reports whether a request in state 'from' may move to 'to'.
func CanTransition(from, to string) bool {
	for _, next := range transiciones[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible from estado.
func IsTerminal(estado string) bool {
	next, ok := transiciones[estado]
	return ok && len(next) == 0
}

// SolicitudMaterial is an employee-initiated material request.
type SolicitudMaterial struct {
	ID             int64  `json:"id" db:"id"`
	EmpleadoID     int64  `json:"empleado_id" db:"empleado_id"`
	EmpleadoNombre string `json:"empleado_nombre" db:"-"`

	FechaSolicitud time.Time `json:"fecha_solicitud" db:"fecha_solicitud"`
	Estado         string    `json:"estado" db:"estado"`
	Comentario     string    `json:"comentario" db:"comentario"`
	Proyecto       *string   `json:"proyecto,omitempty" db:"proyecto"`

	AprobadoPor     *int64     `json:"aprobado_por,omitempty" db:"aprobado_por"`
	FechaAprobacion *time.Time `json:"fecha_aprobacion,omitempty" db:"fecha_aprobacion"`
	FechaEntrega    *time.Time `json:"fecha_entrega,omitempty" db:"fecha_entrega"`
	FechaDevolucion *time.Time `json:"fecha_devolucion,omitempty" db:"fecha_devolucion"`

	Items []ItemSolicitud `json:"items"`
}

// ItemSolicitud is one requested product line. Delivered and returned
// quantities are tracked per line, independently of the parent status.
type ItemSolicitud struct {
	ID             int64  `json:"id" db:"id"`
	SolicitudID    int64  `json:"solicitud_id" db:"solicitud_id"`
	ProductoID     int64  `json:"producto_id" db:"producto_id"`
	ProductoNombre string `json:"producto_nombre" db:"-"`

	Cantidad     int  `json:"cantidad" db:"cantidad"`
	EsConsumible bool `json:"es_consumible" db:"es_consumible"`

	CantidadEntregada *int    `json:"cantidad_entregada,omitempty" db:"cantidad_entregada"`
	CantidadDevuelta  *int    `json:"cantidad_devuelta,omitempty" db:"cantidad_devuelta"`
	EstadoDevolucion  *string `json:"estado_devolucion,omitempty" db:"estado_devolucion"`
}

// CrearSolicitudInput is the payload an employee submits. Requests always
// start in 'pendiente'.
type CrearSolicitudInput struct {
	Comentario string               `json:"comentario"`
	Proyecto   *string              `json:"proyecto,omitempty"`
	Items      []CrearItemSolicitud `json:"items" binding:"required,min=1,dive"`
}

// CrearItemSolicitud is one line of a new request.
type CrearItemSolicitud struct {
	ProductoID   int64 `json:"producto_id" binding:"required"`
	Cantidad     int   `json:"cantidad" binding:"required,gt=0"`
	EsConsumible bool  `json:"es_consumible"`
}

// EntregaItem records how many units of one request line were handed out.
// Delivered quantity may not exceed the requested quantity.
type EntregaItem struct {
	ItemID            int64 `json:"item_id" binding:"required"`
	CantidadEntregada int   `json:"cantidad_entregada" binding:"gte=0"`
}

// DevolucionItem records how many units of one request line came back and in
// what condition. Returned quantity may not exceed the delivered quantity.
type DevolucionItem struct {
	ItemID           int64  `json:"item_id" binding:"required"`
	CantidadDevuelta int    `json:"cantidad_devuelta" binding:"gte=0"`
	EstadoDevolucion string `json:"estado_devolucion" binding:"required,oneof=Bueno Dañado Perdido"`
}
