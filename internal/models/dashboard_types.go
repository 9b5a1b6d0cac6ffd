package models

// Alert priorities and types surfaced on the admin dashboard.
const (
	AlertaStockBajo = "stock_bajo"

	PrioridadAlta  = "alta"
	PrioridadMedia = "media"
	PrioridadBaja  = "baja"
)

// Alerta is a dashboard warning row. It is computed, never persisted.
type Alerta struct {
	ID        int64  `json:"id"`
	Tipo      string `json:"tipo"`
	Mensaje   string `json:"mensaje"`
	Fecha     string `json:"fecha"`
	Prioridad string `json:"prioridad"`
}

// DashboardStats is the admin view: full inventory and request KPIs.
type DashboardStats struct {
	TotalProductos        int      `json:"total_productos"`
	ProductosBajoStock    int      `json:"productos_bajo_stock"`
	SolicitudesPendientes int      `json:"solicitudes_pendientes"`
	HerramientasPrestadas int      `json:"herramientas_prestadas"`
	ValorInventario       float64  `json:"valor_inventario"`
	Alertas               []Alerta `json:"alertas"`
}

// AlmacenStats is the warehouse-staff view: operational counts only.
type AlmacenStats struct {
	SolicitudesPendientes int `json:"solicitudes_pendientes"`
	EntregasHoy           int `json:"entregas_hoy"`
	HerramientasPrestadas int `json:"herramientas_prestadas"`
	ProductosBajoStock    int `json:"productos_bajo_stock"`
}

// EmpleadoStats is the personal view for a single employee.
type EmpleadoStats struct {
	SolicitudesActivas    int `json:"solicitudes_activas"`
	SolicitudesPendientes int `json:"solicitudes_pendientes"`
	HerramientasEnUso     int `json:"herramientas_en_uso"`
}
