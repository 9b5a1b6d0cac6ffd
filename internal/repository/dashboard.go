package repository

import (
	"database/sql"
	"fmt"

	"github.com/takab/inventario-golang/internal/models"
)

// DashboardRepository composes the counting queries behind the dashboard.
// Nothing here is cached; every call recomputes from the store.
type DashboardRepository struct {
	DB *sql.DB
}

// toolsOnLoan counts non-consumable units that were handed out and have not
// come back: delivered quantity minus returned quantity on delivered
// requests. The optional filter narrows it to one employee.
const toolsOnLoanQuery = `
	SELECT COALESCE(SUM(i.cantidad_entregada - COALESCE(i.cantidad_devuelta, 0)), 0)
	FROM items_solicitudes i
	JOIN solicitudes_materiales sm ON i.solicitud_id = sm.id
	WHERE i.es_consumible = 0
	  AND i.cantidad_entregada IS NOT NULL
	  AND sm.estado = 'entregado'`

// AdminStats computes the full admin view.
func (r *DashboardRepository) AdminStats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := r.DB.QueryRow("SELECT COUNT(*) FROM productos").Scan(&stats.TotalProductos)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow("SELECT COUNT(*) FROM productos WHERE stock_actual <= stock_minimo").Scan(&stats.ProductosBajoStock)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow("SELECT COUNT(*) FROM solicitudes_materiales WHERE estado = 'pendiente'").Scan(&stats.SolicitudesPendientes)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(toolsOnLoanQuery).Scan(&stats.HerramientasPrestadas)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow("SELECT COALESCE(SUM(stock_actual * COALESCE(costo_compra, 0)), 0) FROM productos").Scan(&stats.ValorInventario)
	if err != nil {
		return nil, err
	}

	stats.Alertas, err = r.lowStockAlerts(10)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// AlmacenStats computes the operational counts for warehouse staff.
func (r *DashboardRepository) AlmacenStats() (*models.AlmacenStats, error) {
	stats := &models.AlmacenStats{}

	err := r.DB.QueryRow("SELECT COUNT(*) FROM solicitudes_materiales WHERE estado = 'pendiente'").Scan(&stats.SolicitudesPendientes)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow("SELECT COUNT(*) FROM solicitudes_materiales WHERE estado = 'entregado' AND DATE(fecha_entrega) = CURDATE()").Scan(&stats.EntregasHoy)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(toolsOnLoanQuery).Scan(&stats.HerramientasPrestadas)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow("SELECT COUNT(*) FROM productos WHERE stock_actual <= stock_minimo").Scan(&stats.ProductosBajoStock)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// EmpleadoStats computes the personal view for one employee.
func (r *DashboardRepository) EmpleadoStats(empleadoID int64) (*models.EmpleadoStats, error) {
	stats := &models.EmpleadoStats{}

	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM solicitudes_materiales WHERE empleado_id = ? AND estado IN ('pendiente', 'aprobado', 'entregado')",
		empleadoID,
	).Scan(&stats.SolicitudesActivas)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(
		"SELECT COUNT(*) FROM solicitudes_materiales WHERE empleado_id = ? AND estado = 'pendiente'",
		empleadoID,
	).Scan(&stats.SolicitudesPendientes)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(toolsOnLoanQuery+" AND sm.empleado_id = ?", empleadoID).Scan(&stats.HerramientasEnUso)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// lowStockAlerts builds the capped alert list for the admin dashboard.
func (r *DashboardRepository) lowStockAlerts(limit int) ([]models.Alerta, error) {
	query := `
		SELECT nombre, fecha_creacion
		FROM productos
		WHERE stock_actual <= stock_minimo
		ORDER BY stock_actual ASC
		LIMIT ?`

	rows, err := r.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alertas := []models.Alerta{}
	for rows.Next() {
		var nombre string
		var fecha sql.NullTime

		if err := rows.Scan(&nombre, &fecha); err != nil {
			return nil, err
		}

		alerta := models.Alerta{
			ID:        int64(len(alertas) + 1),
			Tipo:      models.AlertaStockBajo,
			Mensaje:   fmt.Sprintf("Producto %s por debajo del stock mínimo", nombre),
			Prioridad: models.PrioridadAlta,
		}
		if fecha.Valid {
			alerta.Fecha = fecha.Time.Format("2006-01-02")
		}
		alertas = append(alertas, alerta)
	}
	return alertas, rows.Err()
}
