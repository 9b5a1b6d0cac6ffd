package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/takab/inventario-golang/internal/models"
)

// RequestRepository owns the solicitudes_materiales and items_solicitudes
// tables, including stock movements tied to delivery and return.
type RequestRepository struct {
	DB *sql.DB
}

// Create inserts a new request with its items in one transaction. Requests
// always start in 'pendiente'; no stock moves until delivery.
func (r *RequestRepository) Create(empleadoID int64, in models.CrearSolicitudInput) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	// Every referenced product must exist before we commit anything.
	for _, item := range in.Items {
		var exists int
		if err := tx.QueryRow("SELECT COUNT(*) FROM productos WHERE id = ?", item.ProductoID).Scan(&exists); err != nil {
			return 0, err
		}
		if exists == 0 {
			return 0, fmt.Errorf("producto %d no existe", item.ProductoID)
		}
	}

	query := `
		INSERT INTO solicitudes_materiales (empleado_id, fecha_solicitud, estado, comentario, proyecto)
		VALUES (?, ?, ?, ?, ?)`

	result, err := tx.Exec(query, empleadoID, time.Now(), models.SolicitudPendiente, in.Comentario, in.Proyecto)
	if err != nil {
		log.Printf("Error al crear solicitud: %v", err)
		return 0, err
	}

	solicitudID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	itemQuery := `
		INSERT INTO items_solicitudes (solicitud_id, producto_id, cantidad, es_consumible)
		VALUES (?, ?, ?, ?)`

	for _, item := range in.Items {
		if _, err := tx.Exec(itemQuery, solicitudID, item.ProductoID, item.Cantidad, item.EsConsumible); err != nil {
			log.Printf("Error al crear item de solicitud: %v", err)
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return solicitudID, nil
}

const solicitudColumns = `
	sm.id, sm.empleado_id, u.name, sm.fecha_solicitud, sm.estado, sm.comentario,
	sm.proyecto, sm.aprobado_por, sm.fecha_aprobacion, sm.fecha_entrega, sm.fecha_devolucion`

func scanSolicitud(row interface{ Scan(...any) error }) (*models.SolicitudMaterial, error) {
	var s models.SolicitudMaterial
	var comentario, proyecto sql.NullString
	var aprobadoPor sql.NullInt64
	var fechaAprobacion, fechaEntrega, fechaDevolucion sql.NullTime

	err := row.Scan(
		&s.ID, &s.EmpleadoID, &s.EmpleadoNombre, &s.FechaSolicitud, &s.Estado, &comentario,
		&proyecto, &aprobadoPor, &fechaAprobacion, &fechaEntrega, &fechaDevolucion,
	)
	if err != nil {
		return nil, err
	}

	s.Comentario = comentario.String
	if proyecto.Valid {
		s.Proyecto = &proyecto.String
	}
	if aprobadoPor.Valid {
		s.AprobadoPor = &aprobadoPor.Int64
	}
	if fechaAprobacion.Valid {
		s.FechaAprobacion = &fechaAprobacion.Time
	}
	if fechaEntrega.Valid {
		s.FechaEntrega = &fechaEntrega.Time
	}
	if fechaDevolucion.Valid {
		s.FechaDevolucion = &fechaDevolucion.Time
	}
	return &s, nil
}

func (r *RequestRepository) querySolicitudes(where string, args ...interface{}) ([]models.SolicitudMaterial, error) {
	query := `
		SELECT` + solicitudColumns + `
		FROM solicitudes_materiales sm
		JOIN usuarios u ON sm.empleado_id = u.id
		` + where + `
		ORDER BY sm.fecha_solicitud DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var solicitudes []models.SolicitudMaterial
	for rows.Next() {
		s, err := scanSolicitud(rows)
		if err != nil {
			return nil, err
		}
		solicitudes = append(solicitudes, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range solicitudes {
		items, err := r.getItems(solicitudes[i].ID)
		if err != nil {
			return nil, err
		}
		solicitudes[i].Items = items
	}
	return solicitudes, nil
}

func (r *RequestRepository) getItems(solicitudID int64) ([]models.ItemSolicitud, error) {
	query := `
		SELECT i.id, i.solicitud_id, i.producto_id, p.nombre, i.cantidad, i.es_consumible,
			i.cantidad_entregada, i.cantidad_devuelta, i.estado_devolucion
		FROM items_solicitudes i
		JOIN productos p ON i.producto_id = p.id
		WHERE i.solicitud_id = ?`

	rows, err := r.DB.Query(query, solicitudID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ItemSolicitud
	for rows.Next() {
		var item models.ItemSolicitud
		var entregada, devuelta sql.NullInt64
		var estadoDevolucion sql.NullString

		if err := rows.Scan(
			&item.ID, &item.SolicitudID, &item.ProductoID, &item.ProductoNombre,
			&item.Cantidad, &item.EsConsumible, &entregada, &devuelta, &estadoDevolucion,
		); err != nil {
			return nil, err
		}

		if entregada.Valid {
			v := int(entregada.Int64)
			item.CantidadEntregada = &v
		}
		if devuelta.Valid {
			v := int(devuelta.Int64)
			item.CantidadDevuelta = &v
		}
		if estadoDevolucion.Valid {
			item.EstadoDevolucion = &estadoDevolucion.String
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetAll returns every request with items, newest first.
func (r *RequestRepository) GetAll() ([]models.SolicitudMaterial, error) {
	return r.querySolicitudes("")
}

// GetByEmpleado returns the requests one employee authored.
func (r *RequestRepository) GetByEmpleado(empleadoID int64) ([]models.SolicitudMaterial, error) {
	return r.querySolicitudes("WHERE sm.empleado_id = ?", empleadoID)
}

// GetByID returns one request with items, or nil when the id is unknown.
func (r *RequestRepository) GetByID(id int64) (*models.SolicitudMaterial, error) {
	query := `
		SELECT` + solicitudColumns + `
		FROM solicitudes_materiales sm
		JOIN usuarios u ON sm.empleado_id = u.id
		WHERE sm.id = ?`

	s, err := scanSolicitud(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	s.Items, err = r.getItems(s.ID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Approve moves pendiente -> aprobado, recording the actor and timestamp.
// The conditional WHERE makes the transition atomic: a request that already
// left 'pendiente' is not touched and false is returned.
func (r *RequestRepository) Approve(id, actorID int64) (bool, error) {
	query := `
		UPDATE solicitudes_materiales
		SET estado = ?, aprobado_por = ?, fecha_aprobacion = ?
		WHERE id = ? AND estado = ?`

	result, err := r.DB.Exec(query, models.SolicitudAprobado, actorID, time.Now(), id, models.SolicitudPendiente)
	if err != nil {
		log.Printf("Error al aprobar solicitud %d: %v", id, err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Reject moves pendiente -> rechazado (terminal).
func (r *RequestRepository) Reject(id, actorID int64) (bool, error) {
	query := `
		UPDATE solicitudes_materiales
		SET estado = ?, aprobado_por = ?, fecha_aprobacion = ?
		WHERE id = ? AND estado = ?`

	result, err := r.DB.Exec(query, models.SolicitudRechazado, actorID, time.Now(), id, models.SolicitudPendiente)
	if err != nil {
		log.Printf("Error al rechazar solicitud %d: %v", id, err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Deliver moves aprobado -> entregado. Each delivered quantity is validated
// against the requested quantity and stock is deducted inside the same
// transaction; there is never an intermediate state where the request is
// entregado but stock has not moved.
func (r *RequestRepository) Deliver(id int64, entregas []models.EntregaItem) (bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var estado string
	err = tx.QueryRow("SELECT estado FROM solicitudes_materiales WHERE id = ? FOR UPDATE", id).Scan(&estado)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	if estado != models.SolicitudAprobado {
		return false, nil
	}

	for _, e := range entregas {
		var cantidad int
		var productoID int64
		var stockActual int

		query := `
			SELECT i.cantidad, i.producto_id, p.stock_actual
			FROM items_solicitudes i
			JOIN productos p ON i.producto_id = p.id
			WHERE i.id = ? AND i.solicitud_id = ?
			FOR UPDATE`

		err := tx.QueryRow(query, e.ItemID, id).Scan(&cantidad, &productoID, &stockActual)
		if err != nil {
			if err == sql.ErrNoRows {
				return false, fmt.Errorf("item %d no pertenece a la solicitud %d", e.ItemID, id)
			}
			return false, err
		}

		if e.CantidadEntregada > cantidad {
			return false, fmt.Errorf("cantidad entregada (%d) excede la solicitada (%d) en el item %d",
				e.CantidadEntregada, cantidad, e.ItemID)
		}
		if e.CantidadEntregada > stockActual {
			return false, fmt.Errorf("stock insuficiente para el producto %d", productoID)
		}

		_, err = tx.Exec("UPDATE items_solicitudes SET cantidad_entregada = ? WHERE id = ?", e.CantidadEntregada, e.ItemID)
		if err != nil {
			return false, err
		}

		_, err = tx.Exec("UPDATE productos SET stock_actual = stock_actual - ? WHERE id = ?", e.CantidadEntregada, productoID)
		if err != nil {
			return false, err
		}
	}

	_, err = tx.Exec("UPDATE solicitudes_materiales SET estado = ?, fecha_entrega = ? WHERE id = ?",
		models.SolicitudEntregado, time.Now(), id)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// Return moves entregado -> devuelto. Returned quantities are validated
// against delivered quantities; non-consumable items that come back in good
// condition are restocked.
func (r *RequestRepository) Return(id int64, devoluciones []models.DevolucionItem) (bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var estado string
	err = tx.QueryRow("SELECT estado FROM solicitudes_materiales WHERE id = ? FOR UPDATE", id).Scan(&estado)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	if estado != models.SolicitudEntregado {
		return false, nil
	}

	for _, d := range devoluciones {
		var entregada sql.NullInt64
		var esConsumible bool
		var productoID int64

		query := `
			SELECT cantidad_entregada, es_consumible, producto_id
			FROM items_solicitudes
			WHERE id = ? AND solicitud_id = ?
			FOR UPDATE`

		err := tx.QueryRow(query, d.ItemID, id).Scan(&entregada, &esConsumible, &productoID)
		if err != nil {
			if err == sql.ErrNoRows {
				return false, fmt.Errorf("item %d no pertenece a la solicitud %d", d.ItemID, id)
			}
			return false, err
		}

		if !entregada.Valid || d.CantidadDevuelta > int(entregada.Int64) {
			return false, errors.New("cantidad devuelta excede la entregada")
		}

		_, err = tx.Exec("UPDATE items_solicitudes SET cantidad_devuelta = ?, estado_devolucion = ? WHERE id = ?",
			d.CantidadDevuelta, d.EstadoDevolucion, d.ItemID)
		if err != nil {
			return false, err
		}

		// Only items that came back usable go back on the shelf.
		if !esConsumible && d.EstadoDevolucion == models.DevolucionBueno && d.CantidadDevuelta > 0 {
			_, err = tx.Exec("UPDATE productos SET stock_actual = stock_actual + ? WHERE id = ?",
				d.CantidadDevuelta, productoID)
			if err != nil {
				return false, err
			}
		}
	}

	_, err = tx.Exec("UPDATE solicitudes_materiales SET estado = ?, fecha_devolucion = ? WHERE id = ?",
		models.SolicitudDevuelto, time.Now(), id)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
