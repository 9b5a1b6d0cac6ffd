package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/takab/inventario-golang/internal/models"
)

// ProductRepository owns every read and write against the productos table.
type ProductRepository struct {
	DB *sql.DB
}

const productColumns = `
	p.id, p.codigo, p.nombre, p.descripcion, p.proveedor_id, p.categoria_id,
	p.peso, p.anchura, p.profundidad, p.alto,
	p.unidad_medida, p.marca, p.color, p.especificaciones, p.origen,
	p.costo_compra, p.precio_venta, p.stock_minimo, p.stock_actual,
	p.ubicacion, p.estado, p.es_herramienta, p.fecha_creacion,
	c.nombre, pr.nombre`

const productJoins = `
	FROM productos p
	LEFT JOIN categorias c ON p.categoria_id = c.id
	LEFT JOIN proveedores pr ON p.proveedor_id = pr.id`

func scanProducto(row interface{ Scan(...any) error }) (*models.Producto, error) {
	var p models.Producto
	var descripcion, unidadMedida, marca, color, especificaciones, origen sql.NullString
	var categoriaNombre, proveedorNombre sql.NullString
	var proveedorID, categoriaID sql.NullInt64
	var peso, anchura, profundidad, alto, costoCompra, precioVenta sql.NullFloat64

	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nombre, &descripcion, &proveedorID, &categoriaID,
		&peso, &anchura, &profundidad, &alto,
		&unidadMedida, &marca, &color, &especificaciones, &origen,
		&costoCompra, &precioVenta, &p.StockMinimo, &p.StockActual,
		&p.Ubicacion, &p.Estado, &p.EsHerramienta, &p.FechaCreacion,
		&categoriaNombre, &proveedorNombre,
	)
	if err != nil {
		return nil, err
	}

	if descripcion.Valid {
		p.Descripcion = &descripcion.String
	}
	if proveedorID.Valid {
		p.ProveedorID = &proveedorID.Int64
	}
	if categoriaID.Valid {
		p.CategoriaID = &categoriaID.Int64
	}
	if peso.Valid {
		p.Peso = &peso.Float64
	}
	if anchura.Valid {
		p.Anchura = &anchura.Float64
	}
	if profundidad.Valid {
		p.Profundidad = &profundidad.Float64
	}
	if alto.Valid {
		p.Alto = &alto.Float64
	}
	if unidadMedida.Valid {
		p.UnidadMedida = &unidadMedida.String
	}
	if marca.Valid {
		p.Marca = &marca.String
	}
	if color.Valid {
		p.Color = &color.String
	}
	if especificaciones.Valid {
		p.Especificaciones = &especificaciones.String
	}
	if origen.Valid {
		p.Origen = &origen.String
	}
	if costoCompra.Valid {
		p.CostoCompra = &costoCompra.Float64
	}
	if precioVenta.Valid {
		p.PrecioVenta = &precioVenta.Float64
	}
	if categoriaNombre.Valid {
		p.CategoriaNombre = &categoriaNombre.String
	}
	if proveedorNombre.Valid {
		p.ProveedorNombre = &proveedorNombre.String
	}
	return &p, nil
}

func (r *ProductRepository) queryProductos(where string, args ...interface{}) ([]models.Producto, error) {
	query := "SELECT" + productColumns + productJoins + " " + where

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// GetAll returns every product with its category and supplier display names.
func (r *ProductRepository) GetAll() ([]models.Producto, error) {
	return r.queryProductos("ORDER BY p.nombre ASC")
}

// GetByID returns one product, or nil when the id is unknown.
func (r *ProductRepository) GetByID(id int64) (*models.Producto, error) {
	query := "SELECT" + productColumns + productJoins + " WHERE p.id = ?"

	p, err := scanProducto(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Search matches the query against codigo, nombre and descripcion.
func (r *ProductRepository) Search(q string) ([]models.Producto, error) {
	term := "%" + q + "%"
	return r.queryProductos(
		"WHERE p.nombre LIKE ? OR p.codigo LIKE ? OR p.descripcion LIKE ? ORDER BY p.nombre ASC",
		term, term, term,
	)
}

// GetLowStock returns products whose current stock is at or below the
// configured minimum. The dashboard uses the same predicate.
func (r *ProductRepository) GetLowStock(limit int) ([]models.Producto, error) {
	return r.queryProductos(
		"WHERE p.stock_actual <= p.stock_minimo ORDER BY p.stock_actual ASC LIMIT ?",
		limit,
	)
}

// Create inserts a new product. Returns false when the codigo collides with
// an existing product.
func (r *ProductRepository) Create(p *models.Producto) (bool, error) {
	var exists int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM productos WHERE codigo = ?", p.Codigo).Scan(&exists)
	if err != nil {
		return false, err
	}
	if exists > 0 {
		return false, nil
	}

	query := `
		INSERT INTO productos
		(codigo, nombre, descripcion, proveedor_id, categoria_id,
		peso, anchura, profundidad, alto,
		unidad_medida, marca, color, especificaciones, origen,
		costo_compra, precio_venta, stock_minimo, stock_actual,
		ubicacion, estado, es_herramienta, fecha_creacion)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now()
	result, err := r.DB.Exec(query,
		p.Codigo, p.Nombre, p.Descripcion, p.ProveedorID, p.CategoriaID,
		p.Peso, p.Anchura, p.Profundidad, p.Alto,
		p.UnidadMedida, p.Marca, p.Color, p.Especificaciones, p.Origen,
		p.CostoCompra, p.PrecioVenta, p.StockMinimo, p.StockActual,
		p.Ubicacion, p.Estado, p.EsHerramienta, now,
	)
	if err != nil {
		log.Printf("Error al crear producto: %v", err)
		return false, err
	}

	p.ID, err = result.LastInsertId()
	if err != nil {
		return false, err
	}
	p.FechaCreacion = now
	return true, nil
}

// Update applies a partial-field update. Nil fields are left untouched.
// Returns false when the id is unknown.
func (r *ProductRepository) Update(id int64, in models.ActualizarProductoInput) (bool, error) {
	querySet := ""
	var queryArgs []interface{}

	add := func(col string, val interface{}) {
		if querySet != "" {
			querySet += ", "
		}
		querySet += col + " = ?"
		queryArgs = append(queryArgs, val)
	}

	if in.Codigo != nil {
		add("codigo", *in.Codigo)
	}
	if in.Nombre != nil {
		add("nombre", *in.Nombre)
	}
	if in.Descripcion != nil {
		add("descripcion", *in.Descripcion)
	}
	if in.ProveedorID != nil {
		add("proveedor_id", *in.ProveedorID)
	}
	if in.CategoriaID != nil {
		add("categoria_id", *in.CategoriaID)
	}
	if in.Peso != nil {
		add("peso", *in.Peso)
	}
	if in.Anchura != nil {
		add("anchura", *in.Anchura)
	}
	if in.Profundidad != nil {
		add("profundidad", *in.Profundidad)
	}
	if in.Alto != nil {
		add("alto", *in.Alto)
	}
	if in.UnidadMedida != nil {
		add("unidad_medida", *in.UnidadMedida)
	}
	if in.Marca != nil {
		add("marca", *in.Marca)
	}
	if in.Color != nil {
		add("color", *in.Color)
	}
	if in.Especificaciones != nil {
		add("especificaciones", *in.Especificaciones)
	}
	if in.Origen != nil {
		add("origen", *in.Origen)
	}
	if in.CostoCompra != nil {
		add("costo_compra", *in.CostoCompra)
	}
	if in.PrecioVenta != nil {
		add("precio_venta", *in.PrecioVenta)
	}
	if in.StockMinimo != nil {
		add("stock_minimo", *in.StockMinimo)
	}
	if in.StockActual != nil {
		add("stock_actual", *in.StockActual)
	}
	if in.Ubicacion != nil {
		add("ubicacion", *in.Ubicacion)
	}
	if in.Estado != nil {
		add("estado", *in.Estado)
	}
	if in.EsHerramienta != nil {
		add("es_herramienta", *in.EsHerramienta)
	}

	if querySet == "" {
		// Nothing to update; treat as a successful no-op if the row exists.
		var exists int
		if err := r.DB.QueryRow("SELECT COUNT(*) FROM productos WHERE id = ?", id).Scan(&exists); err != nil {
			return false, err
		}
		return exists > 0, nil
	}

	queryArgs = append(queryArgs, id)
	query := fmt.Sprintf("UPDATE productos SET %s WHERE id = ?", querySet)

	result, err := r.DB.Exec(query, queryArgs...)
	if err != nil {
		log.Printf("Error al actualizar producto %d: %v", id, err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes a product. Returns false when the id is unknown.
func (r *ProductRepository) Delete(id int64) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM productos WHERE id = ?", id)
	if err != nil {
		log.Printf("Error al eliminar producto %d: %v", id, err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
