package models

import "time"

// Product location and condition enumerations. These mirror the CHECK
// constraints in the schema.
const (
	UbicacionAlmacen1 = "Almacén 1"
	UbicacionAlmacen2 = "Almacén 2"

	EstadoNuevo        = "Nuevo"
	EstadoUsado        = "Usado"
	EstadoDanado       = "Dañado"
	EstadoEnReparacion = "En reparación"
)

// Producto Model with Pointers for Nullable Fields
type Producto struct {
	ID          int64   `json:"id" db:"id"`
	Codigo      string  `json:"codigo" db:"codigo"`
	Nombre      string  `json:"nombre" db:"nombre"`
	Descripcion *string `json:"descripcion,omitempty" db:"descripcion"`

	ProveedorID *int64 `json:"proveedor_id,omitempty" db:"proveedor_id"`
	CategoriaID *int64 `json:"categoria_id,omitempty" db:"categoria_id"`

	Peso        *float64 `json:"peso,omitempty" db:"peso"`
	Anchura     *float64 `json:"anchura,omitempty" db:"anchura"`
	Profundidad *float64 `json:"profundidad,omitempty" db:"profundidad"`
	Alto        *float64 `json:"alto,omitempty" db:"alto"`

	UnidadMedida     *string `json:"unidad_medida,omitempty" db:"unidad_medida"`
	Marca            *string `json:"marca,omitempty" db:"marca"`
	Color            *string `json:"color,omitempty" db:"color"`
	Especificaciones *string `json:"especificaciones,omitempty" db:"especificaciones"`
	Origen           *string `json:"origen,omitempty" db:"origen"`

	CostoCompra *float64 `json:"costo_compra,omitempty" db:"costo_compra"`
	PrecioVenta *float64 `json:"precio_venta,omitempty" db:"precio_venta"`

	StockMinimo int `json:"stock_minimo" db:"stock_minimo"`
	StockActual int `json:"stock_actual" db:"stock_actual"`

	Ubicacion     string `json:"ubicacion" db:"ubicacion"`
	Estado        string `json:"estado" db:"estado"`
	EsHerramienta bool   `json:"es_herramienta" db:"es_herramienta"`

	FechaCreacion time.Time `json:"fecha_creacion" db:"fecha_creacion"`

	// Display names resolved by the list query (LEFT JOIN).
	CategoriaNombre *string `json:"categoria_nombre,omitempty" db:"-"`
	ProveedorNombre *string `json:"proveedor_nombre,omitempty" db:"-"`
}

// BajoStock reports whether current stock is at or below the configured
// minimum. The dashboard and the low-stock query use the same rule.
func (p *Producto) BajoStock() bool {
	return p.StockActual <= p.StockMinimo
}

// ActualizarProductoInput enumerates the optional fields of a partial product
// update. Nil fields are left untouched.
type ActualizarProductoInput struct {
	Codigo      *string `json:"codigo,omitempty"`
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`

	ProveedorID *int64 `json:"proveedor_id,omitempty"`
	CategoriaID *int64 `json:"categoria_id,omitempty"`

	Peso        *float64 `json:"peso,omitempty" binding:"omitempty,gte=0"`
	Anchura     *float64 `json:"anchura,omitempty" binding:"omitempty,gte=0"`
	Profundidad *float64 `json:"profundidad,omitempty" binding:"omitempty,gte=0"`
	Alto        *float64 `json:"alto,omitempty" binding:"omitempty,gte=0"`

	UnidadMedida     *string `json:"unidad_medida,omitempty"`
	Marca            *string `json:"marca,omitempty"`
	Color            *string `json:"color,omitempty"`
	Especificaciones *string `json:"especificaciones,omitempty"`
	Origen           *string `json:"origen,omitempty"`

	CostoCompra *float64 `json:"costo_compra,omitempty" binding:"omitempty,gte=0"`
	PrecioVenta *float64 `json:"precio_venta,omitempty" binding:"omitempty,gte=0"`

	StockMinimo *int `json:"stock_minimo,omitempty" binding:"omitempty,gte=0"`
	StockActual *int `json:"stock_actual,omitempty" binding:"omitempty,gte=0"`

	Ubicacion     *string `json:"ubicacion,omitempty" binding:"omitempty,oneof='Almacén 1' 'Almacén 2'"`
	Estado        *string `json:"estado,omitempty" binding:"omitempty,oneof=Nuevo Usado Dañado 'En reparación'"`
	EsHerramienta *bool   `json:"es_herramienta,omitempty"`
}
