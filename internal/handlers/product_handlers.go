package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/takab/inventario-golang/internal/models"
)

// CreateProductInput holds the fields for a new product. codigo is optional;
// when absent it is derived from the name.
type CreateProductInput struct {
	Codigo      *string `json:"codigo,omitempty"`
	Nombre      string  `json:"nombre" binding:"required"`
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

	StockMinimo int `json:"stock_minimo" binding:"gte=0"`
	StockActual int `json:"stock_actual" binding:"gte=0"`

	Ubicacion     string `json:"ubicacion" binding:"required,oneof='Almacén 1' 'Almacén 2'"`
	Estado        string `json:"estado" binding:"required,oneof=Nuevo Usado Dañado 'En reparación'"`
	EsHerramienta bool   `json:"es_herramienta"`
}

// GetProducts is the handler for GET /v1/productos. Every product comes back
// with its category and supplier display names resolved.
func (h *Handlers) GetProducts(c *gin.Context) {
	products, err := h.Products.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	if products == nil {
		products = []models.Producto{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /v1/productos/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.Products.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// SearchProducts is the handler for GET /v1/productos/buscar?q=...
func (h *Handlers) SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		h.GetProducts(c)
		return
	}

	products, err := h.Products.Search(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	if products == nil {
		products = []models.Producto{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetLowStockProducts is the handler for GET /v1/productos/bajo-stock.
func (h *Handlers) GetLowStockProducts(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}

	products, err := h.Products.GetLowStock(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	if products == nil {
		products = []models.Producto{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CreateProduct is the handler for POST /v1/productos.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	codigo := ""
	if input.Codigo != nil {
		codigo = *input.Codigo
	}
	if codigo == "" {
		codigo = slug.Make(input.Nombre)
	}

	product := &models.Producto{
		Codigo:           codigo,
		Nombre:           input.Nombre,
		Descripcion:      input.Descripcion,
		ProveedorID:      input.ProveedorID,
		CategoriaID:      input.CategoriaID,
		Peso:             input.Peso,
		Anchura:          input.Anchura,
		Profundidad:      input.Profundidad,
		Alto:             input.Alto,
		UnidadMedida:     input.UnidadMedida,
		Marca:            input.Marca,
		Color:            input.Color,
		Especificaciones: input.Especificaciones,
		Origen:           input.Origen,
		CostoCompra:      input.CostoCompra,
		PrecioVenta:      input.PrecioVenta,
		StockMinimo:      input.StockMinimo,
		StockActual:      input.StockActual,
		Ubicacion:        input.Ubicacion,
		Estado:           input.Estado,
		EsHerramienta:    input.EsHerramienta,
	}

	created, err := h.Products.Create(product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	if !created {
		c.JSON(http.StatusConflict, gin.H{"error": "Product code already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct is the handler for PUT /v1/productos/:id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input models.ActualizarProductoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Products.Update(id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct is the handler for DELETE /v1/productos/:id.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	deleted, err := h.Products.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
