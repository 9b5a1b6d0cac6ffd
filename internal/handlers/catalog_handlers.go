package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/takab/inventario-golang/internal/models"
)

// Lookup-entity handlers. All four follow the same shape: list for any
// authenticated user, mutations gated on the catalog action.

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// --- Categorías ---

func (h *Handlers) GetCategorias(c *gin.Context) {
	cats, err := h.Catalog.GetCategorias()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	if cats == nil {
		cats = []models.Categoria{}
	}
	c.JSON(http.StatusOK, gin.H{"categorias": cats})
}

func (h *Handlers) CreateCategoria(c *gin.Context) {
	var input models.CrearCategoriaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.Catalog.CreateCategoria(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "categoria": cat})
}

func (h *Handlers) UpdateCategoria(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.CrearCategoriaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Catalog.UpdateCategoria(id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated"})
}

func (h *Handlers) DeleteCategoria(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	deleted, err := h.Catalog.DeleteCategoria(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// --- Proveedores ---

func (h *Handlers) GetProveedores(c *gin.Context) {
	provs, err := h.Catalog.GetProveedores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	if provs == nil {
		provs = []models.Proveedor{}
	}
	c.JSON(http.StatusOK, gin.H{"proveedores": provs})
}

func (h *Handlers) CreateProveedor(c *gin.Context) {
	var input models.CrearProveedorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prov, err := h.Catalog.CreateProveedor(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Supplier created", "proveedor": prov})
}

func (h *Handlers) UpdateProveedor(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.CrearProveedorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Catalog.UpdateProveedor(id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier updated"})
}

func (h *Handlers) DeleteProveedor(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	deleted, err := h.Catalog.DeleteProveedor(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}

// --- Almacenes ---

func (h *Handlers) GetAlmacenes(c *gin.Context) {
	whs, err := h.Catalog.GetAlmacenes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	if whs == nil {
		whs = []models.Almacen{}
	}
	c.JSON(http.StatusOK, gin.H{"almacenes": whs})
}

func (h *Handlers) CreateAlmacen(c *gin.Context) {
	var input models.CrearAlmacenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wh, err := h.Catalog.CreateAlmacen(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create warehouse"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Warehouse created", "almacen": wh})
}

func (h *Handlers) UpdateAlmacen(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.CrearAlmacenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Catalog.UpdateAlmacen(id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update warehouse"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Warehouse not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Warehouse updated"})
}

func (h *Handlers) DeleteAlmacen(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	deleted, err := h.Catalog.DeleteAlmacen(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete warehouse"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Warehouse not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Warehouse deleted"})
}

// --- Unidades de medida ---

func (h *Handlers) GetUnidades(c *gin.Context) {
	units, err := h.Catalog.GetUnidades()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	if units == nil {
		units = []models.UnidadMedida{}
	}
	c.JSON(http.StatusOK, gin.H{"unidades": units})
}

func (h *Handlers) CreateUnidad(c *gin.Context) {
	var input models.CrearUnidadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := h.Catalog.CreateUnidad(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create unit"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Unit created", "unidad": unit})
}

func (h *Handlers) UpdateUnidad(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.CrearUnidadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Catalog.UpdateUnidad(id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update unit"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unit updated"})
}

func (h *Handlers) DeleteUnidad(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	deleted, err := h.Catalog.DeleteUnidad(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete unit"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unit deleted"})
}
