package handlers

import "github.com/takab/inventario-golang/internal/models"

// UserStore is the user repository as seen by the handlers.
type UserStore interface {
	Authenticate(username, password string) (*models.Usuario, error)
	GetAll() ([]models.Usuario, error)
	GetActive() ([]models.Usuario, error)
	GetInactive() ([]models.Usuario, error)
	GetByID(id int64) (*models.Usuario, error)
	Create(u *models.Usuario, passwordHash string) (bool, error)
	Update(id int64, in models.ActualizarUsuarioInput) (bool, error)
	Delete(id int64) (bool, error)
	PermanentlyDelete(id int64) (bool, error)
	ToggleStatus(id int64) (bool, error)
}

// ProductStore is the product repository as seen by the handlers.
type ProductStore interface {
	GetAll() ([]models.Producto, error)
	GetByID(id int64) (*models.Producto, error)
	Search(q string) ([]models.Producto, error)
	GetLowStock(limit int) ([]models.Producto, error)
	Create(p *models.Producto) (bool, error)
	Update(id int64, in models.ActualizarProductoInput) (bool, error)
	Delete(id int64) (bool, error)
}

// CatalogStore covers the four lookup tables.
type CatalogStore interface {
	GetCategorias() ([]models.Categoria, error)
	CreateCategoria(in models.CrearCategoriaInput) (*models.Categoria, error)
	UpdateCategoria(id int64, in models.CrearCategoriaInput) (bool, error)
	DeleteCategoria(id int64) (bool, error)

	GetProveedores() ([]models.Proveedor, error)
	CreateProveedor(in models.CrearProveedorInput) (*models.Proveedor, error)
	UpdateProveedor(id int64, in models.CrearProveedorInput) (bool, error)
	DeleteProveedor(id int64) (bool, error)

	GetAlmacenes() ([]models.Almacen, error)
	CreateAlmacen(in models.CrearAlmacenInput) (*models.Almacen, error)
	UpdateAlmacen(id int64, in models.CrearAlmacenInput) (bool, error)
	DeleteAlmacen(id int64) (bool, error)

	GetUnidades() ([]models.UnidadMedida, error)
	CreateUnidad(in models.CrearUnidadInput) (*models.UnidadMedida, error)
	UpdateUnidad(id int64, in models.CrearUnidadInput) (bool, error)
	DeleteUnidad(id int64) (bool, error)
}

// RequestStore is the material request repository as seen by the handlers.
type RequestStore interface {
	Create(empleadoID int64, in models.CrearSolicitudInput) (int64, error)
	GetAll() ([]models.SolicitudMaterial, error)
	GetByEmpleado(empleadoID int64) ([]models.SolicitudMaterial, error)
	GetByID(id int64) (*models.SolicitudMaterial, error)
	Approve(id, actorID int64) (bool, error)
	Reject(id, actorID int64) (bool, error)
	Deliver(id int64, entregas []models.EntregaItem) (bool, error)
	Return(id int64, devoluciones []models.DevolucionItem) (bool, error)
}

// StatsStore computes the role-scoped dashboard views.
type StatsStore interface {
	AdminStats() (*models.DashboardStats, error)
	AlmacenStats() (*models.AlmacenStats, error)
	EmpleadoStats(empleadoID int64) (*models.EmpleadoStats, error)
}

// Handlers holds all dependencies for the HTTP layer. Stores are interfaces
// so tests can swap in in-memory fakes.
type Handlers struct {
	Users    UserStore
	Products ProductStore
	Catalog  CatalogStore
	Requests RequestStore
	Stats    StatsStore
}
