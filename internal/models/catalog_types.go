package models

// Lookup entities referenced by Producto. They carry no lifecycle of their
// own and are deletable independently (product FKs are set NULL).

type Categoria struct {
	ID          int64   `json:"id" db:"id"`
	Nombre      string  `json:"nombre" db:"nombre"`
	Descripcion *string `json:"descripcion,omitempty" db:"descripcion"`
}

type Proveedor struct {
	ID        int64   `json:"id" db:"id"`
	Nombre    string  `json:"nombre" db:"nombre"`
	Contacto  *string `json:"contacto,omitempty" db:"contacto"`
	Telefono  *string `json:"telefono,omitempty" db:"telefono"`
	Email     *string `json:"email,omitempty" db:"email"`
	Direccion *string `json:"direccion,omitempty" db:"direccion"`
}

type Almacen struct {
	ID          int64   `json:"id" db:"id"`
	Nombre      string  `json:"nombre" db:"nombre"`
	Ubicacion   *string `json:"ubicacion,omitempty" db:"ubicacion"`
	Descripcion *string `json:"descripcion,omitempty" db:"descripcion"`
}

type UnidadMedida struct {
	ID          int64   `json:"id" db:"id"`
	Nombre      string  `json:"nombre" db:"nombre"`
	Abreviacion string  `json:"abreviacion" db:"abreviacion"`
	Descripcion *string `json:"descripcion,omitempty" db:"descripcion"`
}

// --- Inputs ---

type CrearCategoriaInput struct {
	Nombre      string  `json:"nombre" binding:"required"`
	Descripcion *string `json:"descripcion,omitempty"`
}

type CrearProveedorInput struct {
	Nombre    string  `json:"nombre" binding:"required"`
	Contacto  *string `json:"contacto,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Direccion *string `json:"direccion,omitempty"`
}

type CrearAlmacenInput struct {
	Nombre      string  `json:"nombre" binding:"required"`
	Ubicacion   *string `json:"ubicacion,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
}

type CrearUnidadInput struct {
	Nombre      string  `json:"nombre" binding:"required"`
	Abreviacion string  `json:"abreviacion" binding:"required"`
	Descripcion *string `json:"descripcion,omitempty"`
}
