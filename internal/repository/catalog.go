package repository

import (
	"database/sql"
	"log"

	"github.com/takab/inventario-golang/internal/models"
)

// CatalogRepository owns the four lookup tables referenced by productos:
// categorias, proveedores, almacenes and unidades_medida. They are simple
// id+attributes rows with no lifecycle.
type CatalogRepository struct {
	DB *sql.DB
}

func (r *CatalogRepository) execDelete(table string, id int64) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		log.Printf("Error al eliminar de %s (%d): %v", table, id, err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// --- Categorías ---

func (r *CatalogRepository) GetCategorias() ([]models.Categoria, error) {
	rows, err := r.DB.Query("SELECT id, nombre, descripcion FROM categorias ORDER BY nombre ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.Categoria
	for rows.Next() {
		var c models.Categoria
		var descripcion sql.NullString
		if err := rows.Scan(&c.ID, &c.Nombre, &descripcion); err != nil {
			return nil, err
		}
		if descripcion.Valid {
			c.Descripcion = &descripcion.String
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *CatalogRepository) CreateCategoria(in models.CrearCategoriaInput) (*models.Categoria, error) {
	result, err := r.DB.Exec("INSERT INTO categorias (nombre, descripcion) VALUES (?, ?)", in.Nombre, in.Descripcion)
	if err != nil {
		log.Printf("Error al crear categoría: %v", err)
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Categoria{ID: id, Nombre: in.Nombre, Descripcion: in.Descripcion}, nil
}

func (r *CatalogRepository) UpdateCategoria(id int64, in models.CrearCategoriaInput) (bool, error) {
	result, err := r.DB.Exec("UPDATE categorias SET nombre = ?, descripcion = ? WHERE id = ?", in.Nombre, in.Descripcion, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *CatalogRepository) DeleteCategoria(id int64) (bool, error) {
	return r.execDelete("categorias", id)
}

// --- Proveedores ---

func (r *CatalogRepository) GetProveedores() ([]models.Proveedor, error) {
	rows, err := r.DB.Query("SELECT id, nombre, contacto, telefono, email, direccion FROM proveedores ORDER BY nombre ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var provs []models.Proveedor
	for rows.Next() {
		var p models.Proveedor
		var contacto, telefono, email, direccion sql.NullString
		if err := rows.Scan(&p.ID, &p.Nombre, &contacto, &telefono, &email, &direccion); err != nil {
			return nil, err
		}
		if contacto.Valid {
			p.Contacto = &contacto.String
		}
		if telefono.Valid {
			p.Telefono = &telefono.String
		}
		if email.Valid {
			p.Email = &email.String
		}
		if direccion.Valid {
			p.Direccion = &direccion.String
		}
		provs = append(provs, p)
	}
	return provs, rows.Err()
}

func (r *CatalogRepository) CreateProveedor(in models.CrearProveedorInput) (*models.Proveedor, error) {
	query := "INSERT INTO proveedores (nombre, contacto, telefono, email, direccion) VALUES (?, ?, ?, ?, ?)"
	result, err := r.DB.Exec(query, in.Nombre, in.Contacto, in.Telefono, in.Email, in.Direccion)
	if err != nil {
		log.Printf("Error al crear proveedor: %v", err)
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Proveedor{
		ID: id, Nombre: in.Nombre,
		Contacto: in.Contacto, Telefono: in.Telefono, Email: in.Email, Direccion: in.Direccion,
	}, nil
}

func (r *CatalogRepository) UpdateProveedor(id int64, in models.CrearProveedorInput) (bool, error) {
	query := "UPDATE proveedores SET nombre = ?, contacto = ?, telefono = ?, email = ?, direccion = ? WHERE id = ?"
	result, err := r.DB.Exec(query, in.Nombre, in.Contacto, in.Telefono, in.Email, in.Direccion, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *CatalogRepository) DeleteProveedor(id int64) (bool, error) {
	return r.execDelete("proveedores", id)
}

// --- Almacenes ---

func (r *CatalogRepository) GetAlmacenes() ([]models.Almacen, error) {
	rows, err := r.DB.Query("SELECT id, nombre, ubicacion, descripcion FROM almacenes ORDER BY nombre ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var whs []models.Almacen
	for rows.Next() {
		var w models.Almacen
		var ubicacion, descripcion sql.NullString
		if err := rows.Scan(&w.ID, &w.Nombre, &ubicacion, &descripcion); err != nil {
			return nil, err
		}
		if ubicacion.Valid {
			w.Ubicacion = &ubicacion.String
		}
		if descripcion.Valid {
			w.Descripcion = &descripcion.String
		}
		whs = append(whs, w)
	}
	return whs, rows.Err()
}

func (r *CatalogRepository) CreateAlmacen(in models.CrearAlmacenInput) (*models.Almacen, error) {
	result, err := r.DB.Exec("INSERT INTO almacenes (nombre, ubicacion, descripcion) VALUES (?, ?, ?)",
		in.Nombre, in.Ubicacion, in.Descripcion)
	if err != nil {
		log.Printf("Error al crear almacén: %v", err)
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Almacen{ID: id, Nombre: in.Nombre, Ubicacion: in.Ubicacion, Descripcion: in.Descripcion}, nil
}

func (r *CatalogRepository) UpdateAlmacen(id int64, in models.CrearAlmacenInput) (bool, error) {
	result, err := r.DB.Exec("UPDATE almacenes SET nombre = ?, ubicacion = ?, descripcion = ? WHERE id = ?",
		in.Nombre, in.Ubicacion, in.Descripcion, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *CatalogRepository) DeleteAlmacen(id int64) (bool, error) {
	return r.execDelete("almacenes", id)
}

// --- Unidades de medida ---

func (r *CatalogRepository) GetUnidades() ([]models.UnidadMedida, error) {
	rows, err := r.DB.Query("SELECT id, nombre, abreviacion, descripcion FROM unidades_medida ORDER BY nombre ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []models.UnidadMedida
	for rows.Next() {
		var u models.UnidadMedida
		var descripcion sql.NullString
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Abreviacion, &descripcion); err != nil {
			return nil, err
		}
		if descripcion.Valid {
			u.Descripcion = &descripcion.String
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *CatalogRepository) CreateUnidad(in models.CrearUnidadInput) (*models.UnidadMedida, error) {
	result, err := r.DB.Exec("INSERT INTO unidades_medida (nombre, abreviacion, descripcion) VALUES (?, ?, ?)",
		in.Nombre, in.Abreviacion, in.Descripcion)
	if err != nil {
		log.Printf("Error al crear unidad de medida: %v", err)
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.UnidadMedida{ID: id, Nombre: in.Nombre, Abreviacion: in.Abreviacion, Descripcion: in.Descripcion}, nil
}

func (r *CatalogRepository) UpdateUnidad(id int64, in models.CrearUnidadInput) (bool, error) {
	result, err := r.DB.Exec("UPDATE unidades_medida SET nombre = ?, abreviacion = ?, descripcion = ? WHERE id = ?",
		in.Nombre, in.Abreviacion, in.Descripcion, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *CatalogRepository) DeleteUnidad(id int64) (bool, error) {
	return r.execDelete("unidades_medida", id)
}
