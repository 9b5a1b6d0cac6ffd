package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/takab/inventario-golang/internal/models"
)

// UserRepository owns every read and write against the usuarios table.
type UserRepository struct {
	DB *sql.DB
}

const userColumns = "id, username, name, role, active, email, created_at, updated_at"

func scanUsuario(row interface{ Scan(...any) error }) (*models.Usuario, error) {
	var u models.Usuario
	var email sql.NullString

	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Role, &u.Active, &email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if email.Valid {
		u.Email = &email.String
	}
	return &u, nil
}

// Authenticate looks up the account by username and compares the credential.
// It returns nil (not an error) when the account is missing, inactive, or the
// password does not match. The returned record never carries the hash.
func (r *UserRepository) Authenticate(username, plaintext string) (*models.Usuario, error) {
	query := `
		SELECT id, username, password, name, role, active, email, created_at, updated_at
		FROM usuarios
		WHERE username = ?`

	var u models.Usuario
	var email sql.NullString

	err := r.DB.QueryRow(query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Role, &u.Active, &email, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if !u.Active {
		return nil, nil
	}

	var password models.Password
	password.Hash = u.PasswordHash
	match, err := password.Matches(plaintext)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, nil
	}

	if email.Valid {
		u.Email = &email.String
	}
	u.PasswordHash = ""
	return &u, nil
}

// GetAll returns every account, newest first.
func (r *UserRepository) GetAll() ([]models.Usuario, error) {
	return r.list("")
}

// GetActive returns accounts still in service.
func (r *UserRepository) GetActive() ([]models.Usuario, error) {
	return r.list("WHERE active = 1")
}

// GetInactive returns deactivated accounts (ex-employees).
func (r *UserRepository) GetInactive() ([]models.Usuario, error) {
	return r.list("WHERE active = 0")
}

func (r *UserRepository) list(where string) ([]models.Usuario, error) {
	query := fmt.Sprintf("SELECT %s FROM usuarios %s ORDER BY created_at DESC", userColumns, where)

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// GetByID returns one account, or nil when the id is unknown.
func (r *UserRepository) GetByID(id int64) (*models.Usuario, error) {
	query := fmt.Sprintf("SELECT %s FROM usuarios WHERE id = ?", userColumns)

	u, err := scanUsuario(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// Create inserts a new account. It returns false when the username is
// already taken; the unique index is the final arbiter.
func (r *UserRepository) Create(u *models.Usuario, passwordHash string) (bool, error) {
	var exists int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM usuarios WHERE username = ?", u.Username).Scan(&exists)
	if err != nil {
		return false, err
	}
	if exists > 0 {
		return false, nil
	}

	query := `
		INSERT INTO usuarios (username, password, name, role, active, email, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now()
	result, err := r.DB.Exec(query, u.Username, passwordHash, u.Name, u.Role, u.Active, u.Email, now, now)
	if err != nil {
		log.Printf("Error al crear usuario: %v", err)
		return false, err
	}

	u.ID, err = result.LastInsertId()
	if err != nil {
		return false, err
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	return true, nil
}

// Update applies a partial-field update. Nil fields are left untouched; an
// absent password leaves the stored hash unchanged. Returns false when the
// id is unknown.
func (r *UserRepository) Update(id int64, in models.ActualizarUsuarioInput) (bool, error) {
	querySet := "updated_at = ?"
	queryArgs := []interface{}{time.Now()}

	if in.Username != nil {
		querySet += ", username = ?"
		queryArgs = append(queryArgs, *in.Username)
	}
	if in.Name != nil {
		querySet += ", name = ?"
		queryArgs = append(queryArgs, *in.Name)
	}
	if in.Email != nil {
		querySet += ", email = ?"
		queryArgs = append(queryArgs, *in.Email)
	}
	if in.Role != nil {
		querySet += ", role = ?"
		queryArgs = append(queryArgs, *in.Role)
	}
	if in.Active != nil {
		querySet += ", active = ?"
		queryArgs = append(queryArgs, *in.Active)
	}
	if in.PasswordHash != nil {
		querySet += ", password = ?"
		queryArgs = append(queryArgs, *in.PasswordHash)
	}

	queryArgs = append(queryArgs, id)
	query := fmt.Sprintf("UPDATE usuarios SET %s WHERE id = ?", querySet)

	result, err := r.DB.Exec(query, queryArgs...)
	if err != nil {
		log.Printf("Error al actualizar usuario %d: %v", id, err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete deactivates an account (soft delete). Admin accounts are
// delete-protected: the statement refuses to touch them.
func (r *UserRepository) Delete(id int64) (bool, error) {
	query := "UPDATE usuarios SET active = 0, updated_at = ? WHERE id = ? AND role <> 'admin'"

	result, err := r.DB.Exec(query, time.Now(), id)
	if err != nil {
		log.Printf("Error al eliminar usuario %d: %v", id, err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// PermanentlyDelete removes the record for good. It exists as a separate,
// explicit operation; admin accounts stay protected here too.
func (r *UserRepository) PermanentlyDelete(id int64) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM usuarios WHERE id = ? AND role <> 'admin'", id)
	if err != nil {
		log.Printf("Error al eliminar permanentemente usuario %d: %v", id, err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// ToggleStatus flips the active flag. Returns false when the id is unknown.
func (r *UserRepository) ToggleStatus(id int64) (bool, error) {
	query := "UPDATE usuarios SET active = NOT active, updated_at = ? WHERE id = ?"

	result, err := r.DB.Exec(query, time.Now(), id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
