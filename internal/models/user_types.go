package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// The three TAKAB roles. There are no dynamic or custom roles.
const (
	RoleAdmin    = "admin"
	RoleAlmacen  = "almacen"
	RoleEmpleado = "empleado"
)

// ValidRole reports whether s is one of the three known roles.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleAlmacen || s == RoleEmpleado
}

// Usuario is a TAKAB account. The password hash is never serialized.
type Usuario struct {
	ID           int64   `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	PasswordHash string  `json:"-" db:"password"`
	Name         string  `json:"name" db:"name"`
	Role         string  `json:"role" db:"role"`
	Active       bool    `json:"active" db:"active"`
	Email        *string `json:"email,omitempty" db:"email"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ActualizarUsuarioInput enumerates the fields an admin may change on an
// existing account. Nil means "leave as is"; an absent password keeps the
// current hash untouched.
type ActualizarUsuarioInput struct {
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=admin almacen empleado"`
	Active   *bool   `json:"active,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`

	// PasswordHash is filled by the handler after hashing; it is never
	// accepted from the client.
	PasswordHash *string `json:"-"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
