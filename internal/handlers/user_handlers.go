package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/takab/inventario-golang/internal/auth"
	"github.com/takab/inventario-golang/internal/models"
)

// --- Login ---

// LoginInput defines the JSON data expected for a login.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /v1/login. A missing account, an inactive
// account and a wrong password all answer the same 401; the client learns
// nothing about which it was.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Authenticate(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// --- User Management (Admin Only) ---

// CreateUserInput holds the fields for a new account. New accounts always
// need a credential.
type CreateUserInput struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     string  `json:"name" binding:"required"`
	Role     string  `json:"role" binding:"required,oneof=admin almacen empleado"`
	Active   *bool   `json:"active,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
}

// GetUsers is the handler for GET /v1/usuarios. The optional ?estado=
// filter mirrors the active/inactive (ex-employee) split in the UI.
func (h *Handlers) GetUsers(c *gin.Context) {
	var users []models.Usuario
	var err error

	switch c.Query("estado") {
	case "activos":
		users, err = h.Users.GetActive()
	case "inactivos":
		users, err = h.Users.GetInactive()
	default:
		users, err = h.Users.GetAll()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	if users == nil {
		users = []models.Usuario{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateUser is the handler for POST /v1/usuarios.
func (h *Handlers) CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	user := &models.Usuario{
		Username: input.Username,
		Name:     input.Name,
		Role:     input.Role,
		Active:   active,
		Email:    input.Email,
	}

	created, err := h.Users.Create(user, password.Hash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	if !created {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// UpdateUser is the handler for PUT /v1/usuarios/:id. An empty or absent
// password leaves the stored credential unchanged.
func (h *Handlers) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var input models.ActualizarUsuarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Password != nil && *input.Password != "" {
		var password models.Password
		if err := password.Set(*input.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		input.PasswordHash = &password.Hash
	}

	updated, err := h.Users.Update(id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// DeleteUser is the handler for DELETE /v1/usuarios/:id. Delete means
// deactivate: the record stays for historical references. Admin accounts are
// delete-protected and the operation reports failure without touching them.
func (h *Handlers) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	target, err := h.Users.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if target.Role == models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin accounts cannot be deleted"})
		return
	}

	deleted, err := h.Users.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deactivated successfully"})
}

// PermanentlyDeleteUser is the handler for DELETE /v1/usuarios/:id/permanente.
// This is the only operation that removes the record; admin protection holds.
func (h *Handlers) PermanentlyDeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	target, err := h.Users.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if target.Role == models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin accounts cannot be deleted"})
		return
	}

	deleted, err := h.Users.PermanentlyDelete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User permanently deleted"})
}

// ToggleUserStatus is the handler for PATCH /v1/usuarios/:id/estado.
// Calling it twice restores the original flag.
func (h *Handlers) ToggleUserStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	toggled, err := h.Users.ToggleStatus(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle user status"})
		return
	}
	if !toggled {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status toggled"})
}
