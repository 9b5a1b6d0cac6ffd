package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/takab/inventario-golang/internal/models"
)

func activeUser(id int64, username, role string) *models.Usuario {
	return &models.Usuario{
		ID:           id,
		Username:     username,
		PasswordHash: "$2a$10$notarealhash",
		Name:         username,
		Role:         role,
		Active:       true,
	}
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeUserStore(activeUser(1, "maria", models.RoleAlmacen))
	store.credentials["maria"] = "warehouse-pass"
	h := &Handlers{Users: store}

	c, w := testContext(t, http.MethodPost, "/v1/login", map[string]string{
		"username": "maria",
		"password": "warehouse-pass",
	})
	h.Login(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", w.Code, http.StatusOK, w.Body.String())
	}

	got := decodeBody(t, w)
	if got["token"] == nil || got["token"] == "" {
		t.Error("expected a session token in the response")
	}
	user, ok := got["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected a user object, got %T", got["user"])
	}
	if user["role"] != models.RoleAlmacen {
		t.Errorf("user.role = %v, want %q", user["role"], models.RoleAlmacen)
	}

	// No credential material may appear anywhere in the payload.
	body := w.Body.String()
	if strings.Contains(body, "password") || strings.Contains(body, "$2a$") {
		t.Errorf("response leaks credential material: %s", body)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore(activeUser(1, "maria", models.RoleAlmacen))
	store.credentials["maria"] = "warehouse-pass"
	h := &Handlers{Users: store}

	c, w := testContext(t, http.MethodPost, "/v1/login", map[string]string{
		"username": "maria",
		"password": "guess",
	})
	h.Login(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if got := decodeBody(t, w); got["token"] != nil {
		t.Error("a failed login must not return a token")
	}
}

func TestLoginUnknownAndInactiveLookAlike(t *testing.T) {
	inactive := activeUser(2, "carlos", models.RoleEmpleado)
	inactive.Active = false
	store := newFakeUserStore(inactive)
	store.credentials["carlos"] = "employee-pass"
	h := &Handlers{Users: store}

	// Unknown username.
	c1, w1 := testContext(t, http.MethodPost, "/v1/login", map[string]string{
		"username": "nadie", "password": "whatever",
	})
	h.Login(c1)

	// Right password, deactivated account.
	c2, w2 := testContext(t, http.MethodPost, "/v1/login", map[string]string{
		"username": "carlos", "password": "employee-pass",
	})
	h.Login(c2)

	if w1.Code != http.StatusUnauthorized || w2.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d; both should be %d", w1.Code, w2.Code, http.StatusUnauthorized)
	}
	if w1.Body.String() != w2.Body.String() {
		t.Errorf("unknown user and inactive user responses differ:\n%s\n%s", w1.Body.String(), w2.Body.String())
	}
}

func TestDeleteUserRefusesAdmins(t *testing.T) {
	store := newFakeUserStore(activeUser(1, "root", models.RoleAdmin))
	h := &Handlers{Users: store}

	c, w := testContext(t, http.MethodDelete, "/v1/usuarios/1", nil)
	withParamID(c, "1")
	h.DeleteUser(c)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
	if store.deleteCalls != 0 {
		t.Error("the store should never be asked to delete an admin")
	}
	if u := store.users[1]; !u.Active {
		t.Error("the admin account must remain active")
	}
}

func TestPermanentlyDeleteUserRefusesAdmins(t *testing.T) {
	store := newFakeUserStore(activeUser(1, "root", models.RoleAdmin))
	h := &Handlers{Users: store}

	c, w := testContext(t, http.MethodDelete, "/v1/usuarios/1/permanente", nil)
	withParamID(c, "1")
	h.PermanentlyDeleteUser(c)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
	if store.permanentCalls != 0 {
		t.Error("the store should never be asked to erase an admin")
	}
	if _, ok := store.users[1]; !ok {
		t.Error("the admin account must still exist")
	}
}

func TestDeleteUserDeactivatesInsteadOfRemoving(t *testing.T) {
	store := newFakeUserStore(activeUser(3, "carlos", models.RoleEmpleado))
	h := &Handlers{Users: store}

	c, w := testContext(t, http.MethodDelete, "/v1/usuarios/3", nil)
	withParamID(c, "3")
	h.DeleteUser(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", w.Code, http.StatusOK, w.Body.String())
	}
	u, ok := store.users[3]
	if !ok {
		t.Fatal("delete must keep the record")
	}
	if u.Active {
		t.Error("delete should have deactivated the account")
	}
}

func TestToggleUserStatusIsItsOwnInverse(t *testing.T) {
	store := newFakeUserStore(activeUser(3, "carlos", models.RoleEmpleado))
	h := &Handlers{Users: store}

	for i := 0; i < 2; i++ {
		c, w := testContext(t, http.MethodPatch, "/v1/usuarios/3/estado", nil)
		withParamID(c, "3")
		h.ToggleUserStatus(c)
		if w.Code != http.StatusOK {
			t.Fatalf("toggle %d: status = %d, want %d", i+1, w.Code, http.StatusOK)
		}
	}

	if !store.users[3].Active {
		t.Error("two toggles should restore the original active flag")
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	store := newFakeUserStore(activeUser(1, "maria", models.RoleAlmacen))
	h := &Handlers{Users: store}

	c, w := testContext(t, http.MethodPost, "/v1/usuarios", map[string]any{
		"username": "maria",
		"password": "long-enough-pass",
		"name":     "Otra Maria",
		"role":     models.RoleEmpleado,
	})
	h.CreateUser(c)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d\nbody: %s", w.Code, http.StatusConflict, w.Body.String())
	}
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	h := &Handlers{Users: newFakeUserStore()}

	c, w := testContext(t, http.MethodPost, "/v1/usuarios", map[string]any{
		"username": "nuevo",
		"password": "short",
		"name":     "Nuevo",
		"role":     models.RoleEmpleado,
	})
	h.CreateUser(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
