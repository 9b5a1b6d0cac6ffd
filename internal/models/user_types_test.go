package models

import "testing"

func TestPasswordSetAndMatches(t *testing.T) {
	var p Password
	if err := p.Set("correct horse battery"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if p.Hash == "" {
		t.Fatal("expected a non-empty hash")
	}
	if p.Hash == "correct horse battery" {
		t.Fatal("hash must not equal the plaintext")
	}

	ok, err := p.Matches("correct horse battery")
	if err != nil {
		t.Fatalf("Matches failed: %v", err)
	}
	if !ok {
		t.Error("expected the original password to match")
	}

	ok, err = p.Matches("wrong password")
	if err != nil {
		t.Fatalf("Matches failed: %v", err)
	}
	if ok {
		t.Error("expected a wrong password not to match")
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleAlmacen, RoleEmpleado} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"", "superadmin", "Admin", "gerente"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true, want false", role)
		}
	}
}
