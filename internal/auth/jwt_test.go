package auth

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "almacen")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "almacen" {
		t.Errorf("claims.Role = %q, want %q", claims.Role, "almacen")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := ValidateToken(bad); err == nil {
			t.Errorf("ValidateToken(%q) should have failed", bad)
		}
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(7, "empleado")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("a tampered token should not validate")
	}
}
