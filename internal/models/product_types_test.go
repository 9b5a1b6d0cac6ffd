package models

import "testing"

func TestBajoStock(t *testing.T) {
	tests := []struct {
		name   string
		actual int
		minimo int
		want   bool
	}{
		{"below minimum", 2, 5, true},
		{"exactly at minimum", 5, 5, true},
		{"above minimum", 6, 5, false},
		{"zero stock zero minimum", 0, 0, true},
		{"zero stock positive minimum", 0, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Producto{StockActual: tt.actual, StockMinimo: tt.minimo}
			if got := p.BajoStock(); got != tt.want {
				t.Errorf("BajoStock() with actual=%d minimo=%d = %v, want %v", tt.actual, tt.minimo, got, tt.want)
			}
		})
	}
}
