package handlers

import (
	"net/http"
	"testing"

	"github.com/takab/inventario-golang/internal/models"
)

type fakeProductStore struct {
	products map[int64]*models.Producto
	nextID   int64

	lowStockLimit int
	searchQuery   string
}

func newFakeProductStore(products ...*models.Producto) *fakeProductStore {
	s := &fakeProductStore{products: make(map[int64]*models.Producto)}
	for _, p := range products {
		s.products[p.ID] = p
		if p.ID > s.nextID {
			s.nextID = p.ID
		}
	}
	return s
}

func (s *fakeProductStore) GetAll() ([]models.Producto, error) {
	var out []models.Producto
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeProductStore) GetByID(id int64) (*models.Producto, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (s *fakeProductStore) Search(q string) ([]models.Producto, error) {
	s.searchQuery = q
	return nil, nil
}

func (s *fakeProductStore) GetLowStock(limit int) ([]models.Producto, error) {
	s.lowStockLimit = limit
	var out []models.Producto
	for _, p := range s.products {
		if p.BajoStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeProductStore) Create(p *models.Producto) (bool, error) {
	for _, existing := range s.products {
		if existing.Codigo == p.Codigo {
			return false, nil
		}
	}
	s.nextID++
	p.ID = s.nextID
	s.products[p.ID] = p
	return true, nil
}

func (s *fakeProductStore) Update(id int64, in models.ActualizarProductoInput) (bool, error) {
	p, ok := s.products[id]
	if !ok {
		return false, nil
	}
	if in.StockActual != nil {
		p.StockActual = *in.StockActual
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	return true, nil
}

func (s *fakeProductStore) Delete(id int64) (bool, error) {
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

func TestCreateProductDerivesCodigoFromName(t *testing.T) {
	store := newFakeProductStore()
	h := &Handlers{Products: store}

	c, w := testContext(t, http.MethodPost, "/v1/productos", map[string]any{
		"nombre":    "Taladro Percutor 850W",
		"ubicacion": models.UbicacionAlmacen1,
		"estado":    models.EstadoNuevo,
	})
	h.CreateProduct(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d\nbody: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	created := store.products[1]
	if created == nil {
		t.Fatal("the product was not stored")
	}
	if created.Codigo != "taladro-percutor-850w" {
		t.Errorf("codigo = %q, want %q", created.Codigo, "taladro-percutor-850w")
	}
}

func TestCreateProductDuplicateCodigo(t *testing.T) {
	store := newFakeProductStore(&models.Producto{ID: 1, Codigo: "mt-001", Nombre: "Martillo"})
	h := &Handlers{Products: store}

	codigo := "mt-001"
	c, w := testContext(t, http.MethodPost, "/v1/productos", map[string]any{
		"codigo":    codigo,
		"nombre":    "Otro Martillo",
		"ubicacion": models.UbicacionAlmacen1,
		"estado":    models.EstadoNuevo,
	})
	h.CreateProduct(c)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestCreateProductRejectsUnknownLocation(t *testing.T) {
	h := &Handlers{Products: newFakeProductStore()}

	c, w := testContext(t, http.MethodPost, "/v1/productos", map[string]any{
		"nombre":    "Martillo",
		"ubicacion": "Bodega 3",
		"estado":    models.EstadoNuevo,
	})
	h.CreateProduct(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCreateProductRejectsNegativeStock(t *testing.T) {
	h := &Handlers{Products: newFakeProductStore()}

	c, w := testContext(t, http.MethodPost, "/v1/productos", map[string]any{
		"nombre":       "Martillo",
		"ubicacion":    models.UbicacionAlmacen1,
		"estado":       models.EstadoNuevo,
		"stock_actual": -5,
	})
	h.CreateProduct(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetLowStockProductsLimit(t *testing.T) {
	store := newFakeProductStore()
	h := &Handlers{Products: store}

	c, w := testContext(t, http.MethodGet, "/v1/productos/bajo-stock?limit=5", nil)
	h.GetLowStockProducts(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if store.lowStockLimit != 5 {
		t.Errorf("limit = %d, want 5", store.lowStockLimit)
	}

	// Missing and malformed limits fall back to the default.
	c2, _ := testContext(t, http.MethodGet, "/v1/productos/bajo-stock?limit=abc", nil)
	h.GetLowStockProducts(c2)
	if store.lowStockLimit != 10 {
		t.Errorf("limit = %d, want the default 10", store.lowStockLimit)
	}
}

func TestSearchProductsEmptyQueryListsEverything(t *testing.T) {
	store := newFakeProductStore(&models.Producto{ID: 1, Codigo: "mt-001", Nombre: "Martillo"})
	h := &Handlers{Products: store}

	c, w := testContext(t, http.MethodGet, "/v1/productos/buscar", nil)
	h.SearchProducts(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if store.searchQuery != "" {
		t.Error("an empty query should not reach the search path")
	}
	got := decodeBody(t, w)
	list, _ := got["products"].([]any)
	if len(list) != 1 {
		t.Errorf("got %d products, want the full listing of 1", len(list))
	}
}

func TestUpdateProductStockReflectsInListing(t *testing.T) {
	store := newFakeProductStore(&models.Producto{
		ID: 1, Codigo: "mt-001", Nombre: "Martillo", StockActual: 8, StockMinimo: 3,
	})
	h := &Handlers{Products: store}

	c, w := testContext(t, http.MethodPut, "/v1/productos/1", map[string]any{
		"stock_actual": 2,
	})
	withParamID(c, "1")
	h.UpdateProduct(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", w.Code, http.StatusOK, w.Body.String())
	}

	c2, w2 := testContext(t, http.MethodGet, "/v1/productos", nil)
	h.GetProducts(c2)

	got := decodeBody(t, w2)
	list, _ := got["products"].([]any)
	if len(list) != 1 {
		t.Fatalf("got %d products, want 1", len(list))
	}
	p, _ := list[0].(map[string]any)
	if p["stock_actual"] != float64(2) {
		t.Errorf("stock_actual = %v, want 2", p["stock_actual"])
	}

	// The updated stock sits below the minimum, so the low-stock view picks
	// it up.
	c3, w3 := testContext(t, http.MethodGet, "/v1/productos/bajo-stock", nil)
	h.GetLowStockProducts(c3)
	low := decodeBody(t, w3)
	lowList, _ := low["products"].([]any)
	if len(lowList) != 1 {
		t.Errorf("low-stock listing has %d products, want 1", len(lowList))
	}
}

func TestGetProductNotFound(t *testing.T) {
	h := &Handlers{Products: newFakeProductStore()}

	c, w := testContext(t, http.MethodGet, "/v1/productos/99", nil)
	withParamID(c, "99")
	h.GetProduct(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
