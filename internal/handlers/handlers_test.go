package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/takab/inventario-golang/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testContext builds a gin context around a recorder, optionally with a JSON
// body, mimicking what the router and auth middleware would have set up.
func testContext(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func asActor(c *gin.Context, userID int64, role string) {
	c.Set("userID", userID)
	c.Set("userRole", role)
}

func withParamID(c *gin.Context, id string) {
	c.Params = gin.Params{{Key: "id", Value: id}}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v\nbody: %s", err, w.Body.String())
	}
	return got
}

// --- Fake stores ---

type fakeUserStore struct {
	users map[int64]*models.Usuario
	// credentials maps username to the account's plaintext password.
	credentials map[string]string

	deleteCalls    int
	permanentCalls int
	toggleCalls    int
}

func newFakeUserStore(users ...*models.Usuario) *fakeUserStore {
	s := &fakeUserStore{
		users:       make(map[int64]*models.Usuario),
		credentials: make(map[string]string),
	}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) Authenticate(username, password string) (*models.Usuario, error) {
	stored, ok := s.credentials[username]
	if !ok || stored != password {
		return nil, nil
	}
	for _, u := range s.users {
		if u.Username == username {
			if !u.Active {
				return nil, nil
			}
			copied := *u
			copied.PasswordHash = ""
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetAll() ([]models.Usuario, error) {
	var out []models.Usuario
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *fakeUserStore) GetActive() ([]models.Usuario, error) {
	var out []models.Usuario
	for _, u := range s.users {
		if u.Active {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *fakeUserStore) GetInactive() ([]models.Usuario, error) {
	var out []models.Usuario
	for _, u := range s.users {
		if !u.Active {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *fakeUserStore) GetByID(id int64) (*models.Usuario, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) Create(u *models.Usuario, passwordHash string) (bool, error) {
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return false, nil
		}
	}
	u.ID = int64(len(s.users) + 1)
	s.users[u.ID] = u
	return true, nil
}

func (s *fakeUserStore) Update(id int64, in models.ActualizarUsuarioInput) (bool, error) {
	u, ok := s.users[id]
	if !ok {
		return false, nil
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	return true, nil
}

func (s *fakeUserStore) Delete(id int64) (bool, error) {
	s.deleteCalls++
	u, ok := s.users[id]
	if !ok || u.Role == models.RoleAdmin {
		return false, nil
	}
	u.Active = false
	return true, nil
}

func (s *fakeUserStore) PermanentlyDelete(id int64) (bool, error) {
	s.permanentCalls++
	u, ok := s.users[id]
	if !ok || u.Role == models.RoleAdmin {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

func (s *fakeUserStore) ToggleStatus(id int64) (bool, error) {
	s.toggleCalls++
	u, ok := s.users[id]
	if !ok {
		return false, nil
	}
	u.Active = !u.Active
	return true, nil
}

type fakeRequestStore struct {
	solicitudes map[int64]*models.SolicitudMaterial
	nextID      int64

	deliverErr error
	returnErr  error
}

func newFakeRequestStore(solicitudes ...*models.SolicitudMaterial) *fakeRequestStore {
	s := &fakeRequestStore{solicitudes: make(map[int64]*models.SolicitudMaterial), nextID: 100}
	for _, sm := range solicitudes {
		s.solicitudes[sm.ID] = sm
	}
	return s
}

func (s *fakeRequestStore) Create(empleadoID int64, in models.CrearSolicitudInput) (int64, error) {
	s.nextID++
	s.solicitudes[s.nextID] = &models.SolicitudMaterial{
		ID:         s.nextID,
		EmpleadoID: empleadoID,
		Estado:     models.SolicitudPendiente,
		Comentario: in.Comentario,
	}
	return s.nextID, nil
}

func (s *fakeRequestStore) GetAll() ([]models.SolicitudMaterial, error) {
	var out []models.SolicitudMaterial
	for _, sm := range s.solicitudes {
		out = append(out, *sm)
	}
	return out, nil
}

func (s *fakeRequestStore) GetByEmpleado(empleadoID int64) ([]models.SolicitudMaterial, error) {
	var out []models.SolicitudMaterial
	for _, sm := range s.solicitudes {
		if sm.EmpleadoID == empleadoID {
			out = append(out, *sm)
		}
	}
	return out, nil
}

func (s *fakeRequestStore) GetByID(id int64) (*models.SolicitudMaterial, error) {
	sm, ok := s.solicitudes[id]
	if !ok {
		return nil, nil
	}
	copied := *sm
	return &copied, nil
}

func (s *fakeRequestStore) Approve(id, actorID int64) (bool, error) {
	sm, ok := s.solicitudes[id]
	if !ok || sm.Estado != models.SolicitudPendiente {
		return false, nil
	}
	sm.Estado = models.SolicitudAprobado
	sm.AprobadoPor = &actorID
	return true, nil
}

func (s *fakeRequestStore) Reject(id, actorID int64) (bool, error) {
	sm, ok := s.solicitudes[id]
	if !ok || sm.Estado != models.SolicitudPendiente {
		return false, nil
	}
	sm.Estado = models.SolicitudRechazado
	sm.AprobadoPor = &actorID
	return true, nil
}

func (s *fakeRequestStore) Deliver(id int64, entregas []models.EntregaItem) (bool, error) {
	if s.deliverErr != nil {
		return false, s.deliverErr
	}
	sm, ok := s.solicitudes[id]
	if !ok || sm.Estado != models.SolicitudAprobado {
		return false, nil
	}
	sm.Estado = models.SolicitudEntregado
	return true, nil
}

func (s *fakeRequestStore) Return(id int64, devoluciones []models.DevolucionItem) (bool, error) {
	if s.returnErr != nil {
		return false, s.returnErr
	}
	sm, ok := s.solicitudes[id]
	if !ok || sm.Estado != models.SolicitudEntregado {
		return false, nil
	}
	sm.Estado = models.SolicitudDevuelto
	return true, nil
}

type fakeStatsStore struct {
	admin    *models.DashboardStats
	almacen  *models.AlmacenStats
	empleado *models.EmpleadoStats

	empleadoID int64
	err        error
}

func (s *fakeStatsStore) AdminStats() (*models.DashboardStats, error) {
	return s.admin, s.err
}

func (s *fakeStatsStore) AlmacenStats() (*models.AlmacenStats, error) {
	return s.almacen, s.err
}

func (s *fakeStatsStore) EmpleadoStats(empleadoID int64) (*models.EmpleadoStats, error) {
	s.empleadoID = empleadoID
	return s.empleado, s.err
}

var errFakeDB = errors.New("fake database failure")
