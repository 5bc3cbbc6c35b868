package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"essen/internal/domain"
	"essen/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ── Stub services ─────────────────────────────────────────────────────────────
// Each stub returns either a canned response or a canned error; the tests
// exercise the HTTP translation, not the business rules.

type stubCategoriaService struct {
	resp *dto.CategoriaResponse
	list []dto.CategoriaResponse
	err  error
}

func (s *stubCategoriaService) Crear(context.Context, dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	return s.resp, s.err
}
func (s *stubCategoriaService) Listar(context.Context, dto.CategoriaFilter) ([]dto.CategoriaResponse, error) {
	return s.list, s.err
}
func (s *stubCategoriaService) Obtener(context.Context, uint) (*dto.CategoriaResponse, error) {
	return s.resp, s.err
}
func (s *stubCategoriaService) Actualizar(context.Context, uint, dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	return s.resp, s.err
}
func (s *stubCategoriaService) Eliminar(context.Context, uint, string) error { return s.err }

type stubAuthService struct {
	login *dto.LoginResponse
	err   error
}

func (s *stubAuthService) Login(context.Context, dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.login, s.err
}
func (s *stubAuthService) CrearUsuario(context.Context, dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	return nil, s.err
}
func (s *stubAuthService) ListarUsuarios(context.Context) ([]dto.UsuarioResponse, error) {
	return nil, s.err
}
func (s *stubAuthService) ObtenerUsuario(context.Context, uint) (*dto.UsuarioResponse, error) {
	return nil, s.err
}
func (s *stubAuthService) ActualizarUsuario(context.Context, uint, dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	return nil, s.err
}
func (s *stubAuthService) EliminarUsuario(context.Context, uint, string) error { return s.err }
func (s *stubAuthService) CrecimientoUsuarios(context.Context) ([]dto.CrecimientoUsuarios, error) {
	return nil, s.err
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func routerCategorias(svc *stubCategoriaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCategoriasHandler(svc)
	r.POST("/categorias", h.Crear)
	r.GET("/categorias", h.Listar)
	r.GET("/categorias/:id", h.Obtener)
	return r
}

// ── Tests: validación de entrada ──────────────────────────────────────────────

func TestCrearCategoria_NombreConDigitos(t *testing.T) {
	r := routerCategorias(&stubCategoriaService{})

	w := postJSON(r, "/categorias", gin.H{"nombre": "Postres 2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error de validación")
	assert.Contains(t, w.Body.String(), "nombre_es")
}

func TestCrearCategoria_NombreConTildes(t *testing.T) {
	resp := &dto.CategoriaResponse{ID: 1, Nombre: "Menú Infantil", Subcategorias: []dto.CategoriaRef{}}
	r := routerCategorias(&stubCategoriaService{resp: resp})

	w := postJSON(r, "/categorias", gin.H{"nombre": "Menú Infantil"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCrearCategoria_NombreMuyCorto(t *testing.T) {
	r := routerCategorias(&stubCategoriaService{})

	w := postJSON(r, "/categorias", gin.H{"nombre": "A"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrearCategoria_JSONInvalido(t *testing.T) {
	r := routerCategorias(&stubCategoriaService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/categorias", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JSON inválido")
}

// ── Tests: traducción de errores de dominio ───────────────────────────────────

func TestCrearCategoria_Conflicto(t *testing.T) {
	r := routerCategorias(&stubCategoriaService{err: domain.Conflicto("Ya existe una categoría con ese nombre")})

	w := postJSON(r, "/categorias", gin.H{"nombre": "Postres"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Ya existe una categoría con ese nombre"}`, w.Body.String())
}

func TestObtenerCategoria_NoEncontrada(t *testing.T) {
	r := routerCategorias(&stubCategoriaService{err: domain.NoEncontrado("Categoría no encontrada")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/categorias/9", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Categoría no encontrada"}`, w.Body.String())
}

func TestObtenerCategoria_IDInvalido(t *testing.T) {
	r := routerCategorias(&stubCategoriaService{})

	for _, id := range []string{"abc", "0", "-3"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/categorias/"+id, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
		assert.Contains(t, w.Body.String(), "ID inválido")
	}
}

func TestListarCategorias_ErrorInterno(t *testing.T) {
	// Errores no tipados se ocultan tras un 500 genérico
	r := routerCategorias(&stubCategoriaService{err: assert.AnError})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/categorias", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Error interno del servidor"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

// ── Tests: login ──────────────────────────────────────────────────────────────

func routerLogin(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", NewAuthHandler(svc).Login)
	return r
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	r := routerLogin(&stubAuthService{err: domain.NoAutorizado("Credenciales inválidas")})

	w := postJSON(r, "/login", gin.H{"nombre_usuario": "admin", "password": "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Credenciales inválidas"}`, w.Body.String())
}

func TestLogin_PasswordCorta(t *testing.T) {
	r := routerLogin(&stubAuthService{})

	w := postJSON(r, "/login", gin.H{"nombre_usuario": "admin", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Exitoso(t *testing.T) {
	login := &dto.LoginResponse{
		Token: "un.jwt.firmado",
		User:  dto.LoginUser{ID: 1, NombreUsuario: "admin", Rol: 1},
	}
	r := routerLogin(&stubAuthService{login: login})

	w := postJSON(r, "/login", gin.H{"nombre_usuario": "admin", "password": "secreta1"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "un.jwt.firmado", resp.Token)
	assert.Equal(t, uint(1), resp.User.Rol)
}

// ── Tests: forma del plato en la respuesta ────────────────────────────────────

func TestPlatoResponse_SinIDsEscalares(t *testing.T) {
	// El JSON anida categoria/subcategoria y nunca expone categoria_id
	resp := dto.PlatoResponse{
		ID:        3,
		Nombre:    "Merluza",
		Alergenos: []dto.AlergenoRef{{ID: 5, Nombre: "Pescado"}},
		Categoria: &dto.CategoriaRef{ID: 2, Nombre: "Principales"},
	}
	b, err := json.Marshal(resp)
	assert.NoError(t, err)

	var raw map[string]any
	assert.NoError(t, json.Unmarshal(b, &raw))
	assert.NotContains(t, raw, "categoria_id")
	assert.NotContains(t, raw, "subcategoria_id")
	assert.Contains(t, raw, "categoria")
	assert.Contains(t, raw, "alergenos")
}
