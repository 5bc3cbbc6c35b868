package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"essen/internal/domain"
	"essen/internal/dto"
	"essen/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// stubCategoriaRepo emulates the live-scoped lookups and the transactional
// delete guard of the real repository.
type stubCategoriaRepo struct {
	categorias    map[uint]*model.Categoria
	subcategorias map[uint]*model.Subcategoria // guard counts these, deleted included
	nextID        uint
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{
		categorias:    make(map[uint]*model.Categoria),
		subcategorias: make(map[uint]*model.Subcategoria),
	}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	r.nextID++
	c.ID = r.nextID
	c.FechaCreacion = time.Now()
	guardada := *c
	r.categorias[c.ID] = &guardada
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context, filter dto.CategoriaFilter) ([]model.Categoria, error) {
	var out []model.Categoria
	for _, c := range r.categorias {
		if c.Eliminado {
			continue
		}
		if filter.Nombre != "" && !strings.Contains(strings.ToLower(c.Nombre), strings.ToLower(filter.Nombre)) {
			continue
		}
		copia := *c
		for _, s := range r.subcategorias {
			if s.CategoriaID == c.ID && !s.Eliminado {
				copia.Subcategorias = append(copia.Subcategorias, *s)
			}
		}
		out = append(out, copia)
	}
	return out, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uint) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok || c.Eliminado {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *c
	for _, s := range r.subcategorias {
		if s.CategoriaID == id && !s.Eliminado {
			copia.Subcategorias = append(copia.Subcategorias, *s)
		}
	}
	return &copia, nil
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if !c.Eliminado && strings.EqualFold(c.Nombre, nombre) {
			copia := *c
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, c *model.Categoria) error {
	guardada := *c
	guardada.Subcategorias = nil
	r.categorias[c.ID] = &guardada
	return nil
}

func (r *stubCategoriaRepo) EliminarLogico(_ context.Context, id uint, actor string) error {
	var n int64
	for _, s := range r.subcategorias {
		if s.CategoriaID == id {
			n++
		}
	}
	if n > 0 {
		return domain.Conflicto("No se puede eliminar la categoría porque tiene %d subcategoría(s) asociada(s)", n)
	}
	c, ok := r.categorias[id]
	if !ok || c.Eliminado {
		return domain.NoEncontrado("Categoría no encontrada")
	}
	c.Eliminado = true
	c.EliminadoPor = &actor
	return nil
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCrearCategoria(t *testing.T) {
	svc := NewCategoriaService(newStubCategoriaRepo())

	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Postres"})
	assert.NoError(t, err)
	assert.Equal(t, "Postres", resp.Nombre)
	assert.NotZero(t, resp.ID)
	assert.NotNil(t, resp.Subcategorias)
	assert.Empty(t, resp.Subcategorias)
}

func TestCrearCategoria_NombreDuplicado(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Entrantes"})
	assert.NoError(t, err)

	// La comparación de nombre no distingue mayúsculas
	_, err = svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "entrantes"})
	assert.EqualError(t, err, "Ya existe una categoría con ese nombre")
	de := err.(*domain.Error)
	assert.Equal(t, domain.KindConflicto, de.Kind)
}

func TestCrearCategoria_NombreLiberadoTrasEliminar(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Temporada"})
	assert.NoError(t, err)
	assert.NoError(t, svc.Eliminar(context.Background(), resp.ID, "admin"))

	_, err = svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Temporada"})
	assert.NoError(t, err)
}

func TestObtenerCategoria_NoExiste(t *testing.T) {
	svc := NewCategoriaService(newStubCategoriaRepo())

	_, err := svc.Obtener(context.Background(), 7)
	assert.EqualError(t, err, "Categoría no encontrada")
	assert.Equal(t, domain.KindNoEncontrado, err.(*domain.Error).Kind)
}

func TestActualizarCategoria_ConservaNombrePropio(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	creada, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Bebidas"})
	assert.NoError(t, err)

	// Reenviar el mismo nombre no debe chocar consigo misma
	resp, err := svc.Actualizar(context.Background(), creada.ID, dto.ActualizarCategoriaRequest{Nombre: "Bebidas"})
	assert.NoError(t, err)
	assert.Equal(t, "Bebidas", resp.Nombre)
}

func TestEliminarCategoria_ConSubcategorias(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	creada, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Principales"})
	assert.NoError(t, err)
	repo.subcategorias[1] = &model.Subcategoria{ID: 1, Nombre: "Carnes", CategoriaID: creada.ID}
	repo.subcategorias[2] = &model.Subcategoria{ID: 2, Nombre: "Pescados", CategoriaID: creada.ID, Eliminado: true}

	// Las subcategorías eliminadas también bloquean: la fila sigue referenciando
	err = svc.Eliminar(context.Background(), creada.ID, "admin")
	assert.EqualError(t, err, "No se puede eliminar la categoría porque tiene 2 subcategoría(s) asociada(s)")
	assert.Equal(t, domain.KindConflicto, err.(*domain.Error).Kind)
}

func TestListarCategorias_FiltroPorNombre(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	for _, n := range []string{"Bebidas sin Alcohol", "Bebidas con Alcohol", "Postres"} {
		_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: n})
		assert.NoError(t, err)
	}

	resp, err := svc.Listar(context.Background(), dto.CategoriaFilter{Nombre: "bebidas"})
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
}
