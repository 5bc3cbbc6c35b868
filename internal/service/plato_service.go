package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"essen/internal/domain"
	"essen/internal/dto"
	"essen/internal/model"
	"essen/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	menuCacheTTL     = 5 * time.Minute
	menuCacheVersion = "menu:platos:ver"
)

// PlatoService defines business operations for dishes, including the
// denormalized read shape (nested categoria/subcategoria, resolved alergenos).
type PlatoService interface {
	Crear(ctx context.Context, req dto.CrearPlatoRequest) (*dto.PlatoResponse, error)
	Listar(ctx context.Context, filter dto.PlatoFilter) ([]dto.PlatoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.PlatoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarPlatoRequest) (*dto.PlatoResponse, error)
	Eliminar(ctx context.Context, id uint, actor string) error
	Crecimiento(ctx context.Context) ([]dto.CrecimientoPlatos, error)
}

type platoService struct {
	repo          repository.PlatoRepository
	categorias    repository.CategoriaRepository
	subcategorias repository.SubcategoriaRepository
	alergenos     repository.AlergenoRepository
	rdb           *redis.Client // nil disables the listing cache
}

func NewPlatoService(
	repo repository.PlatoRepository,
	categorias repository.CategoriaRepository,
	subcategorias repository.SubcategoriaRepository,
	alergenos repository.AlergenoRepository,
	rdb *redis.Client,
) PlatoService {
	return &platoService{
		repo:          repo,
		categorias:    categorias,
		subcategorias: subcategorias,
		alergenos:     alergenos,
		rdb:           rdb,
	}
}

// validarReferencias checks that categoria_id resolves to a live category,
// that subcategoria_id (if present) belongs to that same category, and that
// every allergen id exists.
func (s *platoService) validarReferencias(ctx context.Context, categoriaID uint, subcategoriaID *uint, alergenoIDs []uint) error {
	if _, err := s.categorias.ObtenerPorID(ctx, categoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReferenciaInvalida("La categoría especificada no existe")
		}
		return err
	}

	if subcategoriaID != nil {
		sub, err := s.subcategorias.ObtenerPorID(ctx, *subcategoriaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ReferenciaInvalida("La subcategoría especificada no existe")
			}
			return err
		}
		if sub.CategoriaID != categoriaID {
			return domain.ReferenciaInvalida("La subcategoría no pertenece a la categoría indicada")
		}
	}

	if len(alergenoIDs) > 0 {
		encontrados, err := s.alergenos.ObtenerPorIDs(ctx, alergenoIDs)
		if err != nil {
			return err
		}
		existentes := make(map[uint]bool, len(encontrados))
		for _, a := range encontrados {
			existentes[a.ID] = true
		}
		for _, id := range alergenoIDs {
			if !existentes[id] {
				return domain.ReferenciaInvalida("El alérgeno %d no existe", id)
			}
		}
	}
	return nil
}

// mapPlato resolves allergen ids to {id, nombre} pairs and nests the category
// references; the scalar fk columns do not appear in the response.
func (s *platoService) mapPlato(ctx context.Context, p model.Plato) (dto.PlatoResponse, error) {
	resp := dto.PlatoResponse{
		ID:                p.ID,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		Precio:            p.Precio,
		Image:             p.Image,
		Disponible:        p.Disponible,
		Alergenos:         []dto.AlergenoRef{},
		FechaCreacion:     p.FechaCreacion,
		FechaModificacion: p.FechaModificacion,
	}
	if p.Categoria != nil {
		resp.Categoria = &dto.CategoriaRef{ID: p.Categoria.ID, Nombre: p.Categoria.Nombre}
	}
	if p.Subcategoria != nil {
		resp.Subcategoria = &dto.CategoriaRef{ID: p.Subcategoria.ID, Nombre: p.Subcategoria.Nombre}
	}

	if len(p.Alergenos) > 0 {
		alergenos, err := s.alergenos.ObtenerPorIDs(ctx, p.Alergenos)
		if err != nil {
			return resp, err
		}
		for _, a := range alergenos {
			resp.Alergenos = append(resp.Alergenos, dto.AlergenoRef{ID: a.ID, Nombre: a.Nombre})
		}
	}
	return resp, nil
}

func (s *platoService) Crear(ctx context.Context, req dto.CrearPlatoRequest) (*dto.PlatoResponse, error) {
	if err := s.validarReferencias(ctx, req.CategoriaID, req.SubcategoriaID, req.Alergenos); err != nil {
		return nil, err
	}

	disponible := true
	if req.Disponible != nil {
		disponible = *req.Disponible
	}

	p := &model.Plato{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		Precio:         req.Precio,
		Image:          req.Image,
		CategoriaID:    req.CategoriaID,
		SubcategoriaID: req.SubcategoriaID,
		Alergenos:      req.Alergenos,
		Disponible:     disponible,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx)

	creado, err := s.repo.ObtenerPorID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp, err := s.mapPlato(ctx, *creado)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *platoService) Listar(ctx context.Context, filter dto.PlatoFilter) ([]dto.PlatoResponse, error) {
	if cached, ok := s.leerCache(ctx, filter); ok {
		return cached, nil
	}

	platos, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PlatoResponse, 0, len(platos))
	for _, p := range platos {
		m, err := s.mapPlato(ctx, p)
		if err != nil {
			return nil, err
		}
		resp = append(resp, m)
	}

	s.guardarCache(ctx, filter, resp)
	return resp, nil
}

func (s *platoService) Obtener(ctx context.Context, id uint) (*dto.PlatoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoEncontrado("Plato no encontrado")
		}
		return nil, err
	}
	resp, err := s.mapPlato(ctx, *p)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *platoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarPlatoRequest) (*dto.PlatoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoEncontrado("Plato no encontrado")
		}
		return nil, err
	}

	if err := s.validarReferencias(ctx, req.CategoriaID, req.SubcategoriaID, req.Alergenos); err != nil {
		return nil, err
	}

	p.Nombre = req.Nombre
	p.Descripcion = req.Descripcion
	p.Precio = req.Precio
	p.Image = req.Image
	p.CategoriaID = req.CategoriaID
	p.SubcategoriaID = req.SubcategoriaID
	p.Alergenos = req.Alergenos
	if req.Disponible != nil {
		p.Disponible = *req.Disponible
	}

	if err := s.repo.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx)

	actualizado, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp, err := s.mapPlato(ctx, *actualizado)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *platoService) Eliminar(ctx context.Context, id uint, actor string) error {
	if err := s.repo.EliminarLogico(ctx, id, actor); err != nil {
		return err
	}
	s.invalidarCache(ctx)
	return nil
}

func (s *platoService) Crecimiento(ctx context.Context) ([]dto.CrecimientoPlatos, error) {
	fechas, err := s.repo.FechasCreacionDesde(ctx, inicioVentanaCrecimiento())
	if err != nil {
		return nil, err
	}
	conteos := contarPorMes(fechas)
	resp := make([]dto.CrecimientoPlatos, 0, len(conteos))
	for _, c := range conteos {
		resp = append(resp, dto.CrecimientoPlatos{Mes: c.mes, Platos: c.cantidad})
	}
	return resp, nil
}

// ── Listing cache ─────────────────────────────────────────────────────────────
// Keys embed a version counter bumped on every dish mutation, so stale entries
// are never served again and expire on their own TTL. All cache failures
// degrade silently to the database.

func (s *platoService) claveCache(ctx context.Context, filter dto.PlatoFilter) string {
	ver, err := s.rdb.Get(ctx, menuCacheVersion).Result()
	if err != nil {
		ver = "0"
	}
	return fmt.Sprintf("menu:platos:v%s:c%d:s%d", ver, filter.CategoriaID, filter.SubcategoriaID)
}

func (s *platoService) leerCache(ctx context.Context, filter dto.PlatoFilter) ([]dto.PlatoResponse, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, s.claveCache(ctx, filter)).Bytes()
	if err != nil {
		return nil, false
	}
	var resp []dto.PlatoResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return resp, true
}

func (s *platoService) guardarCache(ctx context.Context, filter dto.PlatoFilter, resp []dto.PlatoResponse) {
	if s.rdb == nil {
		return
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, s.claveCache(ctx, filter), b, menuCacheTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("menu cache set failed")
	}
}

func (s *platoService) invalidarCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, menuCacheVersion).Err(); err != nil {
		log.Debug().Err(err).Msg("menu cache invalidation failed")
	}
}
