package service

import (
	"context"
	"errors"

	"essen/internal/domain"
	"essen/internal/dto"
	"essen/internal/model"
	"essen/internal/repository"

	"gorm.io/gorm"
)

// CategoriaService defines business operations for menu categories.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context, filter dto.CategoriaFilter) ([]dto.CategoriaResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uint, actor string) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	subs := make([]dto.CategoriaRef, 0, len(c.Subcategorias))
	for _, s := range c.Subcategorias {
		subs = append(subs, dto.CategoriaRef{ID: s.ID, Nombre: s.Nombre})
	}
	return dto.CategoriaResponse{
		ID:                c.ID,
		Nombre:            c.Nombre,
		Subcategorias:     subs,
		FechaCreacion:     c.FechaCreacion,
		FechaModificacion: c.FechaModificacion,
	}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	// Uniqueness among live categories; a soft-deleted name may be reused.
	if _, err := s.repo.ObtenerPorNombre(ctx, req.Nombre); err == nil {
		return nil, domain.Conflicto("Ya existe una categoría con ese nombre")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.Categoria{Nombre: req.Nombre}
	if err := s.repo.Crear(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategoria(*c)
	return &resp, nil
}

func (s *categoriaService) Listar(ctx context.Context, filter dto.CategoriaFilter) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, mapCategoria(c))
	}
	return resp, nil
}

func (s *categoriaService) Obtener(ctx context.Context, id uint) (*dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoEncontrado("Categoría no encontrada")
		}
		return nil, err
	}
	resp := mapCategoria(*c)
	return &resp, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoEncontrado("Categoría no encontrada")
		}
		return nil, err
	}

	if req.Nombre != c.Nombre {
		if existente, err := s.repo.ObtenerPorNombre(ctx, req.Nombre); err == nil && existente.ID != id {
			return nil, domain.Conflicto("Ya existe una categoría con ese nombre")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	c.Nombre = req.Nombre
	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategoria(*c)
	return &resp, nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id uint, actor string) error {
	return s.repo.EliminarLogico(ctx, id, actor)
}
