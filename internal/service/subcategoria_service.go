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

type SubcategoriaService interface {
	Crear(ctx context.Context, req dto.CrearSubcategoriaRequest) (*dto.SubcategoriaResponse, error)
	Listar(ctx context.Context, filter dto.SubcategoriaFilter) ([]dto.SubcategoriaResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.SubcategoriaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarSubcategoriaRequest) (*dto.SubcategoriaResponse, error)
	Eliminar(ctx context.Context, id uint, actor string) error
}

type subcategoriaService struct {
	repo       repository.SubcategoriaRepository
	categorias repository.CategoriaRepository
}

func NewSubcategoriaService(repo repository.SubcategoriaRepository, categorias repository.CategoriaRepository) SubcategoriaService {
	return &subcategoriaService{repo: repo, categorias: categorias}
}

func mapSubcategoria(s model.Subcategoria) dto.SubcategoriaResponse {
	resp := dto.SubcategoriaResponse{
		ID:                s.ID,
		Nombre:            s.Nombre,
		CategoriaID:       s.CategoriaID,
		FechaCreacion:     s.FechaCreacion,
		FechaModificacion: s.FechaModificacion,
	}
	if s.Categoria != nil {
		resp.Categoria = &dto.CategoriaRef{ID: s.Categoria.ID, Nombre: s.Categoria.Nombre}
	}
	return resp
}

// validarCategoriaPadre rejects categoria_id values that do not resolve to a
// live category.
func (s *subcategoriaService) validarCategoriaPadre(ctx context.Context, categoriaID uint) error {
	if _, err := s.categorias.ObtenerPorID(ctx, categoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReferenciaInvalida("La categoría especificada no existe")
		}
		return err
	}
	return nil
}

func (s *subcategoriaService) Crear(ctx context.Context, req dto.CrearSubcategoriaRequest) (*dto.SubcategoriaResponse, error) {
	if err := s.validarCategoriaPadre(ctx, req.CategoriaID); err != nil {
		return nil, err
	}

	if _, err := s.repo.ObtenerPorNombreYCategoria(ctx, req.Nombre, req.CategoriaID); err == nil {
		return nil, domain.Conflicto("Ya existe una subcategoría con ese nombre en esta categoría")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sub := &model.Subcategoria{Nombre: req.Nombre, CategoriaID: req.CategoriaID}
	if err := s.repo.Crear(ctx, sub); err != nil {
		return nil, err
	}

	// Re-read so the response carries the nested parent category.
	creada, err := s.repo.ObtenerPorID(ctx, sub.ID)
	if err != nil {
		return nil, err
	}
	resp := mapSubcategoria(*creada)
	return &resp, nil
}

func (s *subcategoriaService) Listar(ctx context.Context, filter dto.SubcategoriaFilter) ([]dto.SubcategoriaResponse, error) {
	list, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SubcategoriaResponse, 0, len(list))
	for _, sub := range list {
		resp = append(resp, mapSubcategoria(sub))
	}
	return resp, nil
}

func (s *subcategoriaService) Obtener(ctx context.Context, id uint) (*dto.SubcategoriaResponse, error) {
	sub, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoEncontrado("Subcategoría no encontrada")
		}
		return nil, err
	}
	resp := mapSubcategoria(*sub)
	return &resp, nil
}

func (s *subcategoriaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarSubcategoriaRequest) (*dto.SubcategoriaResponse, error) {
	sub, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoEncontrado("Subcategoría no encontrada")
		}
		return nil, err
	}

	if req.CategoriaID != sub.CategoriaID {
		if err := s.validarCategoriaPadre(ctx, req.CategoriaID); err != nil {
			return nil, err
		}
	}

	if req.Nombre != sub.Nombre || req.CategoriaID != sub.CategoriaID {
		if existente, err := s.repo.ObtenerPorNombreYCategoria(ctx, req.Nombre, req.CategoriaID); err == nil && existente.ID != id {
			return nil, domain.Conflicto("Ya existe una subcategoría con ese nombre en esta categoría")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	sub.Nombre = req.Nombre
	sub.CategoriaID = req.CategoriaID
	if err := s.repo.Actualizar(ctx, sub); err != nil {
		return nil, err
	}

	actualizada, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapSubcategoria(*actualizada)
	return &resp, nil
}

func (s *subcategoriaService) Eliminar(ctx context.Context, id uint, actor string) error {
	return s.repo.EliminarLogico(ctx, id, actor)
}
