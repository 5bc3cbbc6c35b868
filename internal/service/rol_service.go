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

type RolService interface {
	Crear(ctx context.Context, req dto.CrearRolRequest) (*dto.RolResponse, error)
	Listar(ctx context.Context) ([]dto.RolResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarRolRequest) (*dto.RolResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type rolService struct {
	repo repository.RolRepository
}

func NewRolService(repo repository.RolRepository) RolService {
	return &rolService{repo: repo}
}

func (s *rolService) Crear(ctx context.Context, req dto.CrearRolRequest) (*dto.RolResponse, error) {
	if _, err := s.repo.ObtenerPorNombre(ctx, req.Nombre); err == nil {
		return nil, domain.Conflicto("Ya existe un rol con ese nombre")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rol := &model.Rol{Nombre: req.Nombre}
	if err := s.repo.Crear(ctx, rol); err != nil {
		return nil, err
	}
	return &dto.RolResponse{ID: rol.ID, Nombre: rol.Nombre}, nil
}

func (s *rolService) Listar(ctx context.Context) ([]dto.RolResponse, error) {
	roles, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RolResponse, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, dto.RolResponse{ID: r.ID, Nombre: r.Nombre})
	}
	return resp, nil
}

func (s *rolService) Actualizar(ctx context.Context, id uint, req dto.ActualizarRolRequest) (*dto.RolResponse, error) {
	rol, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoEncontrado("Rol no encontrado")
		}
		return nil, err
	}

	if req.Nombre != rol.Nombre {
		if existente, err := s.repo.ObtenerPorNombre(ctx, req.Nombre); err == nil && existente.ID != id {
			return nil, domain.Conflicto("Ya existe un rol con ese nombre")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	rol.Nombre = req.Nombre
	if err := s.repo.Actualizar(ctx, rol); err != nil {
		return nil, err
	}
	return &dto.RolResponse{ID: rol.ID, Nombre: rol.Nombre}, nil
}

func (s *rolService) Eliminar(ctx context.Context, id uint) error {
	return s.repo.Eliminar(ctx, id)
}
