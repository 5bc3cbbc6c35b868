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

type AlergenoService interface {
	Crear(ctx context.Context, req dto.CrearAlergenoRequest) (*dto.AlergenoResponse, error)
	Listar(ctx context.Context) ([]dto.AlergenoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.AlergenoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarAlergenoRequest) (*dto.AlergenoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type alergenoService struct {
	repo repository.AlergenoRepository
}

func NewAlergenoService(repo repository.AlergenoRepository) AlergenoService {
	return &alergenoService{repo: repo}
}

func (s *alergenoService) Crear(ctx context.Context, req dto.CrearAlergenoRequest) (*dto.AlergenoResponse, error) {
	if _, err := s.repo.ObtenerPorNombre(ctx, req.Nombre); err == nil {
		return nil, domain.Conflicto("Ya existe un alérgeno con ese nombre")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a := &model.Alergeno{Nombre: req.Nombre}
	if err := s.repo.Crear(ctx, a); err != nil {
		return nil, err
	}
	return &dto.AlergenoResponse{ID: a.ID, Nombre: a.Nombre}, nil
}

func (s *alergenoService) Listar(ctx context.Context) ([]dto.AlergenoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AlergenoResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, dto.AlergenoResponse{ID: a.ID, Nombre: a.Nombre})
	}
	return resp, nil
}

func (s *alergenoService) Obtener(ctx context.Context, id uint) (*dto.AlergenoResponse, error) {
	a, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoEncontrado("Alérgeno no encontrado")
		}
		return nil, err
	}
	return &dto.AlergenoResponse{ID: a.ID, Nombre: a.Nombre}, nil
}

func (s *alergenoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarAlergenoRequest) (*dto.AlergenoResponse, error) {
	a, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoEncontrado("Alérgeno no encontrado")
		}
		return nil, err
	}

	if req.Nombre != a.Nombre {
		if existente, err := s.repo.ObtenerPorNombre(ctx, req.Nombre); err == nil && existente.ID != id {
			return nil, domain.Conflicto("Ya existe un alérgeno con ese nombre")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	a.Nombre = req.Nombre
	if err := s.repo.Actualizar(ctx, a); err != nil {
		return nil, err
	}
	return &dto.AlergenoResponse{ID: a.ID, Nombre: a.Nombre}, nil
}

func (s *alergenoService) Eliminar(ctx context.Context, id uint) error {
	return s.repo.Eliminar(ctx, id)
}
