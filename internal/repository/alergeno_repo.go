package repository

import (
	"context"

	"essen/internal/domain"
	"essen/internal/model"

	"gorm.io/gorm"
)

type AlergenoRepository interface {
	Crear(ctx context.Context, a *model.Alergeno) error
	Listar(ctx context.Context) ([]model.Alergeno, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Alergeno, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Alergeno, error)
	// ObtenerPorIDs resolves a dish's allergen id array; missing ids are simply
	// absent from the result, callers decide whether that is an error.
	ObtenerPorIDs(ctx context.Context, ids []uint) ([]model.Alergeno, error)
	Actualizar(ctx context.Context, a *model.Alergeno) error
	Eliminar(ctx context.Context, id uint) error
}

type alergenoRepo struct{ db *gorm.DB }

func NewAlergenoRepository(db *gorm.DB) AlergenoRepository { return &alergenoRepo{db: db} }

func (r *alergenoRepo) Crear(ctx context.Context, a *model.Alergeno) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *alergenoRepo) Listar(ctx context.Context) ([]model.Alergeno, error) {
	var list []model.Alergeno
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&list).Error
	return list, err
}

func (r *alergenoRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Alergeno, error) {
	var a model.Alergeno
	err := r.db.WithContext(ctx).First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *alergenoRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Alergeno, error) {
	var a model.Alergeno
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *alergenoRepo) ObtenerPorIDs(ctx context.Context, ids []uint) ([]model.Alergeno, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var list []model.Alergeno
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *alergenoRepo) Actualizar(ctx context.Context, a *model.Alergeno) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *alergenoRepo) Eliminar(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Alergeno{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NoEncontrado("Alérgeno no encontrado")
	}
	return nil
}
