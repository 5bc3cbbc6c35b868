package repository

import (
	"context"
	"time"

	"essen/internal/domain"
	"essen/internal/dto"
	"essen/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlatoRepository interface {
	Crear(ctx context.Context, p *model.Plato) error
	Listar(ctx context.Context, filter dto.PlatoFilter) ([]model.Plato, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Plato, error)
	Actualizar(ctx context.Context, p *model.Plato) error
	EliminarLogico(ctx context.Context, id uint, actor string) error

	// FechasCreacionDesde returns the creation timestamps of live dishes since
	// the given instant. Month bucketing happens in the service so the query
	// stays portable across drivers.
	FechasCreacionDesde(ctx context.Context, desde time.Time) ([]time.Time, error)
}

type platoRepo struct{ db *gorm.DB }

func NewPlatoRepository(db *gorm.DB) PlatoRepository { return &platoRepo{db: db} }

func (r *platoRepo) Crear(ctx context.Context, p *model.Plato) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *platoRepo) Listar(ctx context.Context, filter dto.PlatoFilter) ([]model.Plato, error) {
	var platos []model.Plato
	q := r.db.WithContext(ctx).
		Where("eliminado = ?", false).
		Preload("Categoria").
		Preload("Subcategoria").
		Order("nombre ASC")

	if filter.CategoriaID > 0 {
		q = q.Where("categoria_id = ?", filter.CategoriaID)
	}
	if filter.SubcategoriaID > 0 {
		q = q.Where("subcategoria_id = ?", filter.SubcategoriaID)
	}

	err := q.Find(&platos).Error
	return platos, err
}

func (r *platoRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Plato, error) {
	var p model.Plato
	err := r.db.WithContext(ctx).
		Preload("Categoria").
		Preload("Subcategoria").
		Where("id = ? AND eliminado = ?", id, false).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *platoRepo) Actualizar(ctx context.Context, p *model.Plato) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *platoRepo) EliminarLogico(ctx context.Context, id uint, actor string) error {
	res := r.db.WithContext(ctx).Model(&model.Plato{}).
		Where("id = ? AND eliminado = ?", id, false).
		Updates(map[string]any{
			"eliminado":     true,
			"eliminado_por": actor,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NoEncontrado("Plato no encontrado")
	}
	return nil
}

func (r *platoRepo) FechasCreacionDesde(ctx context.Context, desde time.Time) ([]time.Time, error) {
	var fechas []time.Time
	err := r.db.WithContext(ctx).Model(&model.Plato{}).
		Where("eliminado = ? AND fecha_creacion >= ?", false, desde).
		Order("fecha_creacion ASC").
		Pluck("fecha_creacion", &fechas).Error
	return fechas, err
}
