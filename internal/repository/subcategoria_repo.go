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

type SubcategoriaRepository interface {
	Crear(ctx context.Context, s *model.Subcategoria) error
	Listar(ctx context.Context, filter dto.SubcategoriaFilter) ([]model.Subcategoria, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Subcategoria, error)
	// ObtenerPorNombreYCategoria scopes the uniqueness lookup to one parent:
	// two live subcategories may share a name across different categories.
	ObtenerPorNombreYCategoria(ctx context.Context, nombre string, categoriaID uint) (*model.Subcategoria, error)
	Actualizar(ctx context.Context, s *model.Subcategoria) error
	EliminarLogico(ctx context.Context, id uint, actor string) error
}

type subcategoriaRepo struct{ db *gorm.DB }

func NewSubcategoriaRepository(db *gorm.DB) SubcategoriaRepository {
	return &subcategoriaRepo{db: db}
}

func (r *subcategoriaRepo) Crear(ctx context.Context, s *model.Subcategoria) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *subcategoriaRepo) Listar(ctx context.Context, filter dto.SubcategoriaFilter) ([]model.Subcategoria, error) {
	var list []model.Subcategoria
	q := r.db.WithContext(ctx).
		Where("eliminado = ?", false).
		Preload("Categoria").
		Order("nombre ASC")

	if filter.Nombre != "" {
		q = q.Where("nombre LIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.CategoriaID > 0 {
		q = q.Where("categoria_id = ?", filter.CategoriaID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	err := q.Find(&list).Error
	return list, err
}

func (r *subcategoriaRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Subcategoria, error) {
	var s model.Subcategoria
	err := r.db.WithContext(ctx).
		Preload("Categoria").
		Where("id = ? AND eliminado = ?", id, false).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subcategoriaRepo) ObtenerPorNombreYCategoria(ctx context.Context, nombre string, categoriaID uint) (*model.Subcategoria, error) {
	var s model.Subcategoria
	err := r.db.WithContext(ctx).
		Where("lower(nombre) = lower(?) AND categoria_id = ? AND eliminado = ?", nombre, categoriaID, false).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subcategoriaRepo) Actualizar(ctx context.Context, s *model.Subcategoria) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error
}

func (r *subcategoriaRepo) EliminarLogico(ctx context.Context, id uint, actor string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Plato{}).
			Where("subcategoria_id = ?", id).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return domain.Conflicto("No se puede eliminar la subcategoría porque tiene %d plato(s) asociado(s)", n)
		}

		res := tx.Model(&model.Subcategoria{}).
			Where("id = ? AND eliminado = ?", id, false).
			Updates(map[string]any{
				"eliminado":         true,
				"eliminado_por":     actor,
				"fecha_eliminacion": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NoEncontrado("Subcategoría no encontrada")
		}
		return nil
	})
}
