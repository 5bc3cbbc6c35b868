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

// CategoriaRepository defines the data access contract for menu categories.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	Listar(ctx context.Context, filter dto.CategoriaFilter) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	Actualizar(ctx context.Context, c *model.Categoria) error

	// EliminarLogico runs the subcategory dependency guard and the soft-delete
	// write inside one transaction, so two concurrent deletes cannot race past
	// the guard.
	EliminarLogico(ctx context.Context, id uint, actor string) error
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) Listar(ctx context.Context, filter dto.CategoriaFilter) ([]model.Categoria, error) {
	var list []model.Categoria
	q := r.db.WithContext(ctx).
		Where("eliminado = ?", false).
		Preload("Subcategorias", "eliminado = ?", false).
		Order("nombre ASC")

	if filter.Nombre != "" {
		q = q.Where("nombre LIKE ?", "%"+filter.Nombre+"%")
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

func (r *categoriaRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).
		Preload("Subcategorias", "eliminado = ?", false).
		Where("id = ? AND eliminado = ?", id, false).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).
		Where("lower(nombre) = lower(?) AND eliminado = ?", nombre, false).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) Actualizar(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error
}

func (r *categoriaRepo) EliminarLogico(ctx context.Context, id uint, actor string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The guard counts every subcategory row, deleted or not: a soft-deleted
		// subcategory still references its parent.
		var n int64
		if err := tx.Model(&model.Subcategoria{}).
			Where("categoria_id = ?", id).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return domain.Conflicto("No se puede eliminar la categoría porque tiene %d subcategoría(s) asociada(s)", n)
		}

		res := tx.Model(&model.Categoria{}).
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
			return domain.NoEncontrado("Categoría no encontrada")
		}
		return nil
	})
}
