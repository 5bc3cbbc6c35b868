package repository

import (
	"context"

	"essen/internal/domain"
	"essen/internal/model"

	"gorm.io/gorm"
)

type RolRepository interface {
	Crear(ctx context.Context, rol *model.Rol) error
	Listar(ctx context.Context) ([]model.Rol, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Rol, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Rol, error)
	Actualizar(ctx context.Context, rol *model.Rol) error

	// Eliminar hard-deletes the role; the user dependency guard and the delete
	// run in one transaction.
	Eliminar(ctx context.Context, id uint) error
}

type rolRepo struct{ db *gorm.DB }

func NewRolRepository(db *gorm.DB) RolRepository { return &rolRepo{db: db} }

func (r *rolRepo) Crear(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Create(rol).Error
}

func (r *rolRepo) Listar(ctx context.Context) ([]model.Rol, error) {
	var roles []model.Rol
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *rolRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).First(&rol, id).Error
	if err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&rol).Error
	if err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) Actualizar(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Save(rol).Error
}

func (r *rolRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Every user row counts, soft-deleted included: a deleted user still
		// references its role.
		var n int64
		if err := tx.Model(&model.Usuario{}).
			Where("rol_id = ?", id).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return domain.Conflicto("No se puede eliminar el rol porque hay %d usuario(s) asignado(s)", n)
		}

		res := tx.Delete(&model.Rol{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NoEncontrado("Rol no encontrado")
		}
		return nil
	})
}
