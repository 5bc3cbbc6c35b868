package repository

import (
	"context"
	"time"

	"essen/internal/domain"
	"essen/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsuarioRepository interface {
	Crear(ctx context.Context, u *model.Usuario) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Usuario, error)
	ObtenerPorNombreUsuario(ctx context.Context, nombreUsuario string) (*model.Usuario, error)
	ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error)
	Listar(ctx context.Context) ([]model.Usuario, error)
	Actualizar(ctx context.Context, u *model.Usuario) error
	EliminarLogico(ctx context.Context, id uint, actor string) error
	FechasCreacionDesde(ctx context.Context, desde time.Time) ([]time.Time, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Crear(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Rol").
		Where("id = ? AND eliminado = ?", id, false).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) ObtenerPorNombreUsuario(ctx context.Context, nombreUsuario string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Rol").
		Where("nombre_usuario = ? AND eliminado = ?", nombreUsuario, false).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Where("lower(email) = lower(?) AND eliminado = ?", email, false).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Listar(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Rol").
		Where("eliminado = ?", false).
		Order("nombre_usuario ASC").
		Find(&users).Error
	return users, err
}

func (r *usuarioRepo) Actualizar(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(u).Error
}

func (r *usuarioRepo) EliminarLogico(ctx context.Context, id uint, actor string) error {
	res := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ? AND eliminado = ?", id, false).
		Updates(map[string]any{
			"eliminado":     true,
			"eliminado_por": actor,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NoEncontrado("Usuario no encontrado")
	}
	return nil
}

func (r *usuarioRepo) FechasCreacionDesde(ctx context.Context, desde time.Time) ([]time.Time, error) {
	var fechas []time.Time
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("eliminado = ? AND fecha_creacion >= ?", false, desde).
		Order("fecha_creacion ASC").
		Pluck("fecha_creacion", &fechas).Error
	return fechas, err
}
