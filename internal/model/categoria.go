package model

import "time"

// Categoria represents a menu category owning zero or more subcategories.
type Categoria struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	Nombre           string `gorm:"size:100;not null;index"`
	Eliminado        bool   `gorm:"not null;default:false"`
	EliminadoPor     *string
	FechaEliminacion *time.Time
	FechaCreacion     time.Time `gorm:"autoCreateTime"`
	FechaModificacion time.Time `gorm:"autoUpdateTime"`

	Subcategorias []Subcategoria `gorm:"foreignKey:CategoriaID"`
}

func (Categoria) TableName() string { return "categorias" }
