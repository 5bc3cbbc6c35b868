package model

import "time"

// Subcategoria belongs to exactly one Categoria. Its nombre is unique among
// the live subcategories of that category.
type Subcategoria struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	Nombre           string `gorm:"size:100;not null"`
	CategoriaID      uint   `gorm:"not null;index"`
	Eliminado        bool   `gorm:"not null;default:false"`
	EliminadoPor     *string
	FechaEliminacion *time.Time
	FechaCreacion     time.Time `gorm:"autoCreateTime"`
	FechaModificacion time.Time `gorm:"autoUpdateTime"`

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Subcategoria) TableName() string { return "subcategorias" }
