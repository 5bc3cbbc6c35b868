package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Plato is a menu dish. Alergenos holds allergen ids as a JSON array column
// (no join table); every id is validated against the alergenos table at write
// time and resolved to {id, nombre} pairs on read.
type Plato struct {
	ID             uint            `gorm:"primaryKey;autoIncrement"`
	Nombre         string          `gorm:"size:120;not null;index"`
	Descripcion    *string         `gorm:"type:text"`
	Precio         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image          *string         `gorm:"size:500"`
	CategoriaID    uint            `gorm:"not null;index"`
	SubcategoriaID *uint           `gorm:"index"`
	Alergenos      datatypes.JSONSlice[uint]
	Disponible     bool `gorm:"not null;default:true"`
	Eliminado      bool `gorm:"not null;default:false"`
	EliminadoPor   *string
	FechaCreacion     time.Time `gorm:"autoCreateTime"`
	FechaModificacion time.Time `gorm:"autoUpdateTime"`

	Categoria    *Categoria    `gorm:"foreignKey:CategoriaID"`
	Subcategoria *Subcategoria `gorm:"foreignKey:SubcategoriaID"`
}

func (Plato) TableName() string { return "platos" }
