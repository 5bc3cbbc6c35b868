package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPlatoRequest struct {
	Nombre         string          `json:"nombre"          validate:"required,min=1,max=120"`
	Descripcion    *string         `json:"descripcion"`
	Precio         decimal.Decimal `json:"precio"          validate:"required,gt=0"`
	Image          *string         `json:"image"`
	CategoriaID    uint            `json:"categoria_id"    validate:"required,min=1"`
	SubcategoriaID *uint           `json:"subcategoria_id" validate:"omitempty,min=1"`
	Alergenos      []uint          `json:"alergenos"`
	Disponible     *bool           `json:"disponible"`
}

type ActualizarPlatoRequest struct {
	Nombre         string          `json:"nombre"          validate:"required,min=1,max=120"`
	Descripcion    *string         `json:"descripcion"`
	Precio         decimal.Decimal `json:"precio"          validate:"required,gt=0"`
	Image          *string         `json:"image"`
	CategoriaID    uint            `json:"categoria_id"    validate:"required,min=1"`
	SubcategoriaID *uint           `json:"subcategoria_id" validate:"omitempty,min=1"`
	Alergenos      []uint          `json:"alergenos"`
	Disponible     *bool           `json:"disponible"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// PlatoFilter uses the camelCase query names the admin client sends.
type PlatoFilter struct {
	CategoriaID    uint `form:"categoriaId"`
	SubcategoriaID uint `form:"subcategoriaId"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// AlergenoRef is the resolved {id, nombre} pair replacing raw allergen ids
// in dish responses.
type AlergenoRef struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

// PlatoResponse deliberately has no categoria_id/subcategoria_id scalars:
// the client receives the nested objects instead.
type PlatoResponse struct {
	ID                uint            `json:"id"`
	Nombre            string          `json:"nombre"`
	Descripcion       *string         `json:"descripcion"`
	Precio            decimal.Decimal `json:"precio"`
	Image             *string         `json:"image"`
	Disponible        bool            `json:"disponible"`
	Alergenos         []AlergenoRef   `json:"alergenos"`
	Categoria         *CategoriaRef   `json:"categoria"`
	Subcategoria      *CategoriaRef   `json:"subcategoria"`
	FechaCreacion     time.Time       `json:"fecha_creacion"`
	FechaModificacion time.Time       `json:"fecha_modificacion"`
}

// CrecimientoPlatos / CrecimientoUsuarios are one month's creation count for
// the dashboard charts; Mes is formatted YYYY-MM.
type CrecimientoPlatos struct {
	Mes    string `json:"mes"`
	Platos int    `json:"platos"`
}

type CrecimientoUsuarios struct {
	Mes      string `json:"mes"`
	Usuarios int    `json:"usuarios"`
}
