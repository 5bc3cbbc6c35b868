package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearSubcategoriaRequest struct {
	Nombre      string `json:"nombre"       validate:"required,min=2,max=100,nombre_es"`
	CategoriaID uint   `json:"categoria_id" validate:"required,min=1"`
}

type ActualizarSubcategoriaRequest struct {
	Nombre      string `json:"nombre"       validate:"required,min=2,max=100,nombre_es"`
	CategoriaID uint   `json:"categoria_id" validate:"required,min=1"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type SubcategoriaFilter struct {
	Nombre      string `form:"nombre"`
	CategoriaID uint   `form:"categoria_id"`
	Limit       int    `form:"limit"  validate:"min=0"`
	Offset      int    `form:"offset" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SubcategoriaResponse struct {
	ID                uint          `json:"id"`
	Nombre            string        `json:"nombre"`
	CategoriaID       uint          `json:"categoria_id"`
	Categoria         *CategoriaRef `json:"categoria"`
	FechaCreacion     time.Time     `json:"fecha_creacion"`
	FechaModificacion time.Time     `json:"fecha_modificacion"`
}
