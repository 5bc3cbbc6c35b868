package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=100,nombre_es"`
}

// Update carries the same validation as create: nombre is always required.
type ActualizarCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=100,nombre_es"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// CategoriaFilter narrows the listing by name substring; limit=0 means no cap.
type CategoriaFilter struct {
	Nombre string `form:"nombre"`
	Limit  int    `form:"limit"  validate:"min=0"`
	Offset int    `form:"offset" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// CategoriaRef is the nested {id, nombre} pair embedded in subcategory and
// dish responses.
type CategoriaRef struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

type CategoriaResponse struct {
	ID                uint           `json:"id"`
	Nombre            string         `json:"nombre"`
	Subcategorias     []CategoriaRef `json:"subcategorias"`
	FechaCreacion     time.Time      `json:"fecha_creacion"`
	FechaModificacion time.Time      `json:"fecha_modificacion"`
}
