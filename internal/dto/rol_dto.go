package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearRolRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=50,nombre_es"`
}

type ActualizarRolRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=50,nombre_es"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RolResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}
