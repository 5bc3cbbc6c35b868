package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearAlergenoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=100"`
}

type ActualizarAlergenoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AlergenoResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}
