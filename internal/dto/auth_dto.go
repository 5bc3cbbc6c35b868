package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario" validate:"required,min=1"`
	Password      string `json:"password"       validate:"required,min=6"`
}

type CrearUsuarioRequest struct {
	NombreUsuario string `json:"nombre_usuario" validate:"required,min=1,max=150"`
	Email         string `json:"email"          validate:"required,email"`
	Password      string `json:"password"       validate:"required,min=6"`
	RolID         *uint  `json:"rol_id"         validate:"omitempty,min=1"`
}

type ActualizarUsuarioRequest struct {
	NombreUsuario string `json:"nombre_usuario" validate:"required,min=1,max=150"`
	Email         string `json:"email"          validate:"required,email"`
	Password      string `json:"password"       validate:"omitempty,min=6"`
	RolID         *uint  `json:"rol_id"         validate:"omitempty,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// LoginUser is the user summary embedded in the login response.
// Rol carries the role id, mirroring the token claim.
type LoginUser struct {
	ID            uint   `json:"id"`
	NombreUsuario string `json:"nombre_usuario"`
	Rol           uint   `json:"rol"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type UsuarioResponse struct {
	ID                uint      `json:"id"`
	NombreUsuario     string    `json:"nombre_usuario"`
	Email             string    `json:"email"`
	Rol               *RolRef   `json:"rol"`
	FechaCreacion     time.Time `json:"fecha_creacion"`
	FechaModificacion time.Time `json:"fecha_modificacion"`
}

// RolRef is the nested {id, nombre} pair used wherever a role is embedded.
type RolRef struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}
