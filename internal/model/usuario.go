package model

import "time"

// Usuario stores admin-panel users. Soft-deleted only: eliminado flips to true
// and the row stays for audit. nombre_usuario/email uniqueness is enforced in
// the service layer scoped to live rows, so no DB unique index here.
type Usuario struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	NombreUsuario string `gorm:"size:150;not null;index"`
	Email         string `gorm:"size:255;not null;index"`
	PasswordHash  string `gorm:"size:100;not null"`
	RolID         uint   `gorm:"not null;default:2;index"`
	Eliminado     bool   `gorm:"not null;default:false"`
	EliminadoPor  *string
	FechaCreacion     time.Time `gorm:"autoCreateTime"`
	FechaModificacion time.Time `gorm:"autoUpdateTime"`

	Rol *Rol `gorm:"foreignKey:RolID"`
}

func (Usuario) TableName() string { return "usuarios" }
