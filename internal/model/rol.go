package model

// Rol is immutable reference data. Seeded ids: 1 Administrador, 2 Usuario,
// 3 Editor. Roles are hard-deleted, guarded by the usuarios that reference them.
type Rol struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	Nombre string `gorm:"size:50;uniqueIndex;not null"`
}

// RolAdministrador is the role id whose token holders pass RequireAdmin.
const RolAdministrador uint = 1

// RolUsuario is the default role assigned to new users.
const RolUsuario uint = 2

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Rol) TableName() string { return "roles" }
