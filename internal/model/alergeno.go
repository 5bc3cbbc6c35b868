package model

// Alergeno is reference data (the 14 EU-standard allergens plus whatever the
// kitchen adds). Hard-deleted; dishes reference it by id from their JSON array.
type Alergeno struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	Nombre string `gorm:"size:100;uniqueIndex;not null"`
}

func (Alergeno) TableName() string { return "alergenos" }
