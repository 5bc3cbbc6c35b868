package infra

import (
	"fmt"

	"essen/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection against MySQL and runs AutoMigrate
// to create or update all tables. The schema is small enough that AutoMigrate
// covers it completely; there are no hand-written migrations.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// Migrate runs AutoMigrate for every model. Also used by the seeder and by
// integration tests that open their own connection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Rol{},
		&model.Usuario{},
		&model.Categoria{},
		&model.Subcategoria{},
		&model.Plato{},
		&model.Alergeno{},
	)
}
