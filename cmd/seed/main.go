// cmd/seed/main.go — Carga los datos iniciales: roles, alérgenos, el árbol de
// categorías del menú y un usuario administrador de demo. Idempotente: las
// filas existentes no se duplican.
// Uso: go run cmd/seed/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"essen/internal/infra"
	"essen/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var roles = []model.Rol{
	{ID: 1, Nombre: "Administrador"},
	{ID: 2, Nombre: "Usuario"},
	{ID: 3, Nombre: "Editor"},
}

var alergenos = []string{
	"Gluten", "Huevos", "Lácteos", "Frutos secos", "Pescado", "Mariscos",
	"Soja", "Sésamo", "Apio", "Mostaza", "Sulfitos", "Altramuces",
	"Cacahuetes", "Moluscos",
}

var categorias = []struct {
	Nombre        string
	Subcategorias []string
}{
	{"Entrantes", nil},
	{"Ensaladas", nil},
	{"Platos Principales", []string{"Carnes Rojas", "Carnes Blancas", "Pescados"}},
	{"Pastas", nil},
	{"Postres", nil},
	{"Bebidas sin Alcohol", nil},
	{"Bebidas con Alcohol", nil},
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "essen:essen@tcp(localhost:3306)/essen?charset=utf8mb4&parseTime=True&loc=Local"
	}

	db, err := infra.NewDatabase(dsn)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	if err := seedRoles(db); err != nil {
		log.Fatalf("seed roles: %v", err)
	}
	if err := seedAlergenos(db); err != nil {
		log.Fatalf("seed alergenos: %v", err)
	}
	if err := seedCategorias(db); err != nil {
		log.Fatalf("seed categorias: %v", err)
	}
	if err := seedAdmin(db); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	fmt.Println("✅ Datos iniciales cargados")
}

func seedRoles(db *gorm.DB) error {
	for _, r := range roles {
		var existente model.Rol
		err := db.Where("nombre = ?", r.Nombre).First(&existente).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&r).Error; err != nil {
			return err
		}
		fmt.Printf("Rol creado: %s\n", r.Nombre)
	}
	return nil
}

func seedAlergenos(db *gorm.DB) error {
	for _, nombre := range alergenos {
		var existente model.Alergeno
		err := db.Where("nombre = ?", nombre).First(&existente).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&model.Alergeno{Nombre: nombre}).Error; err != nil {
			return err
		}
		fmt.Printf("Alérgeno creado: %s\n", nombre)
	}
	return nil
}

func seedCategorias(db *gorm.DB) error {
	var total int64
	if err := db.Model(&model.Categoria{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		fmt.Println("Las categorías ya existen en la base de datos")
		return nil
	}

	for _, c := range categorias {
		cat := model.Categoria{Nombre: c.Nombre}
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
		fmt.Printf("Categoría creada: %s\n", cat.Nombre)
		for _, sub := range c.Subcategorias {
			if err := db.Create(&model.Subcategoria{Nombre: sub, CategoriaID: cat.ID}).Error; err != nil {
				return err
			}
			fmt.Printf("  - Subcategoría creada: %s\n", sub)
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	nombreUsuario := "admin"
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var existente model.Usuario
	err := db.Where("nombre_usuario = ?", nombreUsuario).First(&existente).Error
	if err == nil {
		fmt.Println("El usuario admin ya existe")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	u := model.Usuario{
		NombreUsuario: nombreUsuario,
		Email:         "admin@essen.local",
		PasswordHash:  string(hash),
		RolID:         model.RolAdministrador,
	}
	if err := db.Create(&u).Error; err != nil {
		return err
	}
	fmt.Printf("Usuario '%s' creado con password '%s'\n", nombreUsuario, password)
	return nil
}
