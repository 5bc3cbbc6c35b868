package repository

import (
	"testing"

	"essen/internal/domain"
	"essen/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRoles(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, r := range []model.Rol{
		{ID: 1, Nombre: "Administrador"},
		{ID: 2, Nombre: "Usuario"},
	} {
		require.NoError(t, db.Create(&r).Error)
	}
}

func seedUsuario(t *testing.T, db *gorm.DB, nombre string, rolID uint) *model.Usuario {
	t.Helper()
	u := &model.Usuario{
		NombreUsuario: nombre,
		Email:         nombre + "@essen.local",
		PasswordHash:  "$2a$12$hashfalsoperosuficiente",
		RolID:         rolID,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestUsuarioRepo_PreloadRol(t *testing.T) {
	db := testDB(t)
	seedRoles(t, db)
	repo := NewUsuarioRepository(db)
	u := seedUsuario(t, db, "admin", 1)

	obtenido, err := repo.ObtenerPorID(ctx(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, obtenido.Rol)
	assert.Equal(t, "Administrador", obtenido.Rol.Nombre)
}

func TestUsuarioRepo_EmailSinDistinguirMayusculas(t *testing.T) {
	db := testDB(t)
	seedRoles(t, db)
	repo := NewUsuarioRepository(db)
	seedUsuario(t, db, "mesero", 2)

	encontrado, err := repo.ObtenerPorEmail(ctx(), "MESERO@essen.local")
	require.NoError(t, err)
	assert.Equal(t, "mesero", encontrado.NombreUsuario)
}

func TestUsuarioRepo_EliminadoNoSeEncuentra(t *testing.T) {
	db := testDB(t)
	seedRoles(t, db)
	repo := NewUsuarioRepository(db)
	u := seedUsuario(t, db, "saliente", 2)

	require.NoError(t, repo.EliminarLogico(ctx(), u.ID, "admin"))

	_, err := repo.ObtenerPorNombreUsuario(ctx(), "saliente")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	list, err := repo.Listar(ctx())
	require.NoError(t, err)
	assert.Empty(t, list)

	var fila model.Usuario
	require.NoError(t, db.First(&fila, u.ID).Error)
	assert.True(t, fila.Eliminado)
	assert.Equal(t, "admin", *fila.EliminadoPor)
}

func TestRolRepo_GuardaUsuariosAsignados(t *testing.T) {
	db := testDB(t)
	seedRoles(t, db)
	repo := NewRolRepository(db)
	u := seedUsuario(t, db, "mesero", 2)

	err := repo.Eliminar(ctx(), 2)
	assert.EqualError(t, err, "No se puede eliminar el rol porque hay 1 usuario(s) asignado(s)")
	assert.Equal(t, domain.KindConflicto, err.(*domain.Error).Kind)

	// También un usuario eliminado lógicamente sigue bloqueando el rol
	usuarioRepo := NewUsuarioRepository(db)
	require.NoError(t, usuarioRepo.EliminarLogico(ctx(), u.ID, "admin"))
	err = repo.Eliminar(ctx(), 2)
	assert.EqualError(t, err, "No se puede eliminar el rol porque hay 1 usuario(s) asignado(s)")
}

func TestRolRepo_EliminarSinUsuarios(t *testing.T) {
	db := testDB(t)
	seedRoles(t, db)
	repo := NewRolRepository(db)

	require.NoError(t, repo.Eliminar(ctx(), 1))
	_, err := repo.ObtenerPorID(ctx(), 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Borrado duro: intentarlo de nuevo es un 404
	assert.EqualError(t, repo.Eliminar(ctx(), 1), "Rol no encontrado")
}

func TestAlergenoRepo_ObtenerPorIDs(t *testing.T) {
	db := testDB(t)
	repo := NewAlergenoRepository(db)

	for _, n := range []string{"Gluten", "Huevos", "Lácteos"} {
		require.NoError(t, repo.Crear(ctx(), &model.Alergeno{Nombre: n}))
	}

	// Los ids inexistentes simplemente no aparecen
	list, err := repo.ObtenerPorIDs(ctx(), []uint{1, 3, 99})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Gluten", list[0].Nombre)
	assert.Equal(t, "Lácteos", list[1].Nombre)

	vacio, err := repo.ObtenerPorIDs(ctx(), nil)
	require.NoError(t, err)
	assert.Empty(t, vacio)
}

func TestAlergenoRepo_EliminarNoEncontrado(t *testing.T) {
	repo := NewAlergenoRepository(testDB(t))

	err := repo.Eliminar(ctx(), 42)
	assert.EqualError(t, err, "Alérgeno no encontrado")
}
