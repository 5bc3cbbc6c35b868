package service

import (
	"context"
	"testing"

	"essen/internal/domain"
	"essen/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestCrearRol_NombreDuplicado(t *testing.T) {
	svc := NewRolService(newStubRolRepo())

	_, err := svc.Crear(context.Background(), dto.CrearRolRequest{Nombre: "administrador"})
	assert.EqualError(t, err, "Ya existe un rol con ese nombre")
}

func TestCrearRol(t *testing.T) {
	svc := NewRolService(newStubRolRepo())

	resp, err := svc.Crear(context.Background(), dto.CrearRolRequest{Nombre: "Auditor"})
	assert.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Auditor", resp.Nombre)
}

func TestActualizarRol_NoExiste(t *testing.T) {
	svc := NewRolService(newStubRolRepo())

	_, err := svc.Actualizar(context.Background(), 99, dto.ActualizarRolRequest{Nombre: "Otro"})
	assert.EqualError(t, err, "Rol no encontrado")
	assert.Equal(t, domain.KindNoEncontrado, err.(*domain.Error).Kind)
}

func TestEliminarRol(t *testing.T) {
	repo := newStubRolRepo()
	svc := NewRolService(repo)

	assert.NoError(t, svc.Eliminar(context.Background(), 3))
	assert.EqualError(t, svc.Eliminar(context.Background(), 3), "Rol no encontrado")
}

func TestAlergenos_CicloCompleto(t *testing.T) {
	repo := newStubAlergenoRepo("Gluten")
	svc := NewAlergenoService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearAlergenoRequest{Nombre: "Gluten"})
	assert.EqualError(t, err, "Ya existe un alérgeno con ese nombre")

	creado, err := svc.Crear(context.Background(), dto.CrearAlergenoRequest{Nombre: "Apio"})
	assert.NoError(t, err)

	actualizado, err := svc.Actualizar(context.Background(), creado.ID, dto.ActualizarAlergenoRequest{Nombre: "Apio y derivados"})
	assert.NoError(t, err)
	assert.Equal(t, "Apio y derivados", actualizado.Nombre)

	assert.NoError(t, svc.Eliminar(context.Background(), creado.ID))
	_, err = svc.Obtener(context.Background(), creado.ID)
	assert.EqualError(t, err, "Alérgeno no encontrado")
}
