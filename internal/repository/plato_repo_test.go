package repository

import (
	"testing"
	"time"

	"essen/internal/dto"
	"essen/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func seedPlato(t *testing.T, repo PlatoRepository, nombre string, catID uint, subID *uint) *model.Plato {
	t.Helper()
	p := &model.Plato{
		Nombre:         nombre,
		Precio:         decimal.NewFromFloat(12.50),
		CategoriaID:    catID,
		SubcategoriaID: subID,
		Disponible:     true,
	}
	require.NoError(t, repo.Crear(ctx(), p))
	return p
}

func TestPlatoRepo_AlergenosComoJSON(t *testing.T) {
	db := testDB(t)
	repo := NewPlatoRepository(db)
	cat := seedCategoria(t, db, "Principales")

	p := &model.Plato{
		Nombre:      "Tortilla",
		Precio:      decimal.NewFromFloat(9.90),
		CategoriaID: cat.ID,
		Alergenos:   datatypes.JSONSlice[uint]{2, 3},
		Disponible:  true,
	}
	require.NoError(t, repo.Crear(ctx(), p))

	obtenido, err := repo.ObtenerPorID(ctx(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, datatypes.JSONSlice[uint]{2, 3}, obtenido.Alergenos)
	assert.True(t, obtenido.Precio.Equal(decimal.NewFromFloat(9.90)))
}

func TestPlatoRepo_ListarExcluyeEliminados(t *testing.T) {
	db := testDB(t)
	repo := NewPlatoRepository(db)
	cat := seedCategoria(t, db, "Principales")

	vivo := seedPlato(t, repo, "Vivo", cat.ID, nil)
	muerto := seedPlato(t, repo, "Muerto", cat.ID, nil)
	require.NoError(t, repo.EliminarLogico(ctx(), muerto.ID, "admin"))

	list, err := repo.Listar(ctx(), dto.PlatoFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, vivo.ID, list[0].ID)
	require.NotNil(t, list[0].Categoria)
	assert.Equal(t, "Principales", list[0].Categoria.Nombre)
}

func TestPlatoRepo_FiltroPorCategoriaYSubcategoria(t *testing.T) {
	db := testDB(t)
	repo := NewPlatoRepository(db)
	cat1 := seedCategoria(t, db, "Principales")
	cat2 := seedCategoria(t, db, "Postres")
	sub := &model.Subcategoria{Nombre: "Pescados", CategoriaID: cat1.ID}
	require.NoError(t, db.Create(sub).Error)

	seedPlato(t, repo, "Merluza", cat1.ID, &sub.ID)
	seedPlato(t, repo, "Entrecot", cat1.ID, nil)
	seedPlato(t, repo, "Flan", cat2.ID, nil)

	porCat, err := repo.Listar(ctx(), dto.PlatoFilter{CategoriaID: cat1.ID})
	require.NoError(t, err)
	assert.Len(t, porCat, 2)

	porSub, err := repo.Listar(ctx(), dto.PlatoFilter{SubcategoriaID: sub.ID})
	require.NoError(t, err)
	require.Len(t, porSub, 1)
	assert.Equal(t, "Merluza", porSub[0].Nombre)
	require.NotNil(t, porSub[0].Subcategoria)
	assert.Equal(t, "Pescados", porSub[0].Subcategoria.Nombre)
}

func TestPlatoRepo_EliminarNoEncontrado(t *testing.T) {
	repo := NewPlatoRepository(testDB(t))

	err := repo.EliminarLogico(ctx(), 42, "admin")
	assert.EqualError(t, err, "Plato no encontrado")
}

func TestPlatoRepo_FechasCreacionExcluyeEliminadosYAntiguos(t *testing.T) {
	db := testDB(t)
	repo := NewPlatoRepository(db)
	cat := seedCategoria(t, db, "Principales")

	seedPlato(t, repo, "Reciente", cat.ID, nil)
	viejo := seedPlato(t, repo, "Viejo", cat.ID, nil)
	borrado := seedPlato(t, repo, "Borrado", cat.ID, nil)

	haceUnAño := time.Now().AddDate(-1, 0, 0)
	require.NoError(t, db.Model(&model.Plato{}).Where("id = ?", viejo.ID).
		Update("fecha_creacion", haceUnAño).Error)
	require.NoError(t, repo.EliminarLogico(ctx(), borrado.ID, "admin"))

	fechas, err := repo.FechasCreacionDesde(ctx(), time.Now().AddDate(0, -6, 0))
	require.NoError(t, err)
	assert.Len(t, fechas, 1)
}

func TestPlatoRepo_ActualizarConservaRelaciones(t *testing.T) {
	db := testDB(t)
	repo := NewPlatoRepository(db)
	cat := seedCategoria(t, db, "Principales")

	p := seedPlato(t, repo, "Merluza", cat.ID, nil)

	obtenido, err := repo.ObtenerPorID(ctx(), p.ID)
	require.NoError(t, err)
	obtenido.Precio = decimal.NewFromFloat(15.00)
	obtenido.Disponible = false
	require.NoError(t, repo.Actualizar(ctx(), obtenido))

	// El Save con la categoría precargada no debe duplicar ni tocar categorías
	var n int64
	require.NoError(t, db.Model(&model.Categoria{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	releido, err := repo.ObtenerPorID(ctx(), p.ID)
	require.NoError(t, err)
	assert.False(t, releido.Disponible)
	assert.True(t, releido.Precio.Equal(decimal.NewFromFloat(15.00)))
}
