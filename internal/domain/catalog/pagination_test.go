package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/tienda-api/internal/domain/catalog"
)

func TestNewPageRequest_CoercionDeValores(t *testing.T) {
	pr := catalog.NewPageRequest(0, 0)
	assert.Equal(t, 1, pr.Page)
	assert.Equal(t, catalog.DefaultLimit, pr.Limit)

	pr = catalog.NewPageRequest(-2, -5)
	assert.Equal(t, 1, pr.Page)
	assert.Equal(t, catalog.DefaultLimit, pr.Limit)

	pr = catalog.NewPageRequest(3, 20)
	assert.Equal(t, 3, pr.Page)
	assert.Equal(t, 20, pr.Limit)
	assert.Equal(t, 40, pr.Offset())
}

func TestNewPaginacion_Aritmetica(t *testing.T) {
	// 25 elementos con límite 10: tres páginas.
	p := catalog.NewPaginacion(25, catalog.PageRequest{Page: 2, Limit: 10})
	assert.Equal(t, int64(25), p.TotalItems)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 10, p.ItemsPerPage)

	// División exacta no agrega página extra.
	p = catalog.NewPaginacion(30, catalog.PageRequest{Page: 1, Limit: 10})
	assert.Equal(t, 3, p.TotalPages)

	// Sin resultados la paginación se mantiene consistente.
	p = catalog.NewPaginacion(0, catalog.PageRequest{Page: 1, Limit: 10})
	assert.Equal(t, int64(0), p.TotalItems)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 1, p.CurrentPage)
}

func TestNewPaginacion_PaginaFueraDeRango(t *testing.T) {
	// Pedir una página más allá del total no es error: lista vacía con
	// los mismos metadatos de paginación.
	p := catalog.NewPaginacion(5, catalog.PageRequest{Page: 9, Limit: 10})
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 9, p.CurrentPage)
}
