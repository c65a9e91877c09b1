package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/catalog"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

func admin() *catalog.Caller    { return &catalog.Caller{ID: "a1", Role: entity.RoleAdmin} }
func vendedor() *catalog.Caller { return &catalog.Caller{ID: "v1", Role: entity.RoleVendedor} }
func cliente() *catalog.Caller  { return &catalog.Caller{ID: "c1", Role: entity.RoleCliente} }

// Invitados y clientes solo ven el conjunto público, pidan lo que pidan.
func TestVisibleStates_InvitadoSoloEstadosPublicos(t *testing.T) {
	casos := []struct {
		nombre     string
		caller     *catalog.Caller
		solicitado string
		esperado   []string
	}{
		{"invitado sin filtro", nil, "", entity.EstadosPublicos()},
		{"cliente sin filtro", cliente(), "", entity.EstadosPublicos()},
		{"invitado pide estado público", nil, entity.EstadoOferta, []string{entity.EstadoOferta}},
		{"cliente pide estado público", cliente(), entity.EstadoNuevo, []string{entity.EstadoNuevo}},
		{"invitado pide estado privado", nil, entity.EstadoAgotado, entity.EstadosPublicos()},
		{"cliente pide estado privado", cliente(), entity.EstadoDescontinuado, entity.EstadosPublicos()},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			f, err := catalog.VisibleStates(c.caller, c.solicitado)
			require.NoError(t, err)
			assert.Equal(t, c.esperado, f.Estados)
			for _, e := range f.Estados {
				assert.Contains(t, entity.EstadosPublicos(), e,
					"ningún estado no público debe ser visible para %s", c.nombre)
			}
		})
	}
}

// Admin y vendedor ven todo sin filtro, y su filtro explícito se respeta tal cual.
func TestVisibleStates_PrivilegiadosVenTodo(t *testing.T) {
	for _, caller := range []*catalog.Caller{admin(), vendedor()} {
		f, err := catalog.VisibleStates(caller, "")
		require.NoError(t, err)
		assert.True(t, f.SinRestriccion(), "%s sin filtro no debe tener restricción", caller.Role)

		f, err = catalog.VisibleStates(caller, entity.EstadoAgotado)
		require.NoError(t, err)
		assert.Equal(t, []string{entity.EstadoAgotado}, f.Estados,
			"%s debe poder filtrar por un estado no público", caller.Role)
	}
}

// Un estado fuera del enum se rechaza para cualquier rol, no se pasa al almacén.
func TestVisibleStates_EstadoDesconocidoRechazado(t *testing.T) {
	for _, caller := range []*catalog.Caller{nil, cliente(), vendedor(), admin()} {
		_, err := catalog.VisibleStates(caller, "Inexistente")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestStateFilter_Permite(t *testing.T) {
	f := catalog.StateFilter{Estados: []string{entity.EstadoNuevo}}
	assert.True(t, f.Permite(entity.EstadoNuevo))
	assert.False(t, f.Permite(entity.EstadoAgotado))

	todo := catalog.StateFilter{}
	assert.True(t, todo.Permite(entity.EstadoDescontinuado))
}
