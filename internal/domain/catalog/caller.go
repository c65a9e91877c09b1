// Package catalog contiene la lógica pura de consulta del catálogo:
// política de visibilidad por rol, construcción del predicado, directiva de
// búsqueda/ordenación, paginación y reagrupado de estadísticas.
// No realiza I/O; el adaptador de persistencia traduce Criteria al motor real.
package catalog

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// Caller identidad del solicitante, derivada de un token ya verificado.
// nil = invitado (sin token). Pertenece a la petición; no se comparte ni persiste.
type Caller struct {
	ID   string
	Role string
}

// Privilegiado indica si el caller puede ver estados no públicos.
func (c *Caller) Privilegiado() bool {
	return c != nil && (c.Role == entity.RoleAdmin || c.Role == entity.RoleVendedor)
}
