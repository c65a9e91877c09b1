package catalog

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// sentinelAusente llega del frontend cuando un select no tiene valor.
const sentinelAusente = "undefined"

// Filtro parámetros crudos del query string, antes de normalizar.
type Filtro struct {
	Categoria  string
	Estado     string
	MinPrecio  string
	MaxPrecio  string
	VendedorID string
	Busqueda   string
	Orden      string // "newest" | "oldest"
}

// SortOrder directiva de ordenación del resultado.
type SortOrder int

const (
	SortNewest    SortOrder = iota // por fecha de creación descendente (defecto)
	SortOldest                     // por fecha de creación ascendente
	SortRelevance                  // por puntaje de relevancia de texto, descendente
)

// Criteria predicado normalizado, construido fresco en cada petición.
// Es un valor puro: dos llamadas con las mismas entradas producen criterias
// estructuralmente idénticas.
type Criteria struct {
	Categoria *string
	Vendedor  *string
	MinPrecio *float64
	MaxPrecio *float64
	Estados   StateFilter
	Terminos  []string // términos de búsqueda normalizados; vacío = sin búsqueda
	Orden     SortOrder
}

// ConBusqueda indica si hay búsqueda de texto activa.
func (c Criteria) ConBusqueda() bool {
	return len(c.Terminos) > 0
}

// BuildCriteria arma el predicado completo a partir del filtro crudo y el caller.
//
// Reglas:
//   - categoría: igualdad exacta; "" o "undefined" = ausente.
//   - minPrecio/maxPrecio: cotas independientes; valores no numéricos se descartan.
//   - vendedor: rol vendedor siempre queda acotado a sus propios productos,
//     ignorando cualquier vendedorId del cliente; admin puede filtrar por un
//     vendedorId bien formado (uno malformado se ignora, no es error — tolerancia
//     deliberada, candidata a endurecer); demás roles no filtran por vendedor.
//   - estados: según VisibleStates. La visibilidad por rol se mantiene también
//     bajo búsqueda de texto: los roles privilegiados pueden buscar en su
//     inventario no público.
//   - búsqueda presente fuerza orden por relevancia; si no, newest/oldest.
//
// El único error posible es un estado fuera del enum (ErrInvalidInput).
func BuildCriteria(f Filtro, caller *Caller) (Criteria, error) {
	estados, err := VisibleStates(caller, valorPresente(f.Estado))
	if err != nil {
		return Criteria{}, err
	}
	crit := Criteria{Estados: estados}

	if cat := valorPresente(f.Categoria); cat != "" {
		crit.Categoria = &cat
	}
	if v, ok := parsePrecio(f.MinPrecio); ok {
		crit.MinPrecio = &v
	}
	if v, ok := parsePrecio(f.MaxPrecio); ok {
		crit.MaxPrecio = &v
	}

	switch {
	case caller != nil && caller.Role == entity.RoleVendedor:
		propio := caller.ID
		crit.Vendedor = &propio
	case caller != nil && caller.Role == entity.RoleAdmin:
		if id := valorPresente(f.VendedorID); id != "" && uuid.Validate(id) == nil {
			crit.Vendedor = &id
		}
	}

	crit.Terminos = NormalizarTerminos(f.Busqueda)
	switch {
	case crit.ConBusqueda():
		crit.Orden = SortRelevance
	case f.Orden == "oldest":
		crit.Orden = SortOldest
	default:
		crit.Orden = SortNewest
	}
	return crit, nil
}

// valorPresente normaliza el valor crudo: recorta espacios y trata "" y el
// sentinel "undefined" como ausente.
func valorPresente(s string) string {
	s = strings.TrimSpace(s)
	if s == sentinelAusente {
		return ""
	}
	return s
}

// parsePrecio convierte una cota de precio; entradas no numéricas se descartan
// en silencio (tolerancia documentada, no un error).
func parsePrecio(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == sentinelAusente {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
