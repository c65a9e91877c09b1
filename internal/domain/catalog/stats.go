package catalog

import (
	"sort"
	"strings"
)

// Etiquetas sintéticas del desglose estadístico.
const (
	CategoriaRollup   = "all"           // agregado transversal, siempre primero
	SinCategoria      = "Sin categoría" // categoría nula o vacía
	EstadoDesconocido = "Desconocido"   // estado nulo o vacío
)

// GroupCount conteo crudo por (categoría, estado) tal como lo devuelve el almacén.
type GroupCount struct {
	Categoria string
	Estado    string
	Count     int64
}

// CategoryStats desglose de estados dentro de una categoría.
type CategoryStats struct {
	Categoria string           `json:"categoria"`
	Estados   map[string]int64 `json:"estados"`
}

// BuildStats reagrupa los conteos en una lista de categorías con su mapa de
// estados y antepone la entrada sintética "all" que suma cada estado a través
// de todas las categorías. Valores nulos o en blanco se normalizan a las
// etiquetas sintéticas; se recortan espacios. Las categorías van ordenadas por
// etiqueta para que la salida sea determinista.
func BuildStats(groups []GroupCount) []CategoryStats {
	porCategoria := make(map[string]map[string]int64)
	rollup := make(map[string]int64)

	for _, g := range groups {
		cat := strings.TrimSpace(g.Categoria)
		if cat == "" {
			cat = SinCategoria
		}
		estado := strings.TrimSpace(g.Estado)
		if estado == "" {
			estado = EstadoDesconocido
		}
		if porCategoria[cat] == nil {
			porCategoria[cat] = make(map[string]int64)
		}
		porCategoria[cat][estado] += g.Count
		rollup[estado] += g.Count
	}

	etiquetas := make([]string, 0, len(porCategoria))
	for cat := range porCategoria {
		etiquetas = append(etiquetas, cat)
	}
	sort.Strings(etiquetas)

	out := make([]CategoryStats, 0, len(porCategoria)+1)
	out = append(out, CategoryStats{Categoria: CategoriaRollup, Estados: rollup})
	for _, cat := range etiquetas {
		out = append(out, CategoryStats{Categoria: cat, Estados: porCategoria[cat]})
	}
	return out
}
