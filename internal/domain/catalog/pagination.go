package catalog

// DefaultLimit tamaño de página cuando el cliente no envía uno válido.
// No se impone cota superior; un cliente puede pedir páginas arbitrariamente
// grandes. TODO: acordar un tope con el frontend antes de exponer la API pública.
const DefaultLimit = 100

// PageRequest página solicitada, 1-based.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest corrige valores no positivos a los defectos (page 1, limit 100).
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset desplazamiento absoluto de la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginacion metadatos de página que acompañan a los items.
type Paginacion struct {
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// NewPaginacion calcula los metadatos: totalPages = ceil(total/limit).
// El total refleja el mismo predicado que produjo la página; ambos salen de una
// sola ejecución multi-rama en el almacén, nunca de dos consultas separadas.
func NewPaginacion(totalItems int64, p PageRequest) Paginacion {
	totalPages := int((totalItems + int64(p.Limit) - 1) / int64(p.Limit))
	return Paginacion{
		TotalItems:   totalItems,
		TotalPages:   totalPages,
		CurrentPage:  p.Page,
		ItemsPerPage: p.Limit,
	}
}
