package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-api/internal/domain"
)

// Estados de ciclo de vida de un producto. Disponible, Nuevo y Oferta son
// comercialmente visibles; Agotado y Descontinuado solo los ven roles privilegiados.
const (
	EstadoDisponible    = "Disponible"
	EstadoNuevo         = "Nuevo"
	EstadoOferta        = "Oferta"
	EstadoAgotado       = "Agotado"
	EstadoDescontinuado = "Descontinuado"
)

// EstadosPublicos devuelve los estados visibles para invitados y clientes.
func EstadosPublicos() []string {
	return []string{EstadoDisponible, EstadoNuevo, EstadoOferta}
}

// EstadoValido verifica que el estado pertenezca al enum conocido.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoDisponible, EstadoNuevo, EstadoOferta, EstadoAgotado, EstadoDescontinuado:
		return true
	}
	return false
}

// Product representa una prenda del catálogo.
// El ID se almacena como string pero su valor es numérico ("10.23"):
// ordena como 10.23, no lexicográficamente. Inmutable después de crear.
type Product struct {
	ID          string
	Descripcion string
	Cantidad    int
	Precio      float64
	Color       string
	Talla       string
	Imagen      string
	Categoria   string
	Estado      string
	Vendedor    string // ID del User dueño
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ParseProductID valida el invariante de ID numérico-ordenable y devuelve su
// clave de orden exacta. Rechaza vacíos, no numéricos y negativos.
func ParseProductID(id string) (decimal.Decimal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return decimal.Decimal{}, domain.ErrInvalidInput
	}
	d, err := decimal.NewFromString(id)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, domain.ErrInvalidInput
	}
	return d, nil
}

// Validar verifica los invariantes del producto antes de persistir.
func (p *Product) Validar() error {
	if _, err := ParseProductID(p.ID); err != nil {
		return err
	}
	if p.Descripcion == "" || p.Color == "" || p.Talla == "" || p.Imagen == "" || p.Categoria == "" {
		return domain.ErrInvalidInput
	}
	if p.Cantidad < 1 || p.Precio < 0 {
		return domain.ErrInvalidInput
	}
	if !EstadoValido(p.Estado) {
		return domain.ErrInvalidInput
	}
	return nil
}
