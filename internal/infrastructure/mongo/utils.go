package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tu-usuario/tienda-api/internal/domain"
)

// Nombres de colecciones.
const (
	colProducts = "products"
	colUsers    = "users"
)

// mapErr traduce errores del driver a errores de dominio: clave duplicada y
// tiempo de espera agotado (almacén transitoriamente inaccesible) tienen
// tratamiento propio; el resto se envuelve con contexto.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicate
	}
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
