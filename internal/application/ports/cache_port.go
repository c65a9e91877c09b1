package ports

import (
	"context"
	"time"
)

// QueryCache caché TTL de resultados de consulta serializados.
// Get devuelve (nil, nil) en un miss; los fallos del caché nunca deben impedir
// una lectura directa del almacén.
type QueryCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
