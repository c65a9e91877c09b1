package repository

import (
	"context"

	"github.com/tu-usuario/tienda-api/internal/domain/catalog"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// El adaptador traduce Criteria al lenguaje de consulta del almacén; el
// dominio nunca ve BSON ni pipelines.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	// CreateMany inserta el lote completo o nada: cualquier fallo parcial
	// revierte todos los documentos del lote.
	CreateMany(ctx context.Context, ps []*entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
	// Search devuelve la página y el total de coincidencias del mismo
	// predicado en un único viaje al almacén.
	Search(ctx context.Context, crit catalog.Criteria, page catalog.PageRequest) ([]*entity.Product, int64, error)
	// CountByCategoriaEstado agrupa las coincidencias del predicado por
	// (categoría, estado).
	CountByCategoriaEstado(ctx context.Context, crit catalog.Criteria) ([]catalog.GroupCount, error)
}
