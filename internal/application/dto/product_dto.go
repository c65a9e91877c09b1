package dto

import (
	"time"

	"github.com/tu-usuario/tienda-api/internal/domain/catalog"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	ID          string  `json:"id" validate:"required"`
	Descripcion string  `json:"descripcion" validate:"required"`
	Cantidad    int     `json:"cantidad" validate:"min=1"`
	Precio      float64 `json:"precio" validate:"min=0"`
	Color       string  `json:"color" validate:"required"`
	Talla       string  `json:"talla" validate:"required"`
	Imagen      string  `json:"imagen" validate:"required"`
	Categoria   string  `json:"categoria" validate:"required"`
	Estado      string  `json:"estado"`
	Vendedor    string  `json:"vendedor"` // solo admin puede asignar otro dueño
}

// UpdateProductRequest entrada para actualizar un producto. El ID es inmutable.
type UpdateProductRequest struct {
	Descripcion *string  `json:"descripcion"`
	Cantidad    *int     `json:"cantidad"`
	Precio      *float64 `json:"precio"`
	Color       *string  `json:"color"`
	Talla       *string  `json:"talla"`
	Imagen      *string  `json:"imagen"`
	Categoria   *string  `json:"categoria"`
	Estado      *string  `json:"estado"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Descripcion string    `json:"descripcion"`
	Cantidad    int       `json:"cantidad"`
	Precio      float64   `json:"precio"`
	Color       string    `json:"color"`
	Talla       string    `json:"talla"`
	Imagen      string    `json:"imagen"`
	Categoria   string    `json:"categoria"`
	Estado      string    `json:"estado"`
	Vendedor    string    `json:"vendedor"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse página de productos con sus metadatos.
type ProductListResponse struct {
	Items      []ProductResponse  `json:"items"`
	Pagination catalog.Paginacion `json:"pagination"`
}

// StatsResponse desglose de conteos por categoría y estado.
type StatsResponse struct {
	Statistics []catalog.CategoryStats `json:"statistics"`
}
