package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/catalog"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: CRUD, listado filtrado y carga masiva.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve una página de productos según el filtro y la identidad del
// caller. El predicado se arma fresco en cada llamada; página y total salen de
// un único viaje al almacén.
func (uc *ProductUseCase) List(ctx context.Context, caller *catalog.Caller, f catalog.Filtro, page, limit int) (*dto.ProductListResponse, error) {
	crit, err := catalog.BuildCriteria(f, caller)
	if err != nil {
		return nil, err
	}
	pr := catalog.NewPageRequest(page, limit)
	productos, total, err := uc.repo.Search(ctx, crit, pr)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items:      items,
		Pagination: catalog.NewPaginacion(total, pr),
	}, nil
}

// GetByID obtiene un producto por ID. nil sin error = no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// Create crea un producto. Un vendedor siempre queda como dueño de lo que crea;
// un admin puede asignar otro dueño explícito.
func (uc *ProductUseCase) Create(ctx context.Context, caller *catalog.Caller, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.buildProduct(caller, in, time.Now())
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// CreateMany crea un lote de productos de forma atómica: se validan todos
// antes de tocar el almacén y la inserción es todo-o-nada.
func (uc *ProductUseCase) CreateMany(ctx context.Context, caller *catalog.Caller, ins []dto.CreateProductRequest) ([]dto.ProductResponse, error) {
	if len(ins) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vistos := make(map[string]bool, len(ins))
	productos := make([]*entity.Product, 0, len(ins))
	for _, in := range ins {
		p, err := uc.buildProduct(caller, in, now)
		if err != nil {
			return nil, err
		}
		if vistos[p.ID] {
			return nil, domain.ErrDuplicate
		}
		vistos[p.ID] = true
		productos = append(productos, p)
	}
	if err := uc.repo.CreateMany(ctx, productos); err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update actualiza un producto. El ID es inmutable; un vendedor solo puede
// modificar sus propios productos.
func (uc *ProductUseCase) Update(ctx context.Context, caller *catalog.Caller, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if err := puedeModificar(caller, p); err != nil {
		return nil, err
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Cantidad != nil {
		p.Cantidad = *in.Cantidad
	}
	if in.Precio != nil {
		p.Precio = *in.Precio
	}
	if in.Color != nil {
		p.Color = *in.Color
	}
	if in.Talla != nil {
		p.Talla = *in.Talla
	}
	if in.Imagen != nil {
		p.Imagen = *in.Imagen
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if in.Estado != nil {
		p.Estado = *in.Estado
	}
	p.UpdatedAt = time.Now()
	if err := p.Validar(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina un producto. Un vendedor solo puede eliminar los suyos.
func (uc *ProductUseCase) Delete(ctx context.Context, caller *catalog.Caller, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if err := puedeModificar(caller, p); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) buildProduct(caller *catalog.Caller, in dto.CreateProductRequest, now time.Time) (*entity.Product, error) {
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoDisponible
	}
	dueno := in.Vendedor
	if caller != nil && caller.Role == entity.RoleVendedor {
		dueno = caller.ID
	} else if dueno == "" && caller != nil {
		dueno = caller.ID
	}
	p := &entity.Product{
		ID:          in.ID,
		Descripcion: in.Descripcion,
		Cantidad:    in.Cantidad,
		Precio:      in.Precio,
		Color:       in.Color,
		Talla:       in.Talla,
		Imagen:      in.Imagen,
		Categoria:   in.Categoria,
		Estado:      estado,
		Vendedor:    dueno,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := p.Validar(); err != nil {
		return nil, err
	}
	return p, nil
}

// puedeModificar aplica la regla de propiedad: admin modifica cualquier
// producto, vendedor solo los propios.
func puedeModificar(caller *catalog.Caller, p *entity.Product) error {
	if caller == nil {
		return domain.ErrUnauthorized
	}
	if caller.Role == entity.RoleAdmin {
		return nil
	}
	if caller.Role == entity.RoleVendedor && p.Vendedor == caller.ID {
		return nil
	}
	return domain.ErrForbidden
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Descripcion: p.Descripcion,
		Cantidad:    p.Cantidad,
		Precio:      p.Precio,
		Color:       p.Color,
		Talla:       p.Talla,
		Imagen:      p.Imagen,
		Categoria:   p.Categoria,
		Estado:      p.Estado,
		Vendedor:    p.Vendedor,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
