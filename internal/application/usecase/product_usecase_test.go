package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/catalog"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	productos map[string]*entity.Product
	// lastCriteria guarda el último predicado recibido para inspeccionarlo.
	lastCriteria catalog.Criteria
	lastPage     catalog.PageRequest
	searchErr    error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{productos: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := r.productos[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) CreateMany(_ context.Context, ps []*entity.Product) error {
	// Todo-o-nada: primero se verifica el lote completo.
	for _, p := range ps {
		if _, ok := r.productos[p.ID]; ok {
			return domain.ErrDuplicate
		}
	}
	for _, p := range ps {
		cp := *p
		r.productos[p.ID] = &cp
	}
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.productos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.productos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.productos, id)
	return nil
}

func (r *fakeProductRepo) Search(_ context.Context, crit catalog.Criteria, page catalog.PageRequest) ([]*entity.Product, int64, error) {
	r.lastCriteria = crit
	r.lastPage = page
	if r.searchErr != nil {
		return nil, 0, r.searchErr
	}
	var matches []*entity.Product
	for _, p := range r.productos {
		if !crit.Estados.Permite(p.Estado) {
			continue
		}
		if crit.Vendedor != nil && p.Vendedor != *crit.Vendedor {
			continue
		}
		if crit.Categoria != nil && p.Categoria != *crit.Categoria {
			continue
		}
		cp := *p
		matches = append(matches, &cp)
	}
	total := int64(len(matches))
	// Los tests no dependen del orden; se recorta la página sobre el total.
	off := page.Offset()
	if off >= len(matches) {
		return nil, total, nil
	}
	end := off + page.Limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[off:end], total, nil
}

func (r *fakeProductRepo) CountByCategoriaEstado(_ context.Context, crit catalog.Criteria) ([]catalog.GroupCount, error) {
	r.lastCriteria = crit
	conteo := make(map[[2]string]int64)
	for _, p := range r.productos {
		if !crit.Estados.Permite(p.Estado) {
			continue
		}
		if crit.Vendedor != nil && p.Vendedor != *crit.Vendedor {
			continue
		}
		conteo[[2]string{p.Categoria, p.Estado}]++
	}
	out := make([]catalog.GroupCount, 0, len(conteo))
	for k, n := range conteo {
		out = append(out, catalog.GroupCount{Categoria: k[0], Estado: k[1], Count: n})
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func callerAdmin() *catalog.Caller {
	return &catalog.Caller{ID: "admin-1", Role: entity.RoleAdmin}
}

func callerVendedor(id string) *catalog.Caller {
	return &catalog.Caller{ID: id, Role: entity.RoleVendedor}
}

func productoDePrueba(id, vendedor, estado string) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:          id,
		Descripcion: "Camisa manga larga",
		Cantidad:    5,
		Precio:      45.50,
		Color:       "Azul",
		Talla:       "M",
		Imagen:      "https://img.example/camisa.jpg",
		Categoria:   "Camisas",
		Estado:      estado,
		Vendedor:    vendedor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func requestDePrueba(id string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		ID:          id,
		Descripcion: "Pantalón de lino",
		Cantidad:    3,
		Precio:      80,
		Color:       "Beige",
		Talla:       "L",
		Imagen:      "https://img.example/pantalon.jpg",
		Categoria:   "Pantalones",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// List — filtro, visibilidad y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestList_InvitadoSoloVeEstadosPublicos(t *testing.T) {
	repo := newFakeProductRepo()
	require.NoError(t, repo.Create(context.Background(), productoDePrueba("1", "v-1", entity.EstadoDisponible)))
	require.NoError(t, repo.Create(context.Background(), productoDePrueba("2", "v-1", entity.EstadoAgotado)))
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.List(context.Background(), nil, catalog.Filtro{}, 1, 10)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1, "el invitado no debe ver productos agotados")
	assert.Equal(t, "1", resp.Items[0].ID)
	assert.Equal(t, int64(1), resp.Pagination.TotalItems)
}

func TestList_VendedorSiempreAcotadoASuInventario(t *testing.T) {
	repo := newFakeProductRepo()
	require.NoError(t, repo.Create(context.Background(), productoDePrueba("1", "v-1", entity.EstadoDisponible)))
	require.NoError(t, repo.Create(context.Background(), productoDePrueba("2", "v-2", entity.EstadoDisponible)))
	uc := usecase.NewProductUseCase(repo)

	// Aunque pida explícitamente el inventario de otro vendedor.
	resp, err := uc.List(context.Background(), callerVendedor("v-1"), catalog.Filtro{VendedorID: "v-2"}, 1, 10)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "v-1", resp.Items[0].Vendedor)
	require.NotNil(t, repo.lastCriteria.Vendedor)
	assert.Equal(t, "v-1", *repo.lastCriteria.Vendedor)
}

func TestList_EstadoInvalidoRetornaError(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.List(context.Background(), callerAdmin(), catalog.Filtro{Estado: "Inexistente"}, 1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_PaginacionCoherenteConElTotal(t *testing.T) {
	repo := newFakeProductRepo()
	ids := []string{"1", "2", "3", "4", "5"}
	for _, id := range ids {
		require.NoError(t, repo.Create(context.Background(), productoDePrueba(id, "v-1", entity.EstadoDisponible)))
	}
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.List(context.Background(), callerAdmin(), catalog.Filtro{}, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.Pagination.TotalItems)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.Len(t, resp.Items, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / CreateMany
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_VendedorQuedaComoDueno(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	in := requestDePrueba("7")
	in.Vendedor = "otro-vendedor" // debe ignorarse

	resp, err := uc.Create(context.Background(), callerVendedor("v-9"), in)
	require.NoError(t, err)

	assert.Equal(t, "v-9", resp.Vendedor, "el vendedor siempre es dueño de lo que crea")
	assert.Equal(t, entity.EstadoDisponible, resp.Estado, "estado por defecto Disponible")
}

func TestCreate_AdminPuedeAsignarDueno(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	in := requestDePrueba("8")
	in.Vendedor = "v-3"

	resp, err := uc.Create(context.Background(), callerAdmin(), in)
	require.NoError(t, err)
	assert.Equal(t, "v-3", resp.Vendedor)
}

func TestCreate_IDDuplicadoRetornaConflicto(t *testing.T) {
	repo := newFakeProductRepo()
	require.NoError(t, repo.Create(context.Background(), productoDePrueba("10", "v-1", entity.EstadoDisponible)))
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), callerAdmin(), requestDePrueba("10"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_IDNoNumericoRechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	in := requestDePrueba("abc")
	_, err := uc.Create(context.Background(), callerAdmin(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateMany_TodoONada(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	lote := []dto.CreateProductRequest{
		requestDePrueba("20"),
		requestDePrueba("21"),
		{ID: "22"}, // inválido: faltan campos obligatorios
	}

	_, err := uc.CreateMany(context.Background(), callerAdmin(), lote)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.productos, "un lote con un inválido no debe persistir nada")
}

func TestCreateMany_DuplicadoDentroDelLote(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	lote := []dto.CreateProductRequest{
		requestDePrueba("30"),
		requestDePrueba("30"),
	}

	_, err := uc.CreateMany(context.Background(), callerAdmin(), lote)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, repo.productos)
}

func TestCreateMany_LoteVacioRechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.CreateMany(context.Background(), callerAdmin(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateMany_LoteValidoPersisteTodo(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.CreateMany(context.Background(), callerVendedor("v-5"), []dto.CreateProductRequest{
		requestDePrueba("40"),
		requestDePrueba("41"),
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Len(t, repo.productos, 2)
	assert.Equal(t, "v-5", out[0].Vendedor)
	assert.Equal(t, "v-5", out[1].Vendedor)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete — propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_VendedorNoModificaAjeno(t *testing.T) {
	repo := newFakeProductRepo()
	require.NoError(t, repo.Create(context.Background(), productoDePrueba("50", "v-1", entity.EstadoDisponible)))
	uc := usecase.NewProductUseCase(repo)

	precio := 99.0
	_, err := uc.Update(context.Background(), callerVendedor("v-2"), "50", dto.UpdateProductRequest{Precio: &precio})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdate_AdminModificaCualquiera(t *testing.T) {
	repo := newFakeProductRepo()
	require.NoError(t, repo.Create(context.Background(), productoDePrueba("51", "v-1", entity.EstadoDisponible)))
	uc := usecase.NewProductUseCase(repo)

	estado := entity.EstadoOferta
	resp, err := uc.Update(context.Background(), callerAdmin(), "51", dto.UpdateProductRequest{Estado: &estado})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoOferta, resp.Estado)
	assert.Equal(t, "51", resp.ID, "el ID es inmutable")
}

func TestUpdate_EstadoInvalidoRechazado(t *testing.T) {
	repo := newFakeProductRepo()
	require.NoError(t, repo.Create(context.Background(), productoDePrueba("52", "v-1", entity.EstadoDisponible)))
	uc := usecase.NewProductUseCase(repo)

	estado := "Cualquiera"
	_, err := uc.Update(context.Background(), callerAdmin(), "52", dto.UpdateProductRequest{Estado: &estado})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ProductoInexistenteRetornaNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	precio := 10.0
	resp, err := uc.Update(context.Background(), callerAdmin(), "404", dto.UpdateProductRequest{Precio: &precio})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestDelete_VendedorSoloEliminaLoSuyo(t *testing.T) {
	repo := newFakeProductRepo()
	require.NoError(t, repo.Create(context.Background(), productoDePrueba("60", "v-1", entity.EstadoDisponible)))
	uc := usecase.NewProductUseCase(repo)

	err := uc.Delete(context.Background(), callerVendedor("v-2"), "60")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(context.Background(), callerVendedor("v-1"), "60")
	require.NoError(t, err)
	assert.Empty(t, repo.productos)
}

func TestDelete_InexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	err := uc.Delete(context.Background(), callerAdmin(), "404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
