package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: el repo de productos captura los argumentos de List para
// verificar qué llega a la capa de persistencia.
// ──────────────────────────────────────────────────────────────────────────────

type listCall struct {
	filter    repository.ProductFilter
	limit     int
	offset    int
	sortBy    string
	sortOrder string
}

type fakeProductRepo struct {
	lastList *listCall
	rows     []repository.ProductListRow
	total    int
	detail   *repository.ProductListRow
	byID     map[string]*entity.Product
	history  map[string]bool

	deactivated []string
	deleted     []string
}

func (r *fakeProductRepo) List(filter repository.ProductFilter, limit, offset int, sortBy, sortOrder string) ([]repository.ProductListRow, int, error) {
	r.lastList = &listCall{filter: filter, limit: limit, offset: offset, sortBy: sortBy, sortOrder: sortOrder}
	return r.rows, r.total, nil
}
func (r *fakeProductRepo) GetActiveDetail(string) (*repository.ProductListRow, error) {
	return r.detail, nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.byID[id], nil }
func (r *fakeProductRepo) HasOrderHistory(id string) (bool, error) { return r.history[id], nil }
func (r *fakeProductRepo) Deactivate(id string) error {
	r.deactivated = append(r.deactivated, id)
	return nil
}
func (r *fakeProductRepo) Delete(id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}
func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) DecrementStock(string, int) (bool, error) { return false, nil }

type fakeCategoryRepo struct {
	byID   map[string]*entity.Category
	counts map[string]int
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) { return r.byID[id], nil }
func (r *fakeCategoryRepo) GetWithCount(id string) (*repository.CategoryWithCount, error) {
	c := r.byID[id]
	if c == nil {
		return nil, nil
	}
	return &repository.CategoryWithCount{Category: *c, ProductCount: r.counts[id]}, nil
}
func (r *fakeCategoryRepo) Create(*entity.Category) error { return nil }
func (r *fakeCategoryRepo) ListWithCount() ([]repository.CategoryWithCount, error) {
	var out []repository.CategoryWithCount
	for id, c := range r.byID {
		out = append(out, repository.CategoryWithCount{Category: *c, ProductCount: r.counts[id]})
	}
	return out, nil
}

type fakeReviewRepo struct{ rows []repository.ReviewRow }

func (r *fakeReviewRepo) ListByProduct(string) ([]repository.ReviewRow, error) { return r.rows, nil }
func (r *fakeReviewRepo) Create(*entity.Review) error { return nil }
func (r *fakeReviewRepo) Exists(_, _ string) (bool, error) { return false, nil }
func (r *fakeReviewRepo) GetWithUser(string) (*repository.ReviewRow, error) { return nil, nil }

func newProductUC(repo *fakeProductRepo) *catalog.ProductUseCase {
	return catalog.NewProductUseCase(repo, &fakeCategoryRepo{byID: map[string]*entity.Category{}}, &fakeReviewRepo{})
}

// ──────────────────────────────────────────────────────────────────────────────
// List: whitelist de orden, límites y paginación
// ──────────────────────────────────────────────────────────────────────────────

// Columnas fuera de la whitelist (price, name, created_at) se rechazan: el
// nombre de columna jamás debe viajar crudo hacia el SQL.
func TestList_SortFueraDeWhitelist(t *testing.T) {
	uc := newProductUC(&fakeProductRepo{})
	for _, sortBy := range []string{"stock_quantity", "id; DROP TABLE products", "precio"} {
		_, err := uc.List(dto.ListProductsQuery{SortBy: sortBy})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "sortBy %q debe rechazarse", sortBy)
	}
	_, err := uc.List(dto.ListProductsQuery{SortOrder: "sideways"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_SortPermitido(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newProductUC(repo)
	_, err := uc.List(dto.ListProductsQuery{SortBy: "price", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, "price", repo.lastList.sortBy)
	assert.Equal(t, "ASC", repo.lastList.sortOrder)

	// sin parámetros: más reciente primero
	_, err = uc.List(dto.ListProductsQuery{})
	require.NoError(t, err)
	assert.Equal(t, "created_at", repo.lastList.sortBy)
	assert.Equal(t, "DESC", repo.lastList.sortOrder)
}

// El límite se acota a 100 y la página se traduce a offset 0-indexado.
func TestList_LimiteYOffset(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newProductUC(repo)

	_, err := uc.List(dto.ListProductsQuery{Page: 3, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastList.limit, "limit debe acotarse a 100")
	assert.Equal(t, 200, repo.lastList.offset, "página 3 con limit 100 → offset 200")

	_, err = uc.List(dto.ListProductsQuery{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 12, repo.lastList.limit, "limit por defecto")
	assert.Equal(t, 0, repo.lastList.offset)
}

// Los precios llegan como string del query y se convierten a decimal.
func TestList_FiltroDePrecios(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newProductUC(repo)

	_, err := uc.List(dto.ListProductsQuery{MinPrice: "100000", MaxPrice: "500000"})
	require.NoError(t, err)
	require.NotNil(t, repo.lastList.filter.MinPrice)
	assert.True(t, repo.lastList.filter.MinPrice.Equal(decimal.NewFromInt(100000)))
	require.NotNil(t, repo.lastList.filter.MaxPrice)
	assert.True(t, repo.lastList.filter.MaxPrice.Equal(decimal.NewFromInt(500000)))

	_, err = uc.List(dto.ListProductsQuery{MinPrice: "barato"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La metadata de página refleja total, página actual y si hay siguiente/anterior.
func TestList_MetadataDePagina(t *testing.T) {
	repo := &fakeProductRepo{total: 25}
	uc := newProductUC(repo)

	out, err := uc.List(dto.ListProductsQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 25, out.TotalItems)
	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, 2, out.CurrentPage)
	assert.True(t, out.HasNextPage)
	assert.True(t, out.HasPrevPage)
}

// ──────────────────────────────────────────────────────────────────────────────
// Detail y Delete
// ──────────────────────────────────────────────────────────────────────────────

// Un producto inexistente (o inactivo, que el repo reporta igual) → NotFound.
func TestDetail_NoEncontrado(t *testing.T) {
	uc := newProductUC(&fakeProductRepo{detail: nil})
	_, err := uc.Detail("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Con historial de pedidos el borrado degrada a desactivación.
func TestDelete_ConHistorialDesactiva(t *testing.T) {
	repo := &fakeProductRepo{
		byID:    map[string]*entity.Product{"p1": {ID: "p1"}},
		history: map[string]bool{"p1": true},
	}
	uc := newProductUC(repo)

	soft, err := uc.Delete("p1")
	require.NoError(t, err)
	assert.True(t, soft, "debe reportarse como desactivación")
	assert.Equal(t, []string{"p1"}, repo.deactivated)
	assert.Empty(t, repo.deleted)
}

// Sin historial, el borrado es real.
func TestDelete_SinHistorialBorra(t *testing.T) {
	repo := &fakeProductRepo{
		byID:    map[string]*entity.Product{"p1": {ID: "p1"}},
		history: map[string]bool{},
	}
	uc := newProductUC(repo)

	soft, err := uc.Delete("p1")
	require.NoError(t, err)
	assert.False(t, soft)
	assert.Equal(t, []string{"p1"}, repo.deleted)
	assert.Empty(t, repo.deactivated)
}
