package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func newCategoryUC() (*catalog.CategoryUseCase, *fakeCategoryRepo) {
	repo := &fakeCategoryRepo{
		byID: map[string]*entity.Category{
			"c1": {ID: "c1", Name: "Smartphones", Description: "Teléfonos inteligentes"},
		},
		counts: map[string]int{"c1": 7},
	}
	return catalog.NewCategoryUseCase(repo), repo
}

// El detalle trae la categoría con su conteo de productos activos.
func TestCategoryGet(t *testing.T) {
	uc, _ := newCategoryUC()

	out, err := uc.Get("c1")
	require.NoError(t, err)
	assert.Equal(t, "Smartphones", out.Name)
	assert.Equal(t, 7, out.ProductCount)
}

func TestCategoryGet_NoExistente(t *testing.T) {
	uc, _ := newCategoryUC()
	_, err := uc.Get("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
