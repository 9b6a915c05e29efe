package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, "rice 5kg", 12.5, 100)
	require.NoError(t, err)
	assert.NotZero(t, product.ID)

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, "rice 5kg", 10, 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestProductService_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pname string
		price float64
		stock int
	}{
		{name: "negative price", pname: "rice 5kg", price: -1, stock: 10},
		{name: "name too short", pname: "r", price: 1, stock: 10},
		{name: "name too long", pname: strings.Repeat("r", 51), price: 1, stock: 10},
		{name: "negative stock", pname: "rice 5kg", price: 1, stock: -1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateProduct(tt.pname, tt.price, tt.stock)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProductService_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	product := seedProduct(t, r, "rice 5kg", 12.5, 100)

	updated, err := svc.UpdateProduct(ctx, product.ID, "rice 10kg", 22, 40)
	require.NoError(t, err)
	assert.Equal(t, "rice 10kg", updated.Name)
	assert.Equal(t, 22.0, updated.UnitPrice)
	assert.Equal(t, 40, updated.QuantityInStock)

	_, err = svc.UpdateProduct(ctx, product.ID+99, "ghost", 1, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProductNotFound)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))

	err = svc.DeleteProduct(ctx, product.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_GetProducts_Paginated(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		seedProduct(t, r, "product-"+string(rune('a'+i)), float64(i), 10)
	}

	page, err := svc.GetProducts(ctx, 1, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 4, page.TotalItems)
	assert.Len(t, page.Items, 3)
}
