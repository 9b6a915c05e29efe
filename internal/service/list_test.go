package service

import (
	"context"
	"testing"
	"time"

	"github.com/asiedu/ecommerce-cart/internal/models"
	"github.com/asiedu/ecommerce-cart/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seeds one user with three line items of quantities 3, 5 and 9.
func seedListFixture(t *testing.T, r *repo.GormRepo) (models.User, []models.Product) {
	t.Helper()
	ctx := context.Background()

	user := seedUser(t, r, "Ama Mensah", "233201234567")
	products := []models.Product{
		seedProduct(t, r, "rice 5kg", 12.5, 50),
		seedProduct(t, r, "palm oil 1L", 30, 50),
		seedProduct(t, r, "tomato paste", 4, 50),
	}

	for i, q := range []int{3, 5, 9} {
		item := models.CartItem{UserID: user.ID, ProductID: products[i].ID, Quantity: q}
		require.NoError(t, r.CreateCartItem(ctx, &item))
	}
	return user, products
}

func TestCartService_ListCartItems_MinQuantityFilter(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	seedListFixture(t, r)

	page, err := svc.ListCartItems(context.Background(), repo.CartItemFilter{MinQuantity: 5}, 1, 10)
	require.NoError(t, err)

	assert.EqualValues(t, 2, page.TotalItems)
	require.Len(t, page.Items, 2)
	for _, item := range page.Items {
		assert.GreaterOrEqual(t, item.Quantity, 5)
	}
}

func TestCartService_ListCartItems_FiltersComposeConjunctively(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	_, products := seedListFixture(t, r)

	// quantity in [2,5] leaves the items with quantities 3 and 5
	page, err := svc.ListCartItems(context.Background(), repo.CartItemFilter{
		MinQuantity: 2,
		MaxQuantity: 5,
	}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalItems)

	// adding the product filter narrows it to one
	page, err = svc.ListCartItems(context.Background(), repo.CartItemFilter{
		MinQuantity: 2,
		MaxQuantity: 5,
		ProductID:   products[1].ID,
	}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalItems)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 5, page.Items[0].Quantity)
}

func TestCartService_ListCartItems_PhoneNumberFilter(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user, products := seedListFixture(t, r)
	other := seedUser(t, r, "Kofi Asante", "233209876543")
	require.NoError(t, r.CreateCartItem(ctx, &models.CartItem{
		UserID: other.ID, ProductID: products[0].ID, Quantity: 1,
	}))

	page, err := svc.ListCartItems(ctx, repo.CartItemFilter{PhoneNumber: user.PhoneNumber}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalItems)
	for _, item := range page.Items {
		assert.Equal(t, user.PhoneNumber, item.UserPhoneNumber)
	}
}

func TestCartService_ListCartItems_Pagination(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r, "Ama Mensah", "233201234567")
	var ids []uint
	for i := 0; i < 7; i++ {
		product := seedProduct(t, r, "product-"+string(rune('a'+i)), 1, 100)
		item := models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: i + 1}
		require.NoError(t, r.CreateCartItem(ctx, &item))
		ids = append(ids, item.ID)
	}

	first, err := svc.ListCartItems(ctx, repo.CartItemFilter{}, 1, 3)
	require.NoError(t, err)
	second, err := svc.ListCartItems(ctx, repo.CartItemFilter{}, 2, 3)
	require.NoError(t, err)
	last, err := svc.ListCartItems(ctx, repo.CartItemFilter{}, 3, 3)
	require.NoError(t, err)

	// total is invariant across pages
	assert.EqualValues(t, 7, first.TotalItems)
	assert.EqualValues(t, 7, second.TotalItems)
	assert.EqualValues(t, 7, last.TotalItems)

	require.Len(t, first.Items, 3)
	require.Len(t, second.Items, 3)
	require.Len(t, last.Items, 1)

	// page 2 of size 3 holds items 4-6 of the order-stable set
	assert.Equal(t, ids[3], second.Items[0].ID)
	assert.Equal(t, ids[4], second.Items[1].ID)
	assert.Equal(t, ids[5], second.Items[2].ID)

	empty, err := svc.ListCartItems(ctx, repo.CartItemFilter{}, 4, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 7, empty.TotalItems)
	assert.Len(t, empty.Items, 0)
}

func TestCartService_ListCartItems_TimeBounds(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r, "Ama Mensah", "233201234567")
	old := seedProduct(t, r, "rice 5kg", 12.5, 50)
	recent := seedProduct(t, r, "palm oil 1L", 30, 50)

	cutoff := time.Now().UTC()
	oldItem := models.CartItem{
		UserID: user.ID, ProductID: old.ID, Quantity: 1,
		CreatedAt: cutoff.Add(-48 * time.Hour),
	}
	require.NoError(t, r.CreateCartItem(ctx, &oldItem))
	recentItem := models.CartItem{
		UserID: user.ID, ProductID: recent.ID, Quantity: 1,
		CreatedAt: cutoff.Add(time.Hour),
	}
	require.NoError(t, r.CreateCartItem(ctx, &recentItem))

	page, err := svc.ListCartItems(ctx, repo.CartItemFilter{From: cutoff}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, recentItem.ID, page.Items[0].ID)

	page, err = svc.ListCartItems(ctx, repo.CartItemFilter{To: cutoff}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, oldItem.ID, page.Items[0].ID)
}

func TestCartService_ListCartItems_InvalidInputNeverQueries(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	now := time.Now()
	tests := []struct {
		name     string
		filter   repo.CartItemFilter
		page     int
		pageSize int
		wantErr  error
	}{
		{name: "phone too short", filter: repo.CartItemFilter{PhoneNumber: "12345678"}, page: 1, pageSize: 3, wantErr: ErrInvalidFilter},
		{name: "phone too long", filter: repo.CartItemFilter{PhoneNumber: "1234567890123456"}, page: 1, pageSize: 3, wantErr: ErrInvalidFilter},
		{name: "negative min quantity", filter: repo.CartItemFilter{MinQuantity: -1}, page: 1, pageSize: 3, wantErr: ErrInvalidFilter},
		{name: "negative max quantity", filter: repo.CartItemFilter{MaxQuantity: -1}, page: 1, pageSize: 3, wantErr: ErrInvalidFilter},
		{name: "inverted time bounds", filter: repo.CartItemFilter{From: now, To: now.Add(-time.Hour)}, page: 1, pageSize: 3, wantErr: ErrInvalidFilter},
		{name: "zero page", filter: repo.CartItemFilter{}, page: 0, pageSize: 3, wantErr: ErrInvalidPagination},
		{name: "zero page size", filter: repo.CartItemFilter{}, page: 1, pageSize: 0, wantErr: ErrInvalidPagination},
		{name: "page size too big", filter: repo.CartItemFilter{}, page: 1, pageSize: 1001, wantErr: ErrInvalidPagination},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ListCartItems(ctx, tt.filter, tt.page, tt.pageSize)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
