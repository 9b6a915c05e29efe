package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &UserService{Repo: r}
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Ama Mensah", "233201234567")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("duplicate phone rejected", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "Someone Else", "233201234567")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestUserService_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		uname string
		phone string
	}{
		{name: "name too short", uname: "A", phone: "233201234567"},
		{name: "name too long", uname: strings.Repeat("a", 51), phone: "233201234567"},
		{name: "phone too short", uname: "Ama Mensah", phone: "12345678"},
		{name: "phone too long", uname: "Ama Mensah", phone: "1234567890123456"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateUser(tt.uname, tt.phone)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserService_GetUsers_Paginated(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &UserService{Repo: r}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedUser(t, r, "User Number "+string(rune('A'+i)), "23320123456"+string(rune('0'+i)))
	}

	page, err := svc.GetUsers(ctx, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.TotalItems)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.CurrentPage)
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &UserService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r, "Ama Mensah", "233201234567")

	updated, err := svc.UpdateUser(ctx, user.ID, "Ama A. Mensah", "233201234568")
	require.NoError(t, err)
	assert.Equal(t, "Ama A. Mensah", updated.Name)
	assert.Equal(t, "233201234568", updated.PhoneNumber)

	_, err = svc.UpdateUser(ctx, user.ID+99, "Nobody Here", "233201234569")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, svc.DeleteUser(ctx, user.ID))

	err = svc.DeleteUser(ctx, user.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DeleteUser_CascadesCartItems(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	userSvc := &UserService{Repo: r}
	cartSvc := &CartService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r, "Ama Mensah", "233201234567")
	product := seedProduct(t, r, "rice 5kg", 12.5, 10)

	_, _, err := cartSvc.AddToCart(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, userSvc.DeleteUser(ctx, user.ID))
	assert.EqualValues(t, 0, countCartItems(t, r))
}
