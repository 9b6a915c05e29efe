package service

import (
	"context"
	"testing"

	"github.com/asiedu/ecommerce-cart/internal/models"
	"github.com/asiedu/ecommerce-cart/internal/repo"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// one connection, one in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return repo.New(db)
}

func seedUser(t *testing.T, r *repo.GormRepo, name, phone string) models.User {
	t.Helper()

	user := models.User{Name: name, PhoneNumber: phone}
	if err := r.CreateUser(context.Background(), &user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string, price float64, stock int) models.Product {
	t.Helper()

	product := models.Product{Name: name, UnitPrice: price, QuantityInStock: stock}
	if err := r.CreateProduct(context.Background(), &product); err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}
