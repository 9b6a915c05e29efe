package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/asiedu/ecommerce-cart/internal/models"
	"github.com/asiedu/ecommerce-cart/internal/pagination"
	"github.com/asiedu/ecommerce-cart/internal/repo"
	"gorm.io/gorm"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func ValidateProduct(name string, unitPrice float64, quantityInStock int) error {
	if unitPrice < 0 {
		return fmt.Errorf("product unit price invalid: %w", ErrValidation)
	}
	if len(name) <= 1 {
		return fmt.Errorf("product name too short: %w", ErrValidation)
	}
	if len(name) > 50 {
		return fmt.Errorf("product name too long: %w", ErrValidation)
	}
	if quantityInStock < 0 {
		return fmt.Errorf("quantity in stock cannot be negative: %w", ErrValidation)
	}
	return nil
}

func (s *ProductService) GetProducts(ctx context.Context, page, pageSize int) (pagination.Page[models.Product], error) {
	var empty pagination.Page[models.Product]

	if err := ValidatePagination(page, pageSize); err != nil {
		return empty, err
	}

	total, products, err := s.Repo.GetProducts(ctx, pagination.Offset(page, pageSize), pageSize)
	if err != nil {
		return empty, err
	}
	return pagination.NewPage(page, pageSize, total, products), nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, name string, unitPrice float64, quantityInStock int) (*models.Product, error) {
	if err := ValidateProduct(name, unitPrice, quantityInStock); err != nil {
		return nil, err
	}

	taken, err := s.Repo.ProductExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("product name already in use: %w", ErrValidation)
	}

	product := &models.Product{
		Name:            name,
		UnitPrice:       unitPrice,
		QuantityInStock: quantityInStock,
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, name string, unitPrice float64, quantityInStock int) (*models.Product, error) {
	if err := ValidateProduct(name, unitPrice, quantityInStock); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateProduct(ctx, id, name, unitPrice, quantityInStock); err != nil {
		if errors.Is(err, repo.ErrNoRowAffected) {
			return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
		}
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", id, ErrProductNotFound)
		}
		return err
	}
	return nil
}
