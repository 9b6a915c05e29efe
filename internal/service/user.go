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

type UserService struct {
	Repo *repo.GormRepo
}

func ValidateUser(name, phoneNumber string) error {
	if len(name) <= 1 {
		return fmt.Errorf("user name too short: %w", ErrValidation)
	}
	if len(name) > 50 {
		return fmt.Errorf("user name too long: %w", ErrValidation)
	}
	if len(phoneNumber) < 9 {
		return fmt.Errorf("phone number too short: %w", ErrValidation)
	}
	if len(phoneNumber) > 15 {
		return fmt.Errorf("phone number too long: %w", ErrValidation)
	}
	return nil
}

func (s *UserService) GetUsers(ctx context.Context, page, pageSize int) (pagination.Page[models.User], error) {
	var empty pagination.Page[models.User]

	if err := ValidatePagination(page, pageSize); err != nil {
		return empty, err
	}

	total, users, err := s.Repo.GetUsers(ctx, pagination.Offset(page, pageSize), pageSize)
	if err != nil {
		return empty, err
	}
	return pagination.NewPage(page, pageSize, total, users), nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, name, phoneNumber string) (*models.User, error) {
	if err := ValidateUser(name, phoneNumber); err != nil {
		return nil, err
	}

	taken, err := s.Repo.UserExistsByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("phone number already in use: %w", ErrValidation)
	}

	user := &models.User{Name: name, PhoneNumber: phoneNumber}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, name, phoneNumber string) (*models.User, error) {
	if err := ValidateUser(name, phoneNumber); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateUser(ctx, id, name, phoneNumber); err != nil {
		if errors.Is(err, repo.ErrNoRowAffected) {
			return nil, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
		}
		return nil, err
	}
	return s.GetUser(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %d: %w", id, ErrUserNotFound)
		}
		return err
	}
	return nil
}
