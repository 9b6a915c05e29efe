package repo

import (
	"context"

	"github.com/asiedu/ecommerce-cart/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) GetUsers(ctx context.Context, offset, limit int) (int64, []models.User, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var users []models.User
	if err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return 0, nil, err
	}

	return total, users, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) UpdateUser(ctx context.Context, id uint, name, phoneNumber string) error {
	res := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "phone_number": phoneNumber})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return ErrNoRowAffected
	}
	return nil
}

func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	return r.WithTx(ctx, func(tx *GormRepo) error {
		if err := tx.DB.Where("user_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		res := tx.DB.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormRepo) UserExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) UserExistsByPhone(ctx context.Context, phoneNumber string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("phone_number = ?", phoneNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
