package repository

import (
	"errors"
	"inspira_backend/internal/model"
	"inspira_backend/internal/util"
	"strings"

	"gorm.io/gorm"
)

type CouponRepository struct {
	DB *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{DB: db}
}

func (r *CouponRepository) Create(coupon *model.Coupon) error {
	return r.DB.Create(coupon).Error
}

// FindByCode matches case-insensitively; codes are stored upper-cased.
func (r *CouponRepository) FindByCode(code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.DB.Where("UPPER(code) = ?", strings.ToUpper(code)).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) FindByID(id uint) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.DB.First(&coupon, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) FindAll() ([]model.Coupon, error) {
	var coupons []model.Coupon
	err := r.DB.Order("created_at ASC").Find(&coupons).Error
	return coupons, err
}

// CodeTaken reports whether another coupon already uses the code.
func (r *CouponRepository) CodeTaken(code string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&model.Coupon{}).Where("UPPER(code) = ?", strings.ToUpper(code))
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *CouponRepository) Update(coupon *model.Coupon) error {
	return r.DB.Save(coupon).Error
}

func (r *CouponRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.Coupon{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrCouponNotFound
	}
	return nil
}
