package service

import (
	"inspira_backend/internal/model"
	"inspira_backend/internal/util"
	"strings"
	"time"
)

// CouponStore is the slice of the coupon repository the validator needs.
type CouponStore interface {
	FindByCode(code string) (*model.Coupon, error)
	FindByID(id uint) (*model.Coupon, error)
	FindAll() ([]model.Coupon, error)
	CodeTaken(code string, excludeID uint) (bool, error)
	Create(coupon *model.Coupon) error
	Update(coupon *model.Coupon) error
	Delete(id uint) error
}

type CouponService struct {
	Store CouponStore
}

func NewCouponService(store CouponStore) *CouponService {
	return &CouponService{Store: store}
}

// ValidateCoupon checks a code against a course and returns the discount
// percentage. Checks run in a fixed priority: not found, inactive, expired,
// wrong course scope.
func (s *CouponService) ValidateCoupon(code string, courseID uint, now time.Time) (int, error) {
	coupon, err := s.Store.FindByCode(code)
	if err != nil {
		return 0, err
	}

	if !coupon.IsActive {
		return 0, util.ErrCouponInactive
	}
	if !now.Before(coupon.ExpiresAt) {
		return 0, util.ErrCouponExpired
	}
	if coupon.CourseID != nil && *coupon.CourseID != courseID {
		return 0, util.ErrCouponWrongCourse
	}

	return coupon.DiscountPercentage, nil
}

// ApplyDiscount computes the price after a percentage discount.
func ApplyDiscount(price float64, discountPercentage int) float64 {
	return price * (1 - float64(discountPercentage)/100)
}

type CouponRequest struct {
	Code               string    `json:"code" binding:"required"`
	DiscountPercentage int       `json:"discountPercentage" binding:"required,min=1,max=100"`
	ExpiresAt          time.Time `json:"expiresAt" binding:"required"`
	IsActive           bool      `json:"isActive"`
	CourseID           *uint     `json:"courseId"`
}

func (s *CouponService) CreateCoupon(req CouponRequest) (*model.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	taken, err := s.Store.CodeTaken(code, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrCouponCodeTaken
	}

	coupon := &model.Coupon{
		Code:               code,
		DiscountPercentage: req.DiscountPercentage,
		ExpiresAt:          req.ExpiresAt,
		IsActive:           req.IsActive,
		CourseID:           req.CourseID,
	}
	if err := s.Store.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) UpdateCoupon(id uint, req CouponRequest) (*model.Coupon, error) {
	coupon, err := s.Store.FindByID(id)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	taken, err := s.Store.CodeTaken(code, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrCouponCodeTaken
	}

	coupon.Code = code
	coupon.DiscountPercentage = req.DiscountPercentage
	coupon.ExpiresAt = req.ExpiresAt
	coupon.IsActive = req.IsActive
	coupon.CourseID = req.CourseID
	if err := s.Store.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) ListCoupons() ([]model.Coupon, error) {
	return s.Store.FindAll()
}

func (s *CouponService) DeleteCoupon(id uint) error {
	return s.Store.Delete(id)
}
