package service

import (
	"strings"
	"testing"
	"time"

	"inspira_backend/internal/model"
	"inspira_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCouponStore struct {
	coupons []*model.Coupon
	nextID  uint
}

func (s *memCouponStore) FindByCode(code string) (*model.Coupon, error) {
	for _, c := range s.coupons {
		if c.Code == strings.ToUpper(strings.TrimSpace(code)) {
			return c, nil
		}
	}
	return nil, util.ErrCouponNotFound
}

func (s *memCouponStore) FindByID(id uint) (*model.Coupon, error) {
	for _, c := range s.coupons {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, util.ErrCouponNotFound
}

func (s *memCouponStore) FindAll() ([]model.Coupon, error) {
	out := make([]model.Coupon, 0, len(s.coupons))
	for _, c := range s.coupons {
		out = append(out, *c)
	}
	return out, nil
}

func (s *memCouponStore) CodeTaken(code string, excludeID uint) (bool, error) {
	for _, c := range s.coupons {
		if c.Code == code && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memCouponStore) Create(coupon *model.Coupon) error {
	s.nextID++
	coupon.ID = s.nextID
	s.coupons = append(s.coupons, coupon)
	return nil
}

func (s *memCouponStore) Update(coupon *model.Coupon) error { return nil }

func (s *memCouponStore) Delete(id uint) error {
	for i, c := range s.coupons {
		if c.ID == id {
			s.coupons = append(s.coupons[:i], s.coupons[i+1:]...)
			return nil
		}
	}
	return util.ErrCouponNotFound
}

func couponFixture() (*CouponService, time.Time) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	courseID := uint(2)
	store := &memCouponStore{nextID: 10}
	store.coupons = []*model.Coupon{
		{BaseModel: model.BaseModel{ID: 1}, Code: "PROMO10", DiscountPercentage: 10,
			ExpiresAt: now.Add(24 * time.Hour), IsActive: true},
		{BaseModel: model.BaseModel{ID: 2}, Code: "REACT20", DiscountPercentage: 20,
			ExpiresAt: now.Add(24 * time.Hour), IsActive: true, CourseID: &courseID},
		{BaseModel: model.BaseModel{ID: 3}, Code: "OLD50", DiscountPercentage: 50,
			ExpiresAt: now.Add(-time.Hour), IsActive: true},
		{BaseModel: model.BaseModel{ID: 4}, Code: "PAUSED", DiscountPercentage: 30,
			ExpiresAt: now.Add(24 * time.Hour), IsActive: false},
	}
	return NewCouponService(store), now
}

func TestValidateCoupon(t *testing.T) {
	svc, now := couponFixture()

	tests := []struct {
		name     string
		code     string
		courseID uint
		want     int
		wantErr  error
	}{
		{"global coupon", "PROMO10", 1, 10, nil},
		{"case insensitive", "promo10", 1, 10, nil},
		{"scoped coupon on its course", "REACT20", 2, 20, nil},
		{"scoped coupon on another course", "REACT20", 1, 0, util.ErrCouponWrongCourse},
		{"unknown code", "NOPE", 1, 0, util.ErrCouponNotFound},
		{"expired", "OLD50", 1, 0, util.ErrCouponExpired},
		{"inactive", "PAUSED", 1, 0, util.ErrCouponInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, err := svc.ValidateCoupon(tt.code, tt.courseID, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, discount)
		})
	}
}

func TestValidateCouponExpiryBoundary(t *testing.T) {
	svc, _ := couponFixture()
	expiry := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	// Valid strictly before the expiry instant, expired at it.
	_, err := svc.ValidateCoupon("PROMO10", 1, expiry.Add(-time.Second))
	assert.NoError(t, err)

	_, err = svc.ValidateCoupon("PROMO10", 1, expiry)
	assert.ErrorIs(t, err, util.ErrCouponExpired)
}

func TestValidateCouponInactiveBeatsExpired(t *testing.T) {
	now := time.Now()
	store := &memCouponStore{}
	store.coupons = []*model.Coupon{
		{BaseModel: model.BaseModel{ID: 1}, Code: "DEAD", DiscountPercentage: 15,
			ExpiresAt: now.Add(-time.Hour), IsActive: false},
	}
	svc := NewCouponService(store)

	_, err := svc.ValidateCoupon("DEAD", 1, now)
	assert.ErrorIs(t, err, util.ErrCouponInactive)
}

func TestCreateCouponUppercasesCode(t *testing.T) {
	svc, now := couponFixture()

	coupon, err := svc.CreateCoupon(CouponRequest{
		Code:               " spring25 ",
		DiscountPercentage: 25,
		ExpiresAt:          now.Add(48 * time.Hour),
		IsActive:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, "SPRING25", coupon.Code)

	_, err = svc.ValidateCoupon("Spring25", 1, now)
	assert.NoError(t, err)
}

func TestCreateCouponDuplicateCode(t *testing.T) {
	svc, now := couponFixture()

	_, err := svc.CreateCoupon(CouponRequest{
		Code:               "promo10",
		DiscountPercentage: 5,
		ExpiresAt:          now.Add(time.Hour),
		IsActive:           true,
	})
	assert.ErrorIs(t, err, util.ErrCouponCodeTaken)
}

func TestApplyDiscount(t *testing.T) {
	assert.InDelta(t, 90.0, ApplyDiscount(100, 10), 1e-9)
	assert.InDelta(t, 100.0, ApplyDiscount(100, 0), 1e-9)
	assert.InDelta(t, 0.0, ApplyDiscount(100, 100), 1e-9)
}
