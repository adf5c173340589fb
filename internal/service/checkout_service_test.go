package service

import (
	"net/url"
	"testing"
	"time"

	"inspira_backend/internal/config"
	"inspira_backend/internal/model"
	"inspira_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutFixture() *CheckoutService {
	course := &model.Course{Title: "React do Zero", Price: 199.90}
	course.ID = 1

	couponStore := &memCouponStore{}
	couponStore.coupons = []*model.Coupon{
		{BaseModel: model.BaseModel{ID: 1}, Code: "PROMO10", DiscountPercentage: 10,
			ExpiresAt: time.Now().Add(24 * time.Hour), IsActive: true},
	}

	cfg := &config.Config{}
	cfg.Checkout.WhatsAppNumber = "5511999999999"

	return NewCheckoutService(
		&memCourseStore{courses: map[uint]*model.Course{1: course}},
		NewCouponService(couponStore),
		cfg,
	)
}

func TestQuoteWithoutCoupon(t *testing.T) {
	svc := checkoutFixture()

	quote, err := svc.Quote(1, "")
	require.NoError(t, err)
	assert.Equal(t, 199.90, quote.Price)
	assert.Equal(t, 199.90, quote.FinalPrice)
	assert.Equal(t, 0, quote.DiscountPercentage)
	assert.Contains(t, quote.WhatsAppURL, "https://wa.me/5511999999999?text=")
	assert.Contains(t, quote.WhatsAppURL, url.QueryEscape("React do Zero"))
	assert.Contains(t, quote.WhatsAppURL, url.QueryEscape("R$ 199.90"))
}

func TestQuoteWithCoupon(t *testing.T) {
	svc := checkoutFixture()

	quote, err := svc.Quote(1, "promo10")
	require.NoError(t, err)
	assert.Equal(t, 10, quote.DiscountPercentage)
	assert.InDelta(t, 179.91, quote.FinalPrice, 1e-9)
	assert.Contains(t, quote.WhatsAppURL, url.QueryEscape("R$ 179.91"))
}

func TestQuoteErrors(t *testing.T) {
	svc := checkoutFixture()

	_, err := svc.Quote(99, "")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	_, err = svc.Quote(1, "NOPE")
	assert.ErrorIs(t, err, util.ErrCouponNotFound)
}
