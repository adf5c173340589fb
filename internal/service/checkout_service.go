package service

import (
	"fmt"
	"inspira_backend/internal/config"
	"net/url"
	"time"
)

// CheckoutService prices a purchase and builds the WhatsApp hand-off link.
// The platform never processes payment; the sale is closed in chat.
type CheckoutService struct {
	CourseStore CourseStore
	Coupons     *CouponService
	Cfg         *config.Config
}

func NewCheckoutService(courseStore CourseStore, coupons *CouponService, cfg *config.Config) *CheckoutService {
	return &CheckoutService{
		CourseStore: courseStore,
		Coupons:     coupons,
		Cfg:         cfg,
	}
}

type CheckoutQuote struct {
	CourseID           uint    `json:"courseId"`
	CourseTitle        string  `json:"courseTitle"`
	Price              float64 `json:"price"`
	DiscountPercentage int     `json:"discountPercentage"`
	FinalPrice         float64 `json:"finalPrice"`
	WhatsAppURL        string  `json:"whatsappUrl"`
}

// Quote computes the final price for a course, applying a coupon when one
// is given, and returns the chat link carrying the order summary.
func (s *CheckoutService) Quote(courseID uint, couponCode string) (*CheckoutQuote, error) {
	course, err := s.CourseStore.FindByID(courseID)
	if err != nil {
		return nil, err
	}

	quote := &CheckoutQuote{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Price:       course.Price,
		FinalPrice:  course.Price,
	}

	if couponCode != "" {
		discount, err := s.Coupons.ValidateCoupon(couponCode, courseID, time.Now())
		if err != nil {
			return nil, err
		}
		quote.DiscountPercentage = discount
		quote.FinalPrice = ApplyDiscount(course.Price, discount)
	}

	quote.WhatsAppURL = s.whatsAppLink(quote)
	return quote, nil
}

func (s *CheckoutService) whatsAppLink(quote *CheckoutQuote) string {
	template := s.Cfg.Checkout.MessageTemplate
	if template == "" {
		template = "Hello! I want to buy the course \"%s\" for %s."
	}
	message := fmt.Sprintf(template, quote.CourseTitle, formatPrice(quote.FinalPrice))

	return fmt.Sprintf("https://wa.me/%s?text=%s",
		s.Cfg.Checkout.WhatsAppNumber,
		url.QueryEscape(message),
	)
}

func formatPrice(price float64) string {
	return fmt.Sprintf("R$ %.2f", price)
}
