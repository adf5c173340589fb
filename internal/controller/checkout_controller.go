package controller

import (
	"errors"

	"inspira_backend/internal/service"
	"inspira_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	CheckoutService *service.CheckoutService
}

func NewCheckoutController(checkoutService *service.CheckoutService) *CheckoutController {
	return &CheckoutController{CheckoutService: checkoutService}
}

type CheckoutRequest struct {
	CourseID   uint   `json:"courseId" binding:"required"`
	CouponCode string `json:"couponCode"`
}

// Quote godoc
// @Summary Price a course purchase
// @Description Applies an optional coupon and returns the final price with
// @Description a prefilled WhatsApp checkout link.
// @Tags checkout
// @Accept  json
// @Produce  json
// @Param   body body CheckoutRequest true "course and optional coupon"
// @Success 200 {object} util.Response{data=service.CheckoutQuote}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /api/checkout/quote [post]
func (c *CheckoutController) Quote(ctx *gin.Context) {
	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quote, err := c.CheckoutService.Quote(req.CourseID, req.CouponCode)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound), errors.Is(err, util.ErrCouponNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCouponInactive),
			errors.Is(err, util.ErrCouponExpired),
			errors.Is(err, util.ErrCouponWrongCourse):
			util.Error(ctx, 422, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, quote)
}
