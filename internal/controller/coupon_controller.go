package controller

import (
	"errors"
	"time"

	"inspira_backend/internal/service"
	"inspira_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CouponController struct {
	CouponService *service.CouponService
}

func NewCouponController(couponService *service.CouponService) *CouponController {
	return &CouponController{CouponService: couponService}
}

type CouponValidationRequest struct {
	Code     string `json:"code" binding:"required"`
	CourseID uint   `json:"courseId" binding:"required"`
}

// Validate godoc
// @Summary Validate a coupon for a course
// @Description Checks existence, active flag, expiry and course scope, in
// @Description that order, and returns the discount percentage when valid.
// @Tags coupons
// @Accept  json
// @Produce  json
// @Param   body body CouponValidationRequest true "code and course"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /api/coupons/validate [post]
func (c *CouponController) Validate(ctx *gin.Context) {
	var req CouponValidationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	discount, err := c.CouponService.ValidateCoupon(req.Code, req.CourseID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCouponNotFound):
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

	util.Success(ctx, gin.H{"discountPercentage": discount})
}

// ListCoupons godoc
// @Summary List all coupons
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Coupon}
// @Router /api/admin/coupons [get]
func (c *CouponController) ListCoupons(ctx *gin.Context) {
	coupons, err := c.CouponService.ListCoupons()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, coupons)
}

// CreateCoupon godoc
// @Summary Create a coupon
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CouponRequest true "coupon payload"
// @Success 201 {object} util.Response{data=model.Coupon}
// @Failure 409 {object} util.Response
// @Router /api/admin/coupons [post]
func (c *CouponController) CreateCoupon(ctx *gin.Context) {
	var req service.CouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	coupon, err := c.CouponService.CreateCoupon(req)
	if err != nil {
		if errors.Is(err, util.ErrCouponCodeTaken) {
			util.Conflict(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, coupon)
}

// UpdateCoupon godoc
// @Summary Update a coupon
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "coupon id"
// @Param   body body service.CouponRequest true "coupon payload"
// @Success 200 {object} util.Response{data=model.Coupon}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/admin/coupons/{id} [put]
func (c *CouponController) UpdateCoupon(ctx *gin.Context) {
	var req service.CouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	coupon, err := c.CouponService.UpdateCoupon(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCouponNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCouponCodeTaken):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, coupon)
}

// DeleteCoupon godoc
// @Summary Delete a coupon
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "coupon id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/coupons/{id} [delete]
func (c *CouponController) DeleteCoupon(ctx *gin.Context) {
	if err := c.CouponService.DeleteCoupon(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrCouponNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
