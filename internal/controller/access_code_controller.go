package controller

import (
	"errors"

	"inspira_backend/internal/service"
	"inspira_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AccessCodeController struct {
	AccessCodeService *service.AccessCodeService
}

func NewAccessCodeController(accessCodeService *service.AccessCodeService) *AccessCodeController {
	return &AccessCodeController{AccessCodeService: accessCodeService}
}

// Generate godoc
// @Summary Generate a CT access code
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Success 201 {object} util.Response{data=model.AccessCode}
// @Router /api/admin/access-codes [post]
func (c *AccessCodeController) Generate(ctx *gin.Context) {
	code, err := c.AccessCodeService.Generate()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, code)
}

// List godoc
// @Summary List CT access codes
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.AccessCodeWithUser}
// @Router /api/admin/access-codes [get]
func (c *AccessCodeController) List(ctx *gin.Context) {
	codes, err := c.AccessCodeService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, codes)
}

type AccessCodeUpdateRequest struct {
	IsUsed *bool `json:"isUsed" binding:"required"`
}

// SetUsed godoc
// @Summary Mark an access code used or unused
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "access code id"
// @Param   body body AccessCodeUpdateRequest true "used flag"
// @Success 200 {object} util.Response{data=model.AccessCode}
// @Failure 404 {object} util.Response
// @Router /api/admin/access-codes/{id} [put]
func (c *AccessCodeController) SetUsed(ctx *gin.Context) {
	var req AccessCodeUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	code, err := c.AccessCodeService.SetUsed(util.MustParseUint(ctx.Param("id")), *req.IsUsed)
	if err != nil {
		if errors.Is(err, util.ErrAccessCodeNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, code)
}

// Delete godoc
// @Summary Delete an access code
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "access code id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/access-codes/{id} [delete]
func (c *AccessCodeController) Delete(ctx *gin.Context) {
	if err := c.AccessCodeService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrAccessCodeNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
