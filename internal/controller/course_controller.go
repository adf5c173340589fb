package controller

import (
	"errors"

	"inspira_backend/internal/service"
	"inspira_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CatalogService *service.CatalogService
	StorageService *service.StorageService
}

func NewCourseController(catalogService *service.CatalogService, storageService *service.StorageService) *CourseController {
	return &CourseController{
		CatalogService: catalogService,
		StorageService: storageService,
	}
}

func respondCatalogError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrModuleNotFound),
		errors.Is(err, util.ErrLessonNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// ListCourses godoc
// @Summary List courses
// @Description Returns the full catalog with modules, lessons and quizzes
// @Tags courses
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CatalogService.ListCourses(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Get a course
// @Tags courses
// @Produce  json
// @Param   id path int true "course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.CatalogService.GetCourse(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CourseRequest true "course payload"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Router /api/admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CatalogService.CreateCourse(ctx.Request.Context(), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Param   body body service.CourseRequest true "course payload"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CatalogService.UpdateCourse(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.CatalogService.DeleteCourse(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AddModule godoc
// @Summary Add a module to a course
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Param   body body service.ModuleRequest true "module payload"
// @Success 201 {object} util.Response{data=model.CourseModule}
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id}/modules [post]
func (c *CourseController) AddModule(ctx *gin.Context) {
	var req service.ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	mod, err := c.CatalogService.AddModule(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Created(ctx, mod)
}

// UpdateModule godoc
// @Summary Update a module
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Param   moduleId path int true "module id"
// @Param   body body service.ModuleRequest true "module payload"
// @Success 200 {object} util.Response{data=model.CourseModule}
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id}/modules/{moduleId} [put]
func (c *CourseController) UpdateModule(ctx *gin.Context) {
	var req service.ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	mod, err := c.CatalogService.UpdateModule(ctx.Request.Context(),
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("moduleId")), req)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, mod)
}

// DeleteModule godoc
// @Summary Delete a module
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Param   moduleId path int true "module id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id}/modules/{moduleId} [delete]
func (c *CourseController) DeleteModule(ctx *gin.Context) {
	err := c.CatalogService.DeleteModule(ctx.Request.Context(),
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("moduleId")))
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AddLesson godoc
// @Summary Add a lesson to a module
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Param   moduleId path int true "module id"
// @Param   body body service.LessonRequest true "lesson payload"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id}/modules/{moduleId}/lessons [post]
func (c *CourseController) AddLesson(ctx *gin.Context) {
	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.CatalogService.AddLesson(ctx.Request.Context(),
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("moduleId")), req)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// UpdateLesson godoc
// @Summary Update a lesson
// @Description Replaces lesson content, attachments and quiz in one call
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Param   lessonId path int true "lesson id"
// @Param   body body service.LessonRequest true "lesson payload"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id}/lessons/{lessonId} [put]
func (c *CourseController) UpdateLesson(ctx *gin.Context) {
	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.CatalogService.UpdateLesson(ctx.Request.Context(),
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("lessonId")), req)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Param   moduleId path int true "module id"
// @Param   lessonId path int true "lesson id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id}/modules/{moduleId}/lessons/{lessonId} [delete]
func (c *CourseController) DeleteLesson(ctx *gin.Context) {
	err := c.CatalogService.DeleteLesson(ctx.Request.Context(),
		util.MustParseUint(ctx.Param("id")),
		util.MustParseUint(ctx.Param("moduleId")),
		util.MustParseUint(ctx.Param("lessonId")))
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadImage godoc
// @Summary Upload a course image
// @Tags admin
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "image file"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/admin/uploads/image [post]
func (c *CourseController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.StorageService.UploadCourseImage(ctx.Request.Context(), file)
	if err != nil {
		if errors.Is(err, util.ErrInvalidImageExt) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}

// UploadVideo godoc
// @Summary Upload a lesson video
// @Description Stores the video, probes its duration and generates a thumbnail
// @Tags admin
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "video file"
// @Success 200 {object} util.Response{data=service.LessonVideo}
// @Failure 400 {object} util.Response
// @Router /api/admin/uploads/video [post]
func (c *CourseController) UploadVideo(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	video, err := c.StorageService.UploadLessonVideo(ctx.Request.Context(), file)
	if err != nil {
		if errors.Is(err, util.ErrInvalidVideoExt) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, video)
}

// UploadAttachment godoc
// @Summary Upload a lesson attachment
// @Tags admin
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "attachment file"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/admin/uploads/attachment [post]
func (c *CourseController) UploadAttachment(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.StorageService.UploadAttachment(ctx.Request.Context(), file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
