package controller

import (
	"errors"

	"inspira_backend/internal/service"
	"inspira_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	LearningService   *service.LearningService
	EnrollmentService *service.EnrollmentService
}

func NewLearningController(learningService *service.LearningService, enrollmentService *service.EnrollmentService) *LearningController {
	return &LearningController{
		LearningService:   learningService,
		EnrollmentService: enrollmentService,
	}
}

// MyCourses godoc
// @Summary List the authenticated student's courses
// @Tags learning
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/my/courses [get]
func (c *LearningController) MyCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	courses, err := c.EnrollmentService.StudentCourses(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetProgress godoc
// @Summary Progress and performance for an enrolled course
// @Tags learning
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Success 200 {object} util.Response{data=service.ProgressSnapshot}
// @Failure 404 {object} util.Response
// @Router /api/my/courses/{id}/progress [get]
func (c *LearningController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	snap, err := c.LearningService.GetProgress(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondLearningError(ctx, err)
		return
	}
	util.Success(ctx, snap)
}

// ToggleLesson godoc
// @Summary Toggle completion of a lesson
// @Description Flips the completion state of a lesson without a quiz. Quiz
// @Description lessons are completed by passing their quiz instead.
// @Tags learning
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Param   lessonId path int true "lesson id"
// @Success 200 {object} util.Response{data=service.ProgressSnapshot}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /api/my/courses/{id}/lessons/{lessonId}/toggle [post]
func (c *LearningController) ToggleLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	snap, err := c.LearningService.ToggleLessonCompletion(claims.UserID,
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("lessonId")))
	if err != nil {
		respondLearningError(ctx, err)
		return
	}
	util.Success(ctx, snap)
}

type QuizSubmission struct {
	Answers map[uint]int `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for grading
// @Description Grades the submission, records the attempt and returns the
// @Description answer key together with the updated progress snapshot.
// @Tags learning
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "course id"
// @Param   lessonId path int true "lesson id"
// @Param   body body QuizSubmission true "answers keyed by question id"
// @Success 200 {object} util.Response{data=service.QuizResultResponse}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /api/my/courses/{id}/lessons/{lessonId}/quiz [post]
func (c *LearningController) SubmitQuiz(ctx *gin.Context) {
	var req QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, err := c.LearningService.SubmitQuiz(claims.UserID,
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("lessonId")), req.Answers)
	if err != nil {
		respondLearningError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

func respondLearningError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrEnrollmentNotFound),
		errors.Is(err, util.ErrQuizNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrLessonRequiresQuiz),
		errors.Is(err, util.ErrIncompleteQuiz):
		util.Error(ctx, 422, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
