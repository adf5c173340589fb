package service

import (
	"fmt"
	"inspira_backend/internal/model"
	"inspira_backend/internal/util"
	"inspira_backend/pkg/logger"
	"inspira_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

// CourseStore is the slice of the course repository the learning engine
// needs. The gorm repository satisfies it; tests use in-memory fakes.
type CourseStore interface {
	FindByID(id uint) (*model.Course, error)
}

// EnrollmentStore persists per-enrollment completion and attempt state.
// Implementations must apply each mutation atomically per enrollment.
type EnrollmentStore interface {
	FindByUserAndCourse(userID, courseID uint) (*model.Enrollment, error)
	ToggleCompletion(enrollmentID, lessonID uint) ([]uint, error)
	AppendAttempt(attempt *model.QuizAttempt) error
}

type LearningService struct {
	CourseStore     CourseStore
	EnrollmentStore EnrollmentStore
}

func NewLearningService(courseStore CourseStore, enrollmentStore EnrollmentStore) *LearningService {
	return &LearningService{
		CourseStore:     courseStore,
		EnrollmentStore: enrollmentStore,
	}
}

// ProgressSnapshot is the derived state reported after every read or
// mutation. Completed reflects the completion trigger: it is recomputed
// from current state each time, so it fires again after a student toggles
// below 100% and back.
type ProgressSnapshot struct {
	CourseID           uint    `json:"courseId"`
	Progress           float64 `json:"progress"`
	Performance        float64 `json:"performance"`
	CompletedLessonIDs []uint  `json:"completedLessonIds"`
	Completed          bool    `json:"completed"`
}

type QuizResultResponse struct {
	Score     float64          `json:"score"`
	Passed    bool             `json:"passed"`
	AnswerKey map[uint]int     `json:"answerKey"`
	Snapshot  ProgressSnapshot `json:"snapshot"`
}

func (s *LearningService) snapshot(course *model.Course, completedIDs []uint, attempts []model.QuizAttempt) ProgressSnapshot {
	progress := ComputeProgress(course, completedIDs)
	snap := ProgressSnapshot{
		CourseID:           course.ID,
		Progress:           progress,
		Performance:        ComputePerformance(attempts),
		CompletedLessonIDs: completedIDs,
		Completed:          progress >= 100 && TotalLessons(course) > 0,
	}
	if snap.Completed {
		monitoring.CourseCompletions.WithLabelValues(fmt.Sprintf("%d", course.ID)).Inc()
		logger.Log.Info("course completed",
			zap.Uint("courseId", course.ID),
			zap.Float64("performance", snap.Performance),
		)
	}
	return snap
}

// GetProgress returns the current snapshot without mutating anything.
func (s *LearningService) GetProgress(userID, courseID uint) (*ProgressSnapshot, error) {
	course, err := s.CourseStore.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	enrollment, err := s.EnrollmentStore.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}

	progress := ComputeProgress(course, enrollment.CompletedLessonIDs())
	return &ProgressSnapshot{
		CourseID:           course.ID,
		Progress:           progress,
		Performance:        ComputePerformance(enrollment.QuizAttempts),
		CompletedLessonIDs: enrollment.CompletedLessonIDs(),
		Completed:          progress >= 100 && TotalLessons(course) > 0,
	}, nil
}

// ToggleLessonCompletion flips a plain lesson in or out of the completed
// set. Graded lessons are rejected: passing their quiz is the only way in.
func (s *LearningService) ToggleLessonCompletion(userID, courseID, lessonID uint) (*ProgressSnapshot, error) {
	course, err := s.CourseStore.FindByID(courseID)
	if err != nil {
		return nil, err
	}

	lesson := FindLesson(course, lessonID)
	if lesson == nil {
		return nil, util.ErrLessonNotFound
	}
	if lesson.HasQuiz() {
		return nil, util.ErrLessonRequiresQuiz
	}

	enrollment, err := s.EnrollmentStore.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}

	completedIDs, err := s.EnrollmentStore.ToggleCompletion(enrollment.ID, lessonID)
	if err != nil {
		return nil, err
	}

	snap := s.snapshot(course, completedIDs, enrollment.QuizAttempts)
	return &snap, nil
}

// SubmitQuiz grades a submission against the lesson's quiz, records the
// attempt (failed ones too), and marks the lesson complete on a pass. The
// answer key is only returned here, after grading.
func (s *LearningService) SubmitQuiz(userID, courseID, lessonID uint, answers map[uint]int) (*QuizResultResponse, error) {
	course, err := s.CourseStore.FindByID(courseID)
	if err != nil {
		return nil, err
	}

	lesson := FindLesson(course, lessonID)
	if lesson == nil {
		return nil, util.ErrLessonNotFound
	}

	score, passed, err := GradeQuiz(lesson.Quiz, answers)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.EnrollmentStore.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}

	attempt := &model.QuizAttempt{
		EnrollmentID: enrollment.ID,
		LessonID:     lessonID,
		Score:        score,
		Passed:       passed,
		SubmittedAt:  time.Now(),
	}
	if err := s.EnrollmentStore.AppendAttempt(attempt); err != nil {
		return nil, err
	}

	monitoring.QuizSubmissions.WithLabelValues(fmt.Sprintf("%t", passed)).Inc()

	// Re-read so the snapshot reflects the stored state, not a local guess.
	enrollment, err = s.EnrollmentStore.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}

	answerKey := make(map[uint]int, len(lesson.Quiz.Questions))
	for _, question := range lesson.Quiz.Questions {
		answerKey[question.ID] = question.CorrectOption
	}

	return &QuizResultResponse{
		Score:     score,
		Passed:    passed,
		AnswerKey: answerKey,
		Snapshot:  s.snapshot(course, enrollment.CompletedLessonIDs(), enrollment.QuizAttempts),
	}, nil
}
