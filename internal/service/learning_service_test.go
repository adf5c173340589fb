package service

import (
	"testing"
	"time"

	"inspira_backend/internal/model"
	"inspira_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCourseStore struct {
	courses map[uint]*model.Course
}

func (s *memCourseStore) FindByID(id uint) (*model.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, util.ErrCourseNotFound
	}
	return course, nil
}

// memEnrollmentStore mirrors the gorm repository's contract: toggles flip
// a completion row, and a passing attempt inserts the completion itself.
type memEnrollmentStore struct {
	enrollment *model.Enrollment
}

func (s *memEnrollmentStore) FindByUserAndCourse(userID, courseID uint) (*model.Enrollment, error) {
	if s.enrollment == nil || s.enrollment.UserID != userID || s.enrollment.CourseID != courseID {
		return nil, util.ErrEnrollmentNotFound
	}
	enrollment := *s.enrollment
	return &enrollment, nil
}

func (s *memEnrollmentStore) ToggleCompletion(enrollmentID, lessonID uint) ([]uint, error) {
	for i, c := range s.enrollment.Completions {
		if c.LessonID == lessonID {
			s.enrollment.Completions = append(s.enrollment.Completions[:i], s.enrollment.Completions[i+1:]...)
			return s.enrollment.CompletedLessonIDs(), nil
		}
	}
	s.enrollment.Completions = append(s.enrollment.Completions,
		model.LessonCompletion{EnrollmentID: enrollmentID, LessonID: lessonID})
	return s.enrollment.CompletedLessonIDs(), nil
}

func (s *memEnrollmentStore) AppendAttempt(attempt *model.QuizAttempt) error {
	s.enrollment.QuizAttempts = append(s.enrollment.QuizAttempts, *attempt)
	if attempt.Passed {
		for _, c := range s.enrollment.Completions {
			if c.LessonID == attempt.LessonID {
				return nil
			}
		}
		s.enrollment.Completions = append(s.enrollment.Completions,
			model.LessonCompletion{EnrollmentID: attempt.EnrollmentID, LessonID: attempt.LessonID})
	}
	return nil
}

func newLearningFixture(course *model.Course) (*LearningService, *memEnrollmentStore) {
	enrollment := &model.Enrollment{UserID: 7, CourseID: course.ID}
	enrollment.ID = 1
	store := &memEnrollmentStore{enrollment: enrollment}
	svc := NewLearningService(&memCourseStore{courses: map[uint]*model.Course{course.ID: course}}, store)
	return svc, store
}

func TestToggleLessonCompletion(t *testing.T) {
	course := courseWithLessons(lesson(1, nil), lesson(2, nil))
	svc, _ := newLearningFixture(course)

	snap, err := svc.ToggleLessonCompletion(7, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, snap.Progress)
	assert.Equal(t, []uint{1}, snap.CompletedLessonIDs)
	assert.False(t, snap.Completed)

	// Toggling twice is an involution.
	snap, err = svc.ToggleLessonCompletion(7, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, snap.Progress)
	assert.Empty(t, snap.CompletedLessonIDs)
}

func TestToggleLessonCompletionErrors(t *testing.T) {
	course := courseWithLessons(lesson(1, nil), lesson(2, quizWith(0)))
	svc, _ := newLearningFixture(course)

	_, err := svc.ToggleLessonCompletion(7, 1, 99)
	assert.ErrorIs(t, err, util.ErrLessonNotFound)

	_, err = svc.ToggleLessonCompletion(7, 1, 2)
	assert.ErrorIs(t, err, util.ErrLessonRequiresQuiz)

	_, err = svc.ToggleLessonCompletion(7, 42, 1)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	_, err = svc.ToggleLessonCompletion(99, 1, 1)
	assert.ErrorIs(t, err, util.ErrEnrollmentNotFound)
}

func TestSubmitQuizPassMarksLessonComplete(t *testing.T) {
	course := courseWithLessons(lesson(1, nil), lesson(2, quizWith(0, 1)))
	svc, store := newLearningFixture(course)

	result, err := svc.SubmitQuiz(7, 1, 2, map[uint]int{1: 0, 2: 1})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, map[uint]int{1: 0, 2: 1}, result.AnswerKey)
	assert.Equal(t, 50.0, result.Snapshot.Progress)
	assert.Contains(t, result.Snapshot.CompletedLessonIDs, uint(2))
	assert.Len(t, store.enrollment.QuizAttempts, 1)
}

func TestSubmitQuizFailRecordsAttemptOnly(t *testing.T) {
	course := courseWithLessons(lesson(1, nil), lesson(2, quizWith(0, 1)))
	svc, store := newLearningFixture(course)

	result, err := svc.SubmitQuiz(7, 1, 2, map[uint]int{1: 3, 2: 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
	assert.False(t, result.Passed)
	assert.Empty(t, result.Snapshot.CompletedLessonIDs)
	assert.Len(t, store.enrollment.QuizAttempts, 1)

	// Retaking appends, so performance averages over both attempts.
	result, err = svc.SubmitQuiz(7, 1, 2, map[uint]int{1: 0, 2: 1})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Len(t, store.enrollment.QuizAttempts, 2)
	assert.InDelta(t, 50.0, result.Snapshot.Performance, 1e-9)
}

func TestSubmitQuizOnPlainLesson(t *testing.T) {
	course := courseWithLessons(lesson(1, nil))
	svc, _ := newLearningFixture(course)

	_, err := svc.SubmitQuiz(7, 1, 1, map[uint]int{})
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestSubmitQuizIncomplete(t *testing.T) {
	course := courseWithLessons(lesson(2, quizWith(0, 1)))
	svc, store := newLearningFixture(course)

	_, err := svc.SubmitQuiz(7, 1, 2, map[uint]int{1: 0})
	assert.ErrorIs(t, err, util.ErrIncompleteQuiz)
	assert.Empty(t, store.enrollment.QuizAttempts)
}

func TestCourseCompletionLifecycle(t *testing.T) {
	course := courseWithLessons(lesson(1, nil), lesson(2, quizWith(0)))
	svc, _ := newLearningFixture(course)

	snap, err := svc.ToggleLessonCompletion(7, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, snap.Progress)
	assert.False(t, snap.Completed)

	result, err := svc.SubmitQuiz(7, 1, 2, map[uint]int{1: 0})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Snapshot.Progress)
	assert.True(t, result.Snapshot.Completed)

	// Dropping below 100% and returning completes again.
	snap, err = svc.ToggleLessonCompletion(7, 1, 1)
	require.NoError(t, err)
	assert.False(t, snap.Completed)

	snap, err = svc.ToggleLessonCompletion(7, 1, 1)
	require.NoError(t, err)
	assert.True(t, snap.Completed)
}

func TestGetProgressDoesNotMutate(t *testing.T) {
	course := courseWithLessons(lesson(1, nil))
	svc, store := newLearningFixture(course)
	store.enrollment.Completions = []model.LessonCompletion{{EnrollmentID: 1, LessonID: 1}}
	store.enrollment.QuizAttempts = []model.QuizAttempt{{Score: 80, SubmittedAt: time.Now()}}

	snap, err := svc.GetProgress(7, 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, snap.Progress)
	assert.Equal(t, 80.0, snap.Performance)
	assert.True(t, snap.Completed)
	assert.Len(t, store.enrollment.Completions, 1)
	assert.Len(t, store.enrollment.QuizAttempts, 1)
}
