package service

import (
	"testing"

	"inspira_backend/internal/model"
	"inspira_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lesson(id uint, quiz *model.Quiz) model.Lesson {
	l := model.Lesson{Title: "Lesson", Quiz: quiz}
	l.ID = id
	return l
}

func courseWithLessons(lessons ...model.Lesson) *model.Course {
	course := &model.Course{
		Title:   "Course",
		Modules: []model.CourseModule{{Title: "Module", Lessons: lessons}},
	}
	course.ID = 1
	return course
}

func quizWith(answers ...int) *model.Quiz {
	quiz := &model.Quiz{}
	quiz.ID = 1
	for i, correct := range answers {
		q := model.QuizQuestion{
			Text:          "Question",
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: correct,
		}
		q.ID = uint(i + 1)
		quiz.Questions = append(quiz.Questions, q)
	}
	return quiz
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name      string
		course    *model.Course
		completed []uint
		want      float64
	}{
		{"empty course", courseWithLessons(), nil, 0},
		{"nothing completed", courseWithLessons(lesson(1, nil), lesson(2, nil)), nil, 0},
		{"half completed", courseWithLessons(lesson(1, nil), lesson(2, nil)), []uint{1}, 50},
		{"all completed", courseWithLessons(lesson(1, nil), lesson(2, nil)), []uint{1, 2}, 100},
		{"unknown ids ignored", courseWithLessons(lesson(1, nil), lesson(2, nil)), []uint{1, 99}, 50},
		{"one of three", courseWithLessons(lesson(1, nil), lesson(2, nil), lesson(3, nil)), []uint{2}, 100.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeProgress(tt.course, tt.completed)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestComputePerformance(t *testing.T) {
	assert.Equal(t, 0.0, ComputePerformance(nil))

	attempts := []model.QuizAttempt{
		{Score: 80, Passed: true},
		{Score: 60, Passed: false},
	}
	assert.InDelta(t, 70.0, ComputePerformance(attempts), 1e-9)

	// A retake never replaces the earlier score.
	attempts = append(attempts, model.QuizAttempt{Score: 100, Passed: true})
	assert.InDelta(t, 80.0, ComputePerformance(attempts), 1e-9)
}

func TestGradeQuizAllCorrect(t *testing.T) {
	quiz := quizWith(0, 1, 2)

	score, passed, err := GradeQuiz(quiz, map[uint]int{1: 0, 2: 1, 3: 2})
	require.NoError(t, err)
	assert.Equal(t, 100.0, score)
	assert.True(t, passed)
}

func TestGradeQuizAllWrong(t *testing.T) {
	quiz := quizWith(0, 1, 2)

	score, passed, err := GradeQuiz(quiz, map[uint]int{1: 3, 2: 3, 3: 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
	assert.False(t, passed)
}

func TestGradeQuizPassBoundary(t *testing.T) {
	tests := []struct {
		name    string
		answers map[uint]int
		score   float64
		passed  bool
	}{
		{"3 of 4 passes", map[uint]int{1: 0, 2: 0, 3: 0, 4: 9}, 75, true},
		{"2 of 4 fails", map[uint]int{1: 0, 2: 0, 3: 9, 4: 9}, 50, false},
	}

	quiz := quizWith(0, 0, 0, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, passed, err := GradeQuiz(quiz, tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.passed, passed)
		})
	}
}

func TestGradeQuizIncompleteSubmission(t *testing.T) {
	quiz := quizWith(0, 1)

	_, _, err := GradeQuiz(quiz, map[uint]int{1: 0})
	assert.ErrorIs(t, err, util.ErrIncompleteQuiz)
}

func TestGradeQuizExtraAnswersIgnored(t *testing.T) {
	quiz := quizWith(0)

	score, passed, err := GradeQuiz(quiz, map[uint]int{1: 0, 42: 3})
	require.NoError(t, err)
	assert.Equal(t, 100.0, score)
	assert.True(t, passed)
}

func TestGradeQuizMissing(t *testing.T) {
	_, _, err := GradeQuiz(nil, map[uint]int{})
	assert.ErrorIs(t, err, util.ErrQuizNotFound)

	_, _, err = GradeQuiz(&model.Quiz{}, map[uint]int{})
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestFindLesson(t *testing.T) {
	course := courseWithLessons(lesson(1, nil), lesson(2, quizWith(0)))

	require.NotNil(t, FindLesson(course, 2))
	assert.True(t, FindLesson(course, 2).HasQuiz())
	assert.False(t, FindLesson(course, 1).HasQuiz())
	assert.Nil(t, FindLesson(course, 99))
}
