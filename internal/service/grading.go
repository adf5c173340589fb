package service

import (
	"inspira_backend/internal/model"
	"inspira_backend/internal/util"
)

// Pure rules of the progress and assessment engine. Everything here works
// on loaded records and never touches storage.

// TotalLessons counts lessons across all modules of a course.
func TotalLessons(course *model.Course) int {
	total := 0
	for _, mod := range course.Modules {
		total += len(mod.Lessons)
	}
	return total
}

// FindLesson walks the course content for a lesson id.
func FindLesson(course *model.Course, lessonID uint) *model.Lesson {
	for mi := range course.Modules {
		for li := range course.Modules[mi].Lessons {
			if course.Modules[mi].Lessons[li].ID == lessonID {
				return &course.Modules[mi].Lessons[li]
			}
		}
	}
	return nil
}

// ComputeProgress returns the percentage of the course's lessons present in
// the completed set. Lesson ids that no longer exist in the course are
// ignored. A course with no lessons has progress 0.
func ComputeProgress(course *model.Course, completedLessonIDs []uint) float64 {
	total := TotalLessons(course)
	if total == 0 {
		return 0
	}

	known := make(map[uint]bool, total)
	for _, mod := range course.Modules {
		for _, lesson := range mod.Lessons {
			known[lesson.ID] = true
		}
	}

	completed := 0
	for _, id := range completedLessonIDs {
		if known[id] {
			completed++
		}
	}

	return 100 * float64(completed) / float64(total)
}

// ComputePerformance is the arithmetic mean over every recorded attempt,
// failed and repeated ones included. No attempts means 0.
func ComputePerformance(attempts []model.QuizAttempt) float64 {
	if len(attempts) == 0 {
		return 0
	}

	sum := 0.0
	for _, attempt := range attempts {
		sum += attempt.Score
	}
	return sum / float64(len(attempts))
}

// GradeQuiz scores a submission against the quiz's answer key. Every
// question must be answered; unknown question ids are ignored. No partial
// credit per question.
func GradeQuiz(quiz *model.Quiz, answers map[uint]int) (score float64, passed bool, err error) {
	if quiz == nil || len(quiz.Questions) == 0 {
		return 0, false, util.ErrQuizNotFound
	}

	correct := 0
	for _, question := range quiz.Questions {
		chosen, ok := answers[question.ID]
		if !ok {
			return 0, false, util.ErrIncompleteQuiz
		}
		if chosen == question.CorrectOption {
			correct++
		}
	}

	score = 100 * float64(correct) / float64(len(quiz.Questions))
	return score, score >= util.QuizPassThreshold, nil
}
