package model

import "time"

// Enrollment grants one student access to one course and carries the
// completion and attempt state the progress engine works on. At most one
// row exists per (user, course).
type Enrollment struct {
	BaseModel
	UserID   uint `gorm:"index:idx_user_course,unique;type:bigint unsigned;not null" json:"userId"`
	CourseID uint `gorm:"index:idx_user_course,unique;type:bigint unsigned;not null" json:"courseId"`

	Completions  []LessonCompletion `gorm:"foreignKey:EnrollmentID" json:"completions,omitempty"`
	QuizAttempts []QuizAttempt      `gorm:"foreignKey:EnrollmentID" json:"quizAttempts,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// CompletedLessonIDs flattens the completion rows into the id set the
// aggregator consumes.
func (e *Enrollment) CompletedLessonIDs() []uint {
	ids := make([]uint, 0, len(e.Completions))
	for _, c := range e.Completions {
		ids = append(ids, c.LessonID)
	}
	return ids
}

// LessonCompletion marks one lesson of an enrollment as completed. Rows are
// inserted and deleted by the toggle path; a quiz pass inserts the same way.
type LessonCompletion struct {
	BaseModel
	EnrollmentID uint `gorm:"index:idx_enrollment_lesson,unique;type:bigint unsigned;not null" json:"enrollmentId"`
	LessonID     uint `gorm:"index:idx_enrollment_lesson,unique;type:bigint unsigned;not null" json:"lessonId"`
}

func (LessonCompletion) TableName() string {
	return "lesson_completions"
}

// QuizAttempt is one graded submission. Attempts are append-only: failed
// and repeated attempts stay in the history so performance averages over
// every recorded score.
type QuizAttempt struct {
	BaseModel
	EnrollmentID uint      `gorm:"index;type:bigint unsigned;not null" json:"enrollmentId"`
	LessonID     uint      `gorm:"index;type:bigint unsigned;not null" json:"lessonId"`
	Score        float64   `gorm:"not null" json:"score"`
	Passed       bool      `gorm:"not null" json:"passed"`
	SubmittedAt  time.Time `gorm:"not null" json:"submittedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
