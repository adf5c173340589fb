package repository

import (
	"errors"
	"inspira_backend/internal/model"
	"inspira_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByUserAndCourse(userID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.
		Preload("Completions").
		Preload("QuizAttempts", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_attempts.submitted_at ASC, quiz_attempts.id ASC")
		}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) Exists(userID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) FindByUser(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Preload("Completions").Preload("QuizAttempts").
		Where("user_id = ?", userID).Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) FindAll() ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Preload("Completions").Preload("QuizAttempts").Find(&enrollments).Error
	return enrollments, err
}

// ToggleCompletion flips the presence of a lesson id in the enrollment's
// completed set. The enrollment row is locked for the duration so
// overlapping toggles on the same enrollment cannot lose updates.
func (r *EnrollmentRepository) ToggleCompletion(enrollmentID, lessonID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var enrollment model.Enrollment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&enrollment, enrollmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrEnrollmentNotFound
			}
			return err
		}

		var existing model.LessonCompletion
		err := tx.Where("enrollment_id = ? AND lesson_id = ?", enrollmentID, lessonID).
			First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Unscoped().Delete(&existing).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			completion := &model.LessonCompletion{EnrollmentID: enrollmentID, LessonID: lessonID}
			if err := tx.Create(completion).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return tx.Model(&model.LessonCompletion{}).
			Where("enrollment_id = ?", enrollmentID).
			Order("lesson_id ASC").
			Pluck("lesson_id", &ids).Error
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// AppendAttempt records a graded submission and, when it passed, marks the
// lesson complete in the same transaction. Attempts are never updated or
// removed.
func (r *EnrollmentRepository) AppendAttempt(attempt *model.QuizAttempt) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var enrollment model.Enrollment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&enrollment, attempt.EnrollmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrEnrollmentNotFound
			}
			return err
		}

		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		if !attempt.Passed {
			return nil
		}

		var count int64
		if err := tx.Model(&model.LessonCompletion{}).
			Where("enrollment_id = ? AND lesson_id = ?", attempt.EnrollmentID, attempt.LessonID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		completion := &model.LessonCompletion{
			EnrollmentID: attempt.EnrollmentID,
			LessonID:     attempt.LessonID,
		}
		return tx.Create(completion).Error
	})
}
