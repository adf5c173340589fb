package repository

import (
	"errors"
	"inspira_backend/internal/model"
	"inspira_backend/internal/util"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// preloadContent loads modules, lessons, attachments and quizzes in
// creation order, which is the order the player presents them in.
func preloadContent(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("course_modules.created_at ASC, course_modules.id ASC")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.created_at ASC, lessons.id ASC")
		}).
		Preload("Modules.Lessons.Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("lesson_attachments.created_at ASC, lesson_attachments.id ASC")
		}).
		Preload("Modules.Lessons.Quiz.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.created_at ASC, quiz_questions.id ASC")
		})
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

// FindByID returns the course with its full nested content. Answer keys
// are loaded but never serialized; QuizQuestion hides CorrectOption from
// JSON.
func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := preloadContent(r.DB).First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := preloadContent(r.DB).Order("courses.created_at ASC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByIDs(ids []uint) ([]model.Course, error) {
	var courses []model.Course
	err := preloadContent(r.DB).Where("courses.id IN ?", ids).Order("courses.created_at ASC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.Course{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrCourseNotFound
	}
	return nil
}

// --- modules ---

func (r *CourseRepository) CreateModule(mod *model.CourseModule) error {
	return r.DB.Create(mod).Error
}

func (r *CourseRepository) FindModule(courseID, moduleID uint) (*model.CourseModule, error) {
	var mod model.CourseModule
	err := r.DB.Where("course_id = ?", courseID).First(&mod, moduleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrModuleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mod, nil
}

func (r *CourseRepository) UpdateModule(mod *model.CourseModule) error {
	return r.DB.Save(mod).Error
}

func (r *CourseRepository) DeleteModule(courseID, moduleID uint) error {
	res := r.DB.Where("course_id = ?", courseID).Delete(&model.CourseModule{}, moduleID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrModuleNotFound
	}
	return nil
}

// --- lessons ---

func (r *CourseRepository) CreateLesson(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

// FindLesson loads a lesson of a course with its quiz, verifying the lesson
// actually belongs to the course through its module.
func (r *CourseRepository) FindLesson(courseID, lessonID uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.
		Joins("JOIN course_modules ON course_modules.id = lessons.module_id").
		Where("course_modules.course_id = ?", courseID).
		Preload("Attachments").
		Preload("Quiz.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.created_at ASC, quiz_questions.id ASC")
		}).
		First(&lesson, "lessons.id = ?", lessonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *CourseRepository) UpdateLesson(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *CourseRepository) DeleteLesson(moduleID, lessonID uint) error {
	res := r.DB.Where("module_id = ?", moduleID).Delete(&model.Lesson{}, lessonID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrLessonNotFound
	}
	return nil
}

// ReplaceQuiz swaps a lesson's quiz (and questions) in one transaction.
// Passing nil removes the quiz, turning the lesson back into a plain one.
func (r *CourseRepository) ReplaceQuiz(lessonID uint, quiz *model.Quiz) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Quiz
		err := tx.Where("lesson_id = ?", lessonID).First(&existing).Error
		if err == nil {
			if err := tx.Where("quiz_id = ?", existing.ID).Delete(&model.QuizQuestion{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if quiz == nil {
			return nil
		}

		quiz.LessonID = lessonID
		return tx.Create(quiz).Error
	})
}
