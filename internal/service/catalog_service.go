package service

import (
	"context"
	"encoding/json"
	"inspira_backend/internal/model"
	"inspira_backend/internal/repository"
	"inspira_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	catalogCacheKey = "catalog:courses"
	catalogCacheTTL = 10 * time.Minute
)

// CatalogService owns the course/module/lesson content tree. The public
// course list is cached in Redis and invalidated on every admin write.
type CatalogService struct {
	CourseRepo *repository.CourseRepository
	Redis      *redis.Client
}

func NewCatalogService(courseRepo *repository.CourseRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		CourseRepo: courseRepo,
		Redis:      rdb,
	}
}

func (s *CatalogService) ListCourses(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var courses []model.Course
			if err := json.Unmarshal([]byte(val), &courses); err == nil {
				return courses, nil
			}
		}
	}

	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return courses, nil
}

func (s *CatalogService) GetCourse(id uint) (*model.Course, error) {
	return s.CourseRepo.FindByID(id)
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, catalogCacheKey).Err(); err != nil {
		logger.Log.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

type CourseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	ImageURL    string  `json:"imageUrl"`
}

func (s *CatalogService) CreateCourse(ctx context.Context, req CourseRequest) (*model.Course, error) {
	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Modules:     []model.CourseModule{},
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return course, nil
}

func (s *CatalogService) UpdateCourse(ctx context.Context, id uint, req CourseRequest) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Price = req.Price
	if req.ImageURL != "" {
		course.ImageURL = req.ImageURL
	}
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return course, nil
}

func (s *CatalogService) DeleteCourse(ctx context.Context, id uint) error {
	if err := s.CourseRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// --- modules ---

type ModuleRequest struct {
	Title string `json:"title" binding:"required"`
}

func (s *CatalogService) AddModule(ctx context.Context, courseID uint, req ModuleRequest) (*model.CourseModule, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return nil, err
	}

	mod := &model.CourseModule{
		CourseID: courseID,
		Title:    req.Title,
		Lessons:  []model.Lesson{},
	}
	if err := s.CourseRepo.CreateModule(mod); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return mod, nil
}

func (s *CatalogService) UpdateModule(ctx context.Context, courseID, moduleID uint, req ModuleRequest) (*model.CourseModule, error) {
	mod, err := s.CourseRepo.FindModule(courseID, moduleID)
	if err != nil {
		return nil, err
	}

	mod.Title = req.Title
	if err := s.CourseRepo.UpdateModule(mod); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return mod, nil
}

func (s *CatalogService) DeleteModule(ctx context.Context, courseID, moduleID uint) error {
	if err := s.CourseRepo.DeleteModule(courseID, moduleID); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// --- lessons ---

type AttachmentRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
}

type QuizQuestionRequest struct {
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectOption int      `json:"correctOption" binding:"min=0"`
}

type LessonRequest struct {
	Title       string                `json:"title" binding:"required"`
	Content     string                `json:"content"`
	VideoURL    string                `json:"videoUrl"`
	Attachments []AttachmentRequest   `json:"attachments"`
	Quiz        []QuizQuestionRequest `json:"quiz"`
}

func (s *CatalogService) AddLesson(ctx context.Context, courseID, moduleID uint, req LessonRequest) (*model.Lesson, error) {
	mod, err := s.CourseRepo.FindModule(courseID, moduleID)
	if err != nil {
		return nil, err
	}

	lesson := &model.Lesson{
		ModuleID: mod.ID,
		Title:    req.Title,
		Content:  req.Content,
		VideoURL: req.VideoURL,
	}
	for _, att := range req.Attachments {
		lesson.Attachments = append(lesson.Attachments, model.LessonAttachment{
			Name: att.Name,
			URL:  att.URL,
		})
	}
	if len(req.Quiz) > 0 {
		lesson.Quiz = buildQuiz(req.Quiz)
	}

	if err := s.CourseRepo.CreateLesson(lesson); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return lesson, nil
}

func (s *CatalogService) UpdateLesson(ctx context.Context, courseID, lessonID uint, req LessonRequest) (*model.Lesson, error) {
	lesson, err := s.CourseRepo.FindLesson(courseID, lessonID)
	if err != nil {
		return nil, err
	}

	lesson.Title = req.Title
	lesson.Content = req.Content
	lesson.VideoURL = req.VideoURL
	if err := s.CourseRepo.UpdateLesson(lesson); err != nil {
		return nil, err
	}

	if err := s.CourseRepo.ReplaceQuiz(lesson.ID, buildQuiz(req.Quiz)); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return s.CourseRepo.FindLesson(courseID, lessonID)
}

func (s *CatalogService) DeleteLesson(ctx context.Context, courseID, moduleID, lessonID uint) error {
	if _, err := s.CourseRepo.FindModule(courseID, moduleID); err != nil {
		return err
	}
	if err := s.CourseRepo.DeleteLesson(moduleID, lessonID); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func buildQuiz(questions []QuizQuestionRequest) *model.Quiz {
	if len(questions) == 0 {
		return nil
	}
	quiz := &model.Quiz{}
	for _, q := range questions {
		quiz.Questions = append(quiz.Questions, model.QuizQuestion{
			Text:          q.Text,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
		})
	}
	return quiz
}
