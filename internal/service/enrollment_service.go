package service

import (
	"inspira_backend/internal/model"
	"inspira_backend/internal/repository"
	"inspira_backend/internal/util"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	UserRepo       *repository.UserRepository
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	userRepo *repository.UserRepository,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		UserRepo:       userRepo,
	}
}

// Enroll grants a student access to a course. At most one enrollment per
// (student, course) pair.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*model.Enrollment, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, err
	}
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return nil, err
	}

	exists, err := s.EnrollmentRepo.Exists(userID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyEnrolled
	}

	enrollment := &model.Enrollment{UserID: userID, CourseID: courseID}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// StudentCourses lists the courses a student is enrolled in.
func (s *EnrollmentService) StudentCourses(userID uint) ([]model.Course, error) {
	enrollments, err := s.EnrollmentRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return []model.Course{}, nil
	}

	ids := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.CourseID)
	}
	return s.CourseRepo.FindByIDs(ids)
}

// ProgressOverviewEntry is one row of the admin progress table.
type ProgressOverviewEntry struct {
	Student     model.User   `json:"student"`
	Course      model.Course `json:"course"`
	Progress    float64      `json:"progress"`
	Performance float64      `json:"performance"`
}

// ProgressOverview derives progress and performance for every enrollment,
// for the admin dashboard.
func (s *EnrollmentService) ProgressOverview() ([]ProgressOverviewEntry, error) {
	enrollments, err := s.EnrollmentRepo.FindAll()
	if err != nil {
		return nil, err
	}

	courseCache := make(map[uint]*model.Course)
	userCache := make(map[uint]*model.User)

	entries := make([]ProgressOverviewEntry, 0, len(enrollments))
	for _, e := range enrollments {
		course, ok := courseCache[e.CourseID]
		if !ok {
			course, err = s.CourseRepo.FindByID(e.CourseID)
			if err != nil {
				// Course removed after enrollment; skip the stale row.
				continue
			}
			courseCache[e.CourseID] = course
		}

		user, ok := userCache[e.UserID]
		if !ok {
			user, err = s.UserRepo.FindByID(e.UserID)
			if err != nil {
				continue
			}
			userCache[e.UserID] = user
		}

		entries = append(entries, ProgressOverviewEntry{
			Student:     *user,
			Course:      *course,
			Progress:    ComputeProgress(course, e.CompletedLessonIDs()),
			Performance: ComputePerformance(e.QuizAttempts),
		})
	}
	return entries, nil
}
