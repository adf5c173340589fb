package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrQuizNotFound       = errors.New("lesson has no quiz")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrAccessCodeNotFound = errors.New("access code not found")

	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrAlreadyEnrolled    = errors.New("student already enrolled in this course")
	ErrCouponCodeTaken    = errors.New("coupon code already exists")
	ErrAccessCodeUsed     = errors.New("access code invalid or already used")

	// Quiz-bearing lessons are completed through grading, never by toggle.
	ErrLessonRequiresQuiz = errors.New("lesson completion requires passing its quiz")
	ErrIncompleteQuiz     = errors.New("incomplete submission: every question must be answered")

	ErrCouponInactive    = errors.New("coupon is no longer active")
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponWrongCourse = errors.New("coupon is not valid for this course")

	ErrInvalidVideoExt = errors.New("unsupported video file extension")
	ErrInvalidImageExt = errors.New("unsupported image file extension")
)
