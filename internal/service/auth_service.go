package service

import (
	"errors"
	"inspira_backend/internal/config"
	"inspira_backend/internal/model"
	"inspira_backend/internal/repository"
	"inspira_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo       *repository.UserRepository
	AccessCodeRepo *repository.AccessCodeRepository
	Cfg            *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, accessCodeRepo *repository.AccessCodeRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:       userRepo,
		AccessCodeRepo: accessCodeRepo,
		Cfg:            cfg,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

func (s *AuthService) Register(req RegisterRequest) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(req.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Phone:    req.Phone,
		Role:     model.Student,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

type CTRegisterRequest struct {
	RegisterRequest
	AccessCode string `json:"accessCode" binding:"required"`
}

// RegisterCTStudent signs up a CT student, consuming a single-use access
// code. The code is validated up front and bound to the user afterwards;
// the Consume step re-checks under a row lock so a raced duplicate sign-up
// fails cleanly.
func (s *AuthService) RegisterCTStudent(req CTRegisterRequest) (*model.User, error) {
	available, err := s.AccessCodeRepo.CodeAvailable(req.AccessCode)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, util.ErrAccessCodeUsed
	}

	user, err := s.Register(req.RegisterRequest)
	if err != nil {
		return nil, err
	}

	user.IsCTStudent = true
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	if err := s.AccessCodeRepo.Consume(req.AccessCode, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	_ = s.UserRepo.UpdateLastLogin(user.ID)

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
