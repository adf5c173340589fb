package service

import (
	"inspira_backend/internal/model"
	"inspira_backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) ListStudents() ([]model.User, error) {
	return s.UserRepo.ListByRole(model.Student)
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

type UserUpdateRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	IsCTStudent *bool  `json:"isCtStudent"`
}

func (s *UserService) UpdateUser(id uint, req UserUpdateRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Phone = req.Phone
	if req.IsCTStudent != nil {
		user.IsCTStudent = *req.IsCTStudent
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	return s.UserRepo.Delete(id)
}
