package service

import (
	"fmt"
	"inspira_backend/internal/model"
	"inspira_backend/internal/repository"
	"math/rand"
)

type AccessCodeService struct {
	CodeRepo *repository.AccessCodeRepository
	UserRepo *repository.UserRepository
}

func NewAccessCodeService(codeRepo *repository.AccessCodeRepository, userRepo *repository.UserRepository) *AccessCodeService {
	return &AccessCodeService{
		CodeRepo: codeRepo,
		UserRepo: userRepo,
	}
}

// Generate creates a fresh unused 6-digit code, retrying on collision.
func (s *AccessCodeService) Generate() (*model.AccessCode, error) {
	for {
		candidate := fmt.Sprintf("%06d", 100000+rand.Intn(900000))
		exists, err := s.CodeRepo.CodeExists(candidate)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		code := &model.AccessCode{Code: candidate}
		if err := s.CodeRepo.Create(code); err != nil {
			return nil, err
		}
		return code, nil
	}
}

// AccessCodeWithUser is the admin listing row: the code plus, when used,
// the name of the student who consumed it.
type AccessCodeWithUser struct {
	model.AccessCode
	UsedByUserName string `json:"usedByUserName,omitempty"`
}

func (s *AccessCodeService) List() ([]AccessCodeWithUser, error) {
	codes, err := s.CodeRepo.FindAll()
	if err != nil {
		return nil, err
	}

	rows := make([]AccessCodeWithUser, 0, len(codes))
	for _, code := range codes {
		row := AccessCodeWithUser{AccessCode: code}
		if code.IsUsed && code.UsedByUserID != nil {
			if user, err := s.UserRepo.FindByID(*code.UsedByUserID); err == nil {
				row.UsedByUserName = user.Name
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *AccessCodeService) SetUsed(id uint, used bool) (*model.AccessCode, error) {
	code, err := s.CodeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	code.IsUsed = used
	if !used {
		code.UsedByUserID = nil
	}
	if err := s.CodeRepo.Update(code); err != nil {
		return nil, err
	}
	return code, nil
}

func (s *AccessCodeService) Delete(id uint) error {
	return s.CodeRepo.Delete(id)
}
