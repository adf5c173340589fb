package repository

import (
	"errors"
	"inspira_backend/internal/model"
	"inspira_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccessCodeRepository struct {
	DB *gorm.DB
}

func NewAccessCodeRepository(db *gorm.DB) *AccessCodeRepository {
	return &AccessCodeRepository{DB: db}
}

func (r *AccessCodeRepository) Create(code *model.AccessCode) error {
	return r.DB.Create(code).Error
}

func (r *AccessCodeRepository) FindByID(id uint) (*model.AccessCode, error) {
	var code model.AccessCode
	err := r.DB.First(&code, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAccessCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *AccessCodeRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.AccessCode{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// CodeAvailable reports whether the code exists and is still unused.
func (r *AccessCodeRepository) CodeAvailable(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.AccessCode{}).
		Where("code = ? AND is_used = ?", code, false).Count(&count).Error
	return count > 0, err
}

func (r *AccessCodeRepository) FindAll() ([]model.AccessCode, error) {
	var codes []model.AccessCode
	err := r.DB.Order("created_at ASC").Find(&codes).Error
	return codes, err
}

// Consume marks an unused code as used by the given user. The row is
// locked so two concurrent sign-ups cannot both claim it.
func (r *AccessCodeRepository) Consume(codeStr string, userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var code model.AccessCode
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("code = ?", codeStr).First(&code).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAccessCodeUsed
		}
		if err != nil {
			return err
		}
		if code.IsUsed {
			return util.ErrAccessCodeUsed
		}

		code.IsUsed = true
		code.UsedByUserID = &userID
		return tx.Save(&code).Error
	})
}

func (r *AccessCodeRepository) Update(code *model.AccessCode) error {
	return r.DB.Save(code).Error
}

func (r *AccessCodeRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.AccessCode{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrAccessCodeNotFound
	}
	return nil
}
