package model

// AccessCode is a single-use 6-digit code handed to CT students. Consuming
// it during sign-up binds it to the created user.
type AccessCode struct {
	BaseModel
	Code         string `gorm:"size:10;uniqueIndex;not null" json:"code"`
	IsUsed       bool   `gorm:"default:false" json:"isUsed"`
	UsedByUserID *uint  `gorm:"index;type:bigint unsigned" json:"usedByUserId,omitempty"`
}

func (AccessCode) TableName() string {
	return "access_codes"
}
