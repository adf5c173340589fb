package model

import "time"

// Coupon is a discount rule. Codes are stored upper-cased and matched
// case-insensitively. A nil CourseID means the coupon applies to every
// course.
type Coupon struct {
	BaseModel
	Code               string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	DiscountPercentage int       `gorm:"not null" json:"discountPercentage"`
	ExpiresAt          time.Time `gorm:"not null" json:"expiresAt"`
	IsActive           bool      `gorm:"default:true" json:"isActive"`
	CourseID           *uint     `gorm:"index;type:bigint unsigned" json:"courseId,omitempty"`
}

func (Coupon) TableName() string {
	return "coupons"
}
