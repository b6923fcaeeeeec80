package model

import "time"

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index"`
	PlaceID   uint64 `gorm:"not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	User  *UserModel  `gorm:"foreignKey:UserID"`
	Place *PlaceModel `gorm:"foreignKey:PlaceID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
