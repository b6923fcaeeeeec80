package model

import "time"

// CheckInModel mirrors the 'checkins' table. A set DeletedAt means the
// check-in was cancelled; the day rule only consults rows where it is null.
type CheckInModel struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index:idx_checkin_user_place"`
	PlaceID   uint64 `gorm:"not null;index:idx_checkin_user_place"`
	CreatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	User  *UserModel  `gorm:"foreignKey:UserID"`
	Place *PlaceModel `gorm:"foreignKey:PlaceID"`
}

// TableName explicitly sets the table name for GORM.
func (CheckInModel) TableName() string {
	return "checkins"
}
