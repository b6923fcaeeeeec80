// Package model contains the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table. Email is deliberately not a unique
// column; sign-up enforces uniqueness at the application level.
type UserModel struct {
	ID           uint64 `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(255);not null"`
	PasswordHash string `gorm:"column:password;type:varchar(150);not null"`
	Nickname     string `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
