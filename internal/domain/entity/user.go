// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core account entity. Sign-up rejects duplicate emails and
// nicknames at the application level; the storage layer does not enforce
// email uniqueness.
type User struct {
	ID           uint64
	Email        string
	PasswordHash string // bcrypt hash, never the plaintext and never serialized outward.
	Nickname     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete marker. No endpoint currently sets it.
}

// Active reports whether the user record has not been soft-deleted.
func (u *User) Active() bool {
	return u.DeletedAt == nil
}
