package entity

import "time"

// Review is a free-text review of a place. A user may post any number of
// reviews for the same place; only the owner may update or delete one.
type Review struct {
	ID        uint64
	UserID    uint64
	PlaceID   uint64
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// Author is populated on listing reads so responses can show the
	// reviewer's nickname. Nil on write paths.
	Author *User
}

// Active reports whether the review has not been soft-deleted.
func (r *Review) Active() bool {
	return r.DeletedAt == nil
}

// OwnedBy reports whether the review belongs to the given user.
func (r *Review) OwnedBy(userID uint64) bool {
	return r.UserID == userID
}
