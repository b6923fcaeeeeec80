package entity

import "time"

// CheckIn records a user's presence at a place. CreatedAt is the check-in
// instant; a set DeletedAt means the check-in was cancelled. There is no
// stored per-pair state machine: the "once per day" rule is derived from the
// latest active row for (user, place) at creation time.
type CheckIn struct {
	ID        uint64
	UserID    uint64
	PlaceID   uint64
	CreatedAt time.Time
	DeletedAt *time.Time
}

// Active reports whether the check-in has not been cancelled.
func (c *CheckIn) Active() bool {
	return c.DeletedAt == nil
}

// SameDayAs reports whether zero whole days have elapsed between the
// check-in instant and now. This is elapsed-duration truncation, not a
// calendar-date string match: a check-in 23h59m ago still blocks, one 24h
// ago does not.
func (c *CheckIn) SameDayAs(now time.Time) bool {
	elapsed := now.Sub(c.CreatedAt)

	return elapsed >= 0 && elapsed < 24*time.Hour
}
