package entity

import "time"

// DeletionPolicy controls how a lookup on a soft-deletable record reports a
// row that exists but has been soft-deleted. Place distinguishes the two
// states for its callers; CheckIn and Review collapse them into a single
// "invalid" outcome. Keeping this a per-resource policy makes either
// behavior a one-line switch.
type DeletionPolicy int

const (
	// MergeDeleted reports a soft-deleted row with the same error as a row
	// that never existed.
	MergeDeleted DeletionPolicy = iota

	// DistinguishDeleted reports a soft-deleted row with a dedicated error
	// so callers can present "existed but removed" separately.
	DistinguishDeleted
)

// ResolveDeleted maps the deletion state of a found record to the error the
// caller should surface. A nil deletedAt means the record is active and the
// lookup succeeds.
func ResolveDeleted(deletedAt *time.Time, policy DeletionPolicy, deletedErr, missingErr error) error {
	if deletedAt == nil {
		return nil
	}
	if policy == DistinguishDeleted {
		return deletedErr
	}

	return missingErr
}
