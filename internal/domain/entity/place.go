package entity

import "time"

// Place is a registered venue. No two active places may share the same
// (name, type, road address, region) tuple; soft-deleted rows do not count
// toward that uniqueness check.
type Place struct {
	ID          uint64
	Name        string
	PlaceType   *PlaceType
	Region      *LocalRegion
	RoadAddress string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// Active reports whether the place record has not been soft-deleted.
func (p *Place) Active() bool {
	return p.DeletedAt == nil
}
