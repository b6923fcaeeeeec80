package model

import "time"

// PlaceModel mirrors the 'places' table. DeletedAt is an explicit nullable
// column rather than gorm.DeletedAt: read paths must still see soft-deleted
// rows to distinguish "deleted" from "never existed", so GORM's automatic
// deleted-row scoping would get in the way.
type PlaceModel struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(50);not null"`
	PlaceTypeID uint64 `gorm:"not null"`
	RegionID    uint64 `gorm:"not null"`
	RoadAddress string `gorm:"type:varchar(50);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	PlaceType *PlaceTypeModel   `gorm:"foreignKey:PlaceTypeID"`
	Region    *LocalRegionModel `gorm:"foreignKey:RegionID"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}
