package model

// MetroRegionModel mirrors the 'metro_regions' reference table.
type MetroRegionModel struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(20);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (MetroRegionModel) TableName() string {
	return "metro_regions"
}

// LocalRegionModel mirrors the 'local_regions' reference table. Names repeat
// across metro regions, so uniqueness is the (name, metro_region_id) pair.
type LocalRegionModel struct {
	ID            uint64 `gorm:"primaryKey"`
	Name          string `gorm:"type:varchar(20);not null;uniqueIndex:idx_local_region_name_metro"`
	MetroRegionID uint64 `gorm:"not null;uniqueIndex:idx_local_region_name_metro"`

	MetroRegion *MetroRegionModel `gorm:"foreignKey:MetroRegionID"`
}

// TableName explicitly sets the table name for GORM.
func (LocalRegionModel) TableName() string {
	return "local_regions"
}

// PlaceTypeModel mirrors the 'place_types' reference table.
type PlaceTypeModel struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(20);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceTypeModel) TableName() string {
	return "place_types"
}
