package entity

// MetroRegion is a top-level administrative region (metropolitan city,
// province, and the like). Reference data: name-unique and effectively
// immutable, so it carries no lifecycle timestamps.
type MetroRegion struct {
	ID   uint64
	Name string
}

// LocalRegion is a district within a MetroRegion. Its name is unique only
// within its parent metro region, so lookups must always be metro-scoped.
type LocalRegion struct {
	ID          uint64
	Name        string
	MetroRegion *MetroRegion
}

// PlaceType classifies places (cafe, restaurant, ...). Reference data,
// globally name-unique.
type PlaceType struct {
	ID   uint64
	Name string
}
