package entity

// DoctorFilter narrows admin doctor listings
type DoctorFilter struct {
	Search       string
	SpecialityID uint
	PositionID   uint
	DistrictID   uint
	PolyclinicID uint
}

// PolyclinicFilter narrows admin polyclinic listings
type PolyclinicFilter struct {
	Search       string
	SpecialityID uint
	DistrictID   uint
}
