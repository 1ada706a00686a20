package repository

import (
	"doctorbot/internal/domain/entity"

	"gorm.io/gorm"
)

type PolyclinicRepository interface {
	Create(db *gorm.DB, polyclinic *entity.Polyclinic) error
	FindByID(db *gorm.DB, id uint) (*entity.Polyclinic, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]entity.Polyclinic, error)
	FindAll(db *gorm.DB, filter entity.PolyclinicFilter) ([]entity.Polyclinic, error)
	// FindBySpecialityAndDistrict returns polyclinics located in the district
	// that list the speciality among their services.
	FindBySpecialityAndDistrict(db *gorm.DB, specialityID, districtID uint) ([]entity.Polyclinic, error)
	Update(db *gorm.DB, polyclinic *entity.Polyclinic) error
	Delete(db *gorm.DB, id uint) (int64, error)
	ClearRating(db *gorm.DB, rating entity.Rating, exceptID uint) error
	ReplaceAssociations(db *gorm.DB, polyclinic *entity.Polyclinic, addresses []entity.Address, phones []entity.Phone, specialities []entity.Speciality) error
	AppendAssociations(db *gorm.DB, polyclinic *entity.Polyclinic, addresses []entity.Address, phones []entity.Phone, specialities []entity.Speciality) error
}
