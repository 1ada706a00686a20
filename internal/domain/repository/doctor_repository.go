package repository

import (
	"doctorbot/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]entity.Doctor, error)
	FindAll(db *gorm.DB, filter entity.DoctorFilter) ([]entity.Doctor, error)
	FindBySpecialityAndDistrict(db *gorm.DB, specialityID, districtID uint) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id uint) (int64, error)
	// ClearRating unsets the rating on any other doctor of the same
	// speciality currently holding it.
	ClearRating(db *gorm.DB, specialityID uint, rating entity.Rating, exceptID uint) error
	ReplaceAssociations(db *gorm.DB, doctor *entity.Doctor, polyclinics []entity.Polyclinic, districts []entity.District, schedules []entity.Schedule) error
	AppendAssociations(db *gorm.DB, doctor *entity.Doctor, polyclinics []entity.Polyclinic, districts []entity.District, schedules []entity.Schedule) error
}
