package repository

import (
	"errors"

	"doctorbot/internal/domain/entity"
	domainRepo "doctorbot/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := cardPreloads(db).First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByIDs(db *gorm.DB, ids []uint) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := cardPreloads(db).Where("id IN ?", ids).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	q := db.Model(&entity.Doctor{}).
		Preload("Speciality").
		Preload("Position")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where(
			"last_name ILIKE ? OR first_name ILIKE ? OR paternal_name ILIKE ? OR phone ILIKE ?",
			like, like, like, like,
		)
	}
	if filter.SpecialityID != 0 {
		q = q.Where("speciality_id = ?", filter.SpecialityID)
	}
	if filter.PositionID != 0 {
		q = q.Where("position_id = ?", filter.PositionID)
	}
	if filter.DistrictID != 0 {
		q = q.Joins("JOIN doctor_districts dd ON dd.doctor_id = doctors.id AND dd.district_id = ?", filter.DistrictID)
	}
	if filter.PolyclinicID != 0 {
		q = q.Joins("JOIN doctor_polyclinics dp ON dp.doctor_id = doctors.id AND dp.polyclinic_id = ?", filter.PolyclinicID)
	}

	var doctors []entity.Doctor
	err := q.Distinct("doctors.*").Order("last_name, first_name").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindBySpecialityAndDistrict(db *gorm.DB, specialityID, districtID uint) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.
		Joins("JOIN doctor_districts dd ON dd.doctor_id = doctors.id").
		Where("doctors.speciality_id = ? AND dd.district_id = ?", specialityID, districtID).
		Distinct("doctors.*").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit(clause.Associations).Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Select(clause.Associations).Delete(&entity.Doctor{ID: id})
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) ClearRating(db *gorm.DB, specialityID uint, rating entity.Rating, exceptID uint) error {
	return db.Model(&entity.Doctor{}).
		Where("speciality_id = ? AND rating = ? AND id <> ?", specialityID, rating, exceptID).
		Update("rating", nil).Error
}

func (r *doctorRepository) ReplaceAssociations(db *gorm.DB, doctor *entity.Doctor, polyclinics []entity.Polyclinic, districts []entity.District, schedules []entity.Schedule) error {
	if err := db.Model(doctor).Association("Polyclinics").Replace(polyclinics); err != nil {
		return err
	}
	if err := db.Model(doctor).Association("Districts").Replace(districts); err != nil {
		return err
	}
	return db.Model(doctor).Association("Schedules").Replace(schedules)
}

func (r *doctorRepository) AppendAssociations(db *gorm.DB, doctor *entity.Doctor, polyclinics []entity.Polyclinic, districts []entity.District, schedules []entity.Schedule) error {
	if len(polyclinics) > 0 {
		if err := db.Model(doctor).Association("Polyclinics").Append(polyclinics); err != nil {
			return err
		}
	}
	if len(districts) > 0 {
		if err := db.Model(doctor).Association("Districts").Append(districts); err != nil {
			return err
		}
	}
	if len(schedules) > 0 {
		if err := db.Model(doctor).Association("Schedules").Append(schedules); err != nil {
			return err
		}
	}
	return nil
}

// cardPreloads loads everything a doctor card traverses
func cardPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Speciality").
		Preload("Position").
		Preload("Polyclinics").
		Preload("Polyclinics.Addresses").
		Preload("Districts").
		Preload("Schedules").
		Preload("Schedules.Polyclinic")
}
