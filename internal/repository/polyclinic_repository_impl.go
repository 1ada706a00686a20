package repository

import (
	"errors"

	"doctorbot/internal/domain/entity"
	domainRepo "doctorbot/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type polyclinicRepository struct{}

func NewPolyclinicRepository() domainRepo.PolyclinicRepository {
	return &polyclinicRepository{}
}

func (r *polyclinicRepository) Create(db *gorm.DB, polyclinic *entity.Polyclinic) error {
	return db.Create(polyclinic).Error
}

func (r *polyclinicRepository) FindByID(db *gorm.DB, id uint) (*entity.Polyclinic, error) {
	var polyclinic entity.Polyclinic
	err := clinicPreloads(db).First(&polyclinic, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &polyclinic, nil
}

func (r *polyclinicRepository) FindByIDs(db *gorm.DB, ids []uint) ([]entity.Polyclinic, error) {
	var polyclinics []entity.Polyclinic
	err := clinicPreloads(db).Where("id IN ?", ids).Find(&polyclinics).Error
	if err != nil {
		return nil, err
	}
	return polyclinics, nil
}

func (r *polyclinicRepository) FindAll(db *gorm.DB, filter entity.PolyclinicFilter) ([]entity.Polyclinic, error) {
	q := db.Model(&entity.Polyclinic{}).Preload("District")

	if filter.Search != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.DistrictID != 0 {
		q = q.Where("district_id = ?", filter.DistrictID)
	}
	if filter.SpecialityID != 0 {
		q = q.Joins("JOIN polyclinic_specialities ps ON ps.polyclinic_id = polyclinics.id AND ps.speciality_id = ?", filter.SpecialityID)
	}

	var polyclinics []entity.Polyclinic
	err := q.Distinct("polyclinics.*").Order("name").Find(&polyclinics).Error
	if err != nil {
		return nil, err
	}
	return polyclinics, nil
}

func (r *polyclinicRepository) FindBySpecialityAndDistrict(db *gorm.DB, specialityID, districtID uint) ([]entity.Polyclinic, error) {
	var polyclinics []entity.Polyclinic
	err := db.
		Joins("JOIN polyclinic_specialities ps ON ps.polyclinic_id = polyclinics.id").
		Where("ps.speciality_id = ? AND polyclinics.district_id = ?", specialityID, districtID).
		Distinct("polyclinics.*").
		Find(&polyclinics).Error
	if err != nil {
		return nil, err
	}
	return polyclinics, nil
}

func (r *polyclinicRepository) Update(db *gorm.DB, polyclinic *entity.Polyclinic) error {
	return db.Omit(clause.Associations).Save(polyclinic).Error
}

func (r *polyclinicRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Select(clause.Associations).Delete(&entity.Polyclinic{ID: id})
	return result.RowsAffected, result.Error
}

func (r *polyclinicRepository) ClearRating(db *gorm.DB, rating entity.Rating, exceptID uint) error {
	return db.Model(&entity.Polyclinic{}).
		Where("rating = ? AND id <> ?", rating, exceptID).
		Update("rating", nil).Error
}

func (r *polyclinicRepository) ReplaceAssociations(db *gorm.DB, polyclinic *entity.Polyclinic, addresses []entity.Address, phones []entity.Phone, specialities []entity.Speciality) error {
	if err := db.Model(polyclinic).Association("Addresses").Replace(addresses); err != nil {
		return err
	}
	if err := db.Model(polyclinic).Association("Phones").Replace(phones); err != nil {
		return err
	}
	return db.Model(polyclinic).Association("Specialities").Replace(specialities)
}

func (r *polyclinicRepository) AppendAssociations(db *gorm.DB, polyclinic *entity.Polyclinic, addresses []entity.Address, phones []entity.Phone, specialities []entity.Speciality) error {
	if len(addresses) > 0 {
		if err := db.Model(polyclinic).Association("Addresses").Append(addresses); err != nil {
			return err
		}
	}
	if len(phones) > 0 {
		if err := db.Model(polyclinic).Association("Phones").Append(phones); err != nil {
			return err
		}
	}
	if len(specialities) > 0 {
		if err := db.Model(polyclinic).Association("Specialities").Append(specialities); err != nil {
			return err
		}
	}
	return nil
}

// clinicPreloads loads everything a polyclinic card traverses
func clinicPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("District").
		Preload("Addresses").
		Preload("Phones").
		Preload("Specialities").
		Preload("Shares")
}
