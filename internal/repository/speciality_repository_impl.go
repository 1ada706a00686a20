package repository

import (
	"errors"

	"doctorbot/internal/domain/entity"
	domainRepo "doctorbot/internal/domain/repository"

	"gorm.io/gorm"
)

type specialityRepository struct{}

func NewSpecialityRepository() domainRepo.SpecialityRepository {
	return &specialityRepository{}
}

func (r *specialityRepository) Create(db *gorm.DB, speciality *entity.Speciality) error {
	return db.Create(speciality).Error
}

func (r *specialityRepository) FindByID(db *gorm.DB, id uint) (*entity.Speciality, error) {
	var speciality entity.Speciality
	err := db.First(&speciality, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &speciality, nil
}

func (r *specialityRepository) FindAll(db *gorm.DB) ([]entity.Speciality, error) {
	var specialities []entity.Speciality
	err := db.Order("name").Find(&specialities).Error
	if err != nil {
		return nil, err
	}
	return specialities, nil
}

func (r *specialityRepository) SearchByName(db *gorm.DB, query string) ([]entity.Speciality, error) {
	var specialities []entity.Speciality
	err := db.Where("name ILIKE ?", "%"+query+"%").Order("name").Find(&specialities).Error
	if err != nil {
		return nil, err
	}
	return specialities, nil
}

func (r *specialityRepository) Update(db *gorm.DB, speciality *entity.Speciality) error {
	return db.Save(speciality).Error
}

func (r *specialityRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Speciality{}, id)
	return result.RowsAffected, result.Error
}
