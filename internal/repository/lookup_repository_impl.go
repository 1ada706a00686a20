package repository

import (
	"errors"

	"doctorbot/internal/domain/entity"
	domainRepo "doctorbot/internal/domain/repository"

	"gorm.io/gorm"
)

type districtRepository struct{}

func NewDistrictRepository() domainRepo.DistrictRepository {
	return &districtRepository{}
}

func (r *districtRepository) Create(db *gorm.DB, district *entity.District) error {
	return db.Create(district).Error
}

func (r *districtRepository) FindByID(db *gorm.DB, id uint) (*entity.District, error) {
	var district entity.District
	err := db.First(&district, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &district, nil
}

func (r *districtRepository) FindAll(db *gorm.DB) ([]entity.District, error) {
	var districts []entity.District
	err := db.Order("name").Find(&districts).Error
	if err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *districtRepository) Update(db *gorm.DB, district *entity.District) error {
	return db.Save(district).Error
}

func (r *districtRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.District{}, id)
	return result.RowsAffected, result.Error
}

type positionRepository struct{}

func NewPositionRepository() domainRepo.PositionRepository {
	return &positionRepository{}
}

func (r *positionRepository) Create(db *gorm.DB, position *entity.Position) error {
	return db.Create(position).Error
}

func (r *positionRepository) FindByID(db *gorm.DB, id uint) (*entity.Position, error) {
	var position entity.Position
	err := db.First(&position, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &position, nil
}

func (r *positionRepository) FindAll(db *gorm.DB) ([]entity.Position, error) {
	var positions []entity.Position
	err := db.Order("name").Find(&positions).Error
	if err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *positionRepository) Update(db *gorm.DB, position *entity.Position) error {
	return db.Save(position).Error
}

func (r *positionRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Position{}, id)
	return result.RowsAffected, result.Error
}
