package repository

import (
	"doctorbot/internal/domain/entity"

	"gorm.io/gorm"
)

type DistrictRepository interface {
	Create(db *gorm.DB, district *entity.District) error
	FindByID(db *gorm.DB, id uint) (*entity.District, error)
	FindAll(db *gorm.DB) ([]entity.District, error)
	Update(db *gorm.DB, district *entity.District) error
	Delete(db *gorm.DB, id uint) (int64, error)
}

type PositionRepository interface {
	Create(db *gorm.DB, position *entity.Position) error
	FindByID(db *gorm.DB, id uint) (*entity.Position, error)
	FindAll(db *gorm.DB) ([]entity.Position, error)
	Update(db *gorm.DB, position *entity.Position) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
