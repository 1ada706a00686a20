package repository

import (
	"doctorbot/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialityRepository interface {
	Create(db *gorm.DB, speciality *entity.Speciality) error
	FindByID(db *gorm.DB, id uint) (*entity.Speciality, error)
	// FindAll returns specialities ordered by name, the order menus use.
	FindAll(db *gorm.DB) ([]entity.Speciality, error)
	// SearchByName matches a case-insensitive substring.
	SearchByName(db *gorm.DB, query string) ([]entity.Speciality, error)
	Update(db *gorm.DB, speciality *entity.Speciality) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
