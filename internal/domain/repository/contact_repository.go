package repository

import (
	"doctorbot/internal/domain/entity"

	"gorm.io/gorm"
)

type PhoneRepository interface {
	Create(db *gorm.DB, phone *entity.Phone) error
	FindByID(db *gorm.DB, id uint) (*entity.Phone, error)
	FindAll(db *gorm.DB) ([]entity.Phone, error)
	Update(db *gorm.DB, phone *entity.Phone) error
	Delete(db *gorm.DB, id uint) (int64, error)
}

type AddressRepository interface {
	Create(db *gorm.DB, address *entity.Address) error
	FindByID(db *gorm.DB, id uint) (*entity.Address, error)
	FindAll(db *gorm.DB) ([]entity.Address, error)
	Update(db *gorm.DB, address *entity.Address) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
