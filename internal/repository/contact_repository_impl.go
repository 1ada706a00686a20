package repository

import (
	"errors"

	"doctorbot/internal/domain/entity"
	domainRepo "doctorbot/internal/domain/repository"

	"gorm.io/gorm"
)

type phoneRepository struct{}

func NewPhoneRepository() domainRepo.PhoneRepository {
	return &phoneRepository{}
}

func (r *phoneRepository) Create(db *gorm.DB, phone *entity.Phone) error {
	return db.Create(phone).Error
}

func (r *phoneRepository) FindByID(db *gorm.DB, id uint) (*entity.Phone, error) {
	var phone entity.Phone
	err := db.First(&phone, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &phone, nil
}

func (r *phoneRepository) FindAll(db *gorm.DB) ([]entity.Phone, error) {
	var phones []entity.Phone
	err := db.Order("number").Find(&phones).Error
	if err != nil {
		return nil, err
	}
	return phones, nil
}

func (r *phoneRepository) Update(db *gorm.DB, phone *entity.Phone) error {
	return db.Save(phone).Error
}

func (r *phoneRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Phone{}, id)
	return result.RowsAffected, result.Error
}

type addressRepository struct{}

func NewAddressRepository() domainRepo.AddressRepository {
	return &addressRepository{}
}

func (r *addressRepository) Create(db *gorm.DB, address *entity.Address) error {
	return db.Create(address).Error
}

func (r *addressRepository) FindByID(db *gorm.DB, id uint) (*entity.Address, error) {
	var address entity.Address
	err := db.First(&address, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) FindAll(db *gorm.DB) ([]entity.Address, error) {
	var addresses []entity.Address
	err := db.Order("value").Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *addressRepository) Update(db *gorm.DB, address *entity.Address) error {
	return db.Save(address).Error
}

func (r *addressRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Address{}, id)
	return result.RowsAffected, result.Error
}
