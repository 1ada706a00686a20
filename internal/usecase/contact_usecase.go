package usecase

import (
	"context"
	"errors"

	"doctorbot/internal/converter"
	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"
	"doctorbot/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPhoneNotFound   = errors.New("phone not found")
	ErrAddressNotFound = errors.New("address not found")
)

// ContactUsecase manages the shared phone and address pools polyclinics
// and schedules reference.
type ContactUsecase interface {
	CreatePhone(ctx context.Context, req *dto.CreatePhoneRequest) (*dto.ContactResponse, error)
	GetPhones(ctx context.Context) (*dto.ContactListResponse, error)
	DeletePhone(ctx context.Context, id uint) error

	CreateAddress(ctx context.Context, req *dto.CreateAddressRequest) (*dto.ContactResponse, error)
	GetAddresses(ctx context.Context) (*dto.ContactListResponse, error)
	DeleteAddress(ctx context.Context, id uint) error
}

type contactUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	phoneRepo   repository.PhoneRepository
	addressRepo repository.AddressRepository
}

func NewContactUsecase(db *gorm.DB, log *logrus.Logger, phoneRepo repository.PhoneRepository, addressRepo repository.AddressRepository) ContactUsecase {
	return &contactUsecase{
		db:          db,
		log:         log,
		phoneRepo:   phoneRepo,
		addressRepo: addressRepo,
	}
}

func (u *contactUsecase) CreatePhone(ctx context.Context, req *dto.CreatePhoneRequest) (*dto.ContactResponse, error) {
	phone := entity.Phone{Number: req.Number}
	if err := u.phoneRepo.Create(u.db.WithContext(ctx), &phone); err != nil {
		u.log.Warnf("Failed to create phone: %v", err)
		return nil, err
	}
	return converter.PhoneToResponse(&phone), nil
}

func (u *contactUsecase) GetPhones(ctx context.Context) (*dto.ContactListResponse, error) {
	phones, err := u.phoneRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list phones: %v", err)
		return nil, err
	}
	return converter.PhonesToListResponse(phones), nil
}

func (u *contactUsecase) DeletePhone(ctx context.Context, id uint) error {
	affected, err := u.phoneRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete phone %d: %v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPhoneNotFound
	}
	return nil
}

func (u *contactUsecase) CreateAddress(ctx context.Context, req *dto.CreateAddressRequest) (*dto.ContactResponse, error) {
	address := entity.Address{Value: req.Value}
	if err := u.addressRepo.Create(u.db.WithContext(ctx), &address); err != nil {
		u.log.Warnf("Failed to create address: %v", err)
		return nil, err
	}
	return converter.AddressToResponse(&address), nil
}

func (u *contactUsecase) GetAddresses(ctx context.Context) (*dto.ContactListResponse, error) {
	addresses, err := u.addressRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list addresses: %v", err)
		return nil, err
	}
	return converter.AddressesToListResponse(addresses), nil
}

func (u *contactUsecase) DeleteAddress(ctx context.Context, id uint) error {
	affected, err := u.addressRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete address %d: %v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAddressNotFound
	}
	return nil
}
