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
	ErrSpecialityNotFound = errors.New("speciality not found")
	ErrDistrictNotFound   = errors.New("district not found")
	ErrPositionNotFound   = errors.New("position not found")
)

// LookupUsecase covers the small reference catalogs: specialities,
// districts and positions.
type LookupUsecase interface {
	CreateSpeciality(ctx context.Context, req *dto.CreateLookupRequest) (*dto.LookupResponse, error)
	GetSpecialities(ctx context.Context, query string) (*dto.LookupListResponse, error)
	UpdateSpeciality(ctx context.Context, id uint, req *dto.UpdateLookupRequest) (*dto.LookupResponse, error)
	DeleteSpeciality(ctx context.Context, id uint) error

	CreateDistrict(ctx context.Context, req *dto.CreateLookupRequest) (*dto.LookupResponse, error)
	GetDistricts(ctx context.Context) (*dto.LookupListResponse, error)
	UpdateDistrict(ctx context.Context, id uint, req *dto.UpdateLookupRequest) (*dto.LookupResponse, error)
	DeleteDistrict(ctx context.Context, id uint) error

	CreatePosition(ctx context.Context, req *dto.CreateLookupRequest) (*dto.LookupResponse, error)
	GetPositions(ctx context.Context) (*dto.LookupListResponse, error)
	UpdatePosition(ctx context.Context, id uint, req *dto.UpdateLookupRequest) (*dto.LookupResponse, error)
	DeletePosition(ctx context.Context, id uint) error
}

type lookupUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	specialityRepo repository.SpecialityRepository
	districtRepo   repository.DistrictRepository
	positionRepo   repository.PositionRepository
}

func NewLookupUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialityRepo repository.SpecialityRepository,
	districtRepo repository.DistrictRepository,
	positionRepo repository.PositionRepository,
) LookupUsecase {
	return &lookupUsecase{
		db:             db,
		log:            log,
		specialityRepo: specialityRepo,
		districtRepo:   districtRepo,
		positionRepo:   positionRepo,
	}
}

func (u *lookupUsecase) CreateSpeciality(ctx context.Context, req *dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	speciality := entity.Speciality{Name: req.Name}
	if err := u.specialityRepo.Create(u.db.WithContext(ctx), &speciality); err != nil {
		u.log.Warnf("Failed to create speciality: %v", err)
		return nil, err
	}
	return converter.SpecialityToResponse(&speciality), nil
}

func (u *lookupUsecase) GetSpecialities(ctx context.Context, query string) (*dto.LookupListResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		items []entity.Speciality
		err   error
	)
	if query != "" {
		items, err = u.specialityRepo.SearchByName(db, query)
	} else {
		items, err = u.specialityRepo.FindAll(db)
	}
	if err != nil {
		u.log.Warnf("Failed to list specialities: %v", err)
		return nil, err
	}
	return converter.SpecialitiesToListResponse(items), nil
}

func (u *lookupUsecase) UpdateSpeciality(ctx context.Context, id uint, req *dto.UpdateLookupRequest) (*dto.LookupResponse, error) {
	db := u.db.WithContext(ctx)

	speciality, err := u.specialityRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find speciality %d: %v", id, err)
		return nil, err
	}
	if speciality == nil {
		return nil, ErrSpecialityNotFound
	}

	speciality.Name = req.Name
	if err := u.specialityRepo.Update(db, speciality); err != nil {
		u.log.Warnf("Failed to update speciality %d: %v", id, err)
		return nil, err
	}
	return converter.SpecialityToResponse(speciality), nil
}

func (u *lookupUsecase) DeleteSpeciality(ctx context.Context, id uint) error {
	affected, err := u.specialityRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete speciality %d: %v", id, err)
		return err
	}
	if affected == 0 {
		return ErrSpecialityNotFound
	}
	return nil
}

func (u *lookupUsecase) CreateDistrict(ctx context.Context, req *dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	district := entity.District{Name: req.Name}
	if err := u.districtRepo.Create(u.db.WithContext(ctx), &district); err != nil {
		u.log.Warnf("Failed to create district: %v", err)
		return nil, err
	}
	return converter.DistrictToResponse(&district), nil
}

func (u *lookupUsecase) GetDistricts(ctx context.Context) (*dto.LookupListResponse, error) {
	items, err := u.districtRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list districts: %v", err)
		return nil, err
	}
	return converter.DistrictsToListResponse(items), nil
}

func (u *lookupUsecase) UpdateDistrict(ctx context.Context, id uint, req *dto.UpdateLookupRequest) (*dto.LookupResponse, error) {
	db := u.db.WithContext(ctx)

	district, err := u.districtRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find district %d: %v", id, err)
		return nil, err
	}
	if district == nil {
		return nil, ErrDistrictNotFound
	}

	district.Name = req.Name
	if err := u.districtRepo.Update(db, district); err != nil {
		u.log.Warnf("Failed to update district %d: %v", id, err)
		return nil, err
	}
	return converter.DistrictToResponse(district), nil
}

func (u *lookupUsecase) DeleteDistrict(ctx context.Context, id uint) error {
	affected, err := u.districtRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete district %d: %v", id, err)
		return err
	}
	if affected == 0 {
		return ErrDistrictNotFound
	}
	return nil
}

func (u *lookupUsecase) CreatePosition(ctx context.Context, req *dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	position := entity.Position{Name: req.Name}
	if err := u.positionRepo.Create(u.db.WithContext(ctx), &position); err != nil {
		u.log.Warnf("Failed to create position: %v", err)
		return nil, err
	}
	return converter.PositionToResponse(&position), nil
}

func (u *lookupUsecase) GetPositions(ctx context.Context) (*dto.LookupListResponse, error) {
	items, err := u.positionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list positions: %v", err)
		return nil, err
	}
	return converter.PositionsToListResponse(items), nil
}

func (u *lookupUsecase) UpdatePosition(ctx context.Context, id uint, req *dto.UpdateLookupRequest) (*dto.LookupResponse, error) {
	db := u.db.WithContext(ctx)

	position, err := u.positionRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find position %d: %v", id, err)
		return nil, err
	}
	if position == nil {
		return nil, ErrPositionNotFound
	}

	position.Name = req.Name
	if err := u.positionRepo.Update(db, position); err != nil {
		u.log.Warnf("Failed to update position %d: %v", id, err)
		return nil, err
	}
	return converter.PositionToResponse(position), nil
}

func (u *lookupUsecase) DeletePosition(ctx context.Context, id uint) error {
	affected, err := u.positionRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete position %d: %v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPositionNotFound
	}
	return nil
}
