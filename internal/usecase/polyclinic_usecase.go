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

var ErrPolyclinicNotFound = errors.New("polyclinic not found")

type PolyclinicUsecase interface {
	Create(ctx context.Context, req *dto.CreatePolyclinicRequest) (*dto.PolyclinicResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PolyclinicResponse, error)
	GetAll(ctx context.Context, filter entity.PolyclinicFilter) (*dto.PolyclinicListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePolyclinicRequest) (*dto.PolyclinicResponse, error)
	Delete(ctx context.Context, id uint) error
	Duplicate(ctx context.Context, id uint) (*dto.PolyclinicResponse, error)
}

type polyclinicUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	polyclinicRepo repository.PolyclinicRepository
}

func NewPolyclinicUsecase(db *gorm.DB, log *logrus.Logger, polyclinicRepo repository.PolyclinicRepository) PolyclinicUsecase {
	return &polyclinicUsecase{
		db:             db,
		log:            log,
		polyclinicRepo: polyclinicRepo,
	}
}

func (u *polyclinicUsecase) Create(ctx context.Context, req *dto.CreatePolyclinicRequest) (*dto.PolyclinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	polyclinic := entity.Polyclinic{
		Name:       req.Name,
		Image:      req.Image,
		SiteURL:    req.SiteURL,
		DistrictID: req.DistrictID,
		WorkStart:  req.WorkStart,
		WorkEnd:    req.WorkEnd,
		Rating:     entity.Rating(req.Rating),
	}

	if err := u.polyclinicRepo.Create(tx, &polyclinic); err != nil {
		u.log.Warnf("Failed to create polyclinic: %v", err)
		return nil, err
	}

	if polyclinic.Rating.IsSet() {
		if err := u.polyclinicRepo.ClearRating(tx, polyclinic.Rating, polyclinic.ID); err != nil {
			u.log.Warnf("Failed to clear sibling rating: %v", err)
			return nil, err
		}
	}

	if err := u.polyclinicRepo.AppendAssociations(tx, &polyclinic,
		addressRefs(req.AddressIDs), phoneRefs(req.PhoneIDs), specialityRefs(req.SpecialityIDs)); err != nil {
		u.log.Warnf("Failed to attach polyclinic associations: %v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit polyclinic create: %v", err)
		return nil, err
	}

	return u.GetByID(ctx, polyclinic.ID)
}

func (u *polyclinicUsecase) GetByID(ctx context.Context, id uint) (*dto.PolyclinicResponse, error) {
	polyclinic, err := u.polyclinicRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find polyclinic %d: %v", id, err)
		return nil, err
	}
	if polyclinic == nil {
		return nil, ErrPolyclinicNotFound
	}
	return converter.PolyclinicToResponse(polyclinic), nil
}

func (u *polyclinicUsecase) GetAll(ctx context.Context, filter entity.PolyclinicFilter) (*dto.PolyclinicListResponse, error) {
	polyclinics, err := u.polyclinicRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list polyclinics: %v", err)
		return nil, err
	}
	return converter.PolyclinicsToListResponse(polyclinics), nil
}

func (u *polyclinicUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePolyclinicRequest) (*dto.PolyclinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	polyclinic, err := u.polyclinicRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find polyclinic %d: %v", id, err)
		return nil, err
	}
	if polyclinic == nil {
		return nil, ErrPolyclinicNotFound
	}

	applyPolyclinicUpdate(polyclinic, req)

	if polyclinic.Rating.IsSet() {
		if err := u.polyclinicRepo.ClearRating(tx, polyclinic.Rating, polyclinic.ID); err != nil {
			u.log.Warnf("Failed to clear sibling rating: %v", err)
			return nil, err
		}
	}

	if err := u.polyclinicRepo.Update(tx, polyclinic); err != nil {
		u.log.Warnf("Failed to update polyclinic %d: %v", id, err)
		return nil, err
	}

	if req.AddressIDs != nil || req.PhoneIDs != nil || req.SpecialityIDs != nil {
		addresses := polyclinic.Addresses
		if req.AddressIDs != nil {
			addresses = addressRefs(req.AddressIDs)
		}
		phones := polyclinic.Phones
		if req.PhoneIDs != nil {
			phones = phoneRefs(req.PhoneIDs)
		}
		specialities := polyclinic.Specialities
		if req.SpecialityIDs != nil {
			specialities = specialityRefs(req.SpecialityIDs)
		}
		if err := u.polyclinicRepo.ReplaceAssociations(tx, polyclinic, addresses, phones, specialities); err != nil {
			u.log.Warnf("Failed to replace polyclinic associations: %v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit polyclinic update: %v", err)
		return nil, err
	}

	return u.GetByID(ctx, id)
}

func (u *polyclinicUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.polyclinicRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete polyclinic %d: %v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPolyclinicNotFound
	}
	return nil
}

func (u *polyclinicUsecase) Duplicate(ctx context.Context, id uint) (*dto.PolyclinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	source, err := u.polyclinicRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find polyclinic %d: %v", id, err)
		return nil, err
	}
	if source == nil {
		return nil, ErrPolyclinicNotFound
	}

	clone := entity.Polyclinic{
		Name:       source.Name,
		Image:      source.Image,
		SiteURL:    source.SiteURL,
		DistrictID: source.DistrictID,
		WorkStart:  source.WorkStart,
		WorkEnd:    source.WorkEnd,
		Rating:     source.Rating,
	}

	if err := u.polyclinicRepo.Create(tx, &clone); err != nil {
		u.log.Warnf("Failed to create polyclinic clone: %v", err)
		return nil, err
	}

	if clone.Rating.IsSet() {
		if err := u.polyclinicRepo.ClearRating(tx, clone.Rating, clone.ID); err != nil {
			u.log.Warnf("Failed to clear sibling rating: %v", err)
			return nil, err
		}
	}

	if err := u.polyclinicRepo.AppendAssociations(tx, &clone, source.Addresses, source.Phones, source.Specialities); err != nil {
		u.log.Warnf("Failed to copy polyclinic associations: %v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit polyclinic duplicate: %v", err)
		return nil, err
	}

	return u.GetByID(ctx, clone.ID)
}

func applyPolyclinicUpdate(polyclinic *entity.Polyclinic, req *dto.UpdatePolyclinicRequest) {
	if req.Name != "" {
		polyclinic.Name = req.Name
	}
	if req.Image != "" {
		polyclinic.Image = req.Image
	}
	if req.SiteURL != "" {
		polyclinic.SiteURL = req.SiteURL
	}
	if req.DistrictID != nil {
		polyclinic.DistrictID = req.DistrictID
	}
	if req.WorkStart != "" {
		polyclinic.WorkStart = req.WorkStart
	}
	if req.WorkEnd != "" {
		polyclinic.WorkEnd = req.WorkEnd
	}
	if req.Rating != nil {
		polyclinic.Rating = entity.Rating(*req.Rating)
	}
}

func addressRefs(ids []uint) []entity.Address {
	refs := make([]entity.Address, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, entity.Address{ID: id})
	}
	return refs
}

func phoneRefs(ids []uint) []entity.Phone {
	refs := make([]entity.Phone, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, entity.Phone{ID: id})
	}
	return refs
}

func specialityRefs(ids []uint) []entity.Speciality {
	refs := make([]entity.Speciality, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, entity.Speciality{ID: id})
	}
	return refs
}
