package usecase

import (
	"context"
	"errors"

	"doctorbot/internal/converter"
	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"
	"doctorbot/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidCost    = errors.New("cost must be between 0 and 100000")
)

var maxCost = decimal.NewFromInt(100000)

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uint) error
	// Duplicate clones a doctor with its associations. The clone keeps the
	// source rating; any previous holder of that rating loses it.
	Duplicate(ctx context.Context, id uint) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := validateCost(req.Cost); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := entity.Doctor{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PaternalName: req.PaternalName,
		Phone:        req.Phone,
		Image:        req.Image,
		SpecialityID: req.SpecialityID,
		PositionID:   req.PositionID,
		Experience:   req.Experience,
		Cost:         req.Cost,
		Rating:       entity.Rating(req.Rating),
	}

	if err := u.doctorRepo.Create(tx, &doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %v", err)
		return nil, err
	}

	if doctor.Rating.IsSet() {
		if err := u.doctorRepo.ClearRating(tx, doctor.SpecialityID, doctor.Rating, doctor.ID); err != nil {
			u.log.Warnf("Failed to clear sibling rating: %v", err)
			return nil, err
		}
	}

	if err := u.doctorRepo.AppendAssociations(tx, &doctor,
		polyclinicRefs(req.PolyclinicIDs), districtRefs(req.DistrictIDs), scheduleRefs(req.ScheduleIDs)); err != nil {
		u.log.Warnf("Failed to attach doctor associations: %v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit doctor create: %v", err)
		return nil, err
	}

	return u.GetByID(ctx, doctor.ID)
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAll(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %v", err)
		return nil, err
	}
	return converter.DoctorsToListResponse(doctors), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	if req.Cost != nil {
		if err := validateCost(*req.Cost); err != nil {
			return nil, err
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	applyDoctorUpdate(doctor, req)

	if doctor.Rating.IsSet() {
		if err := u.doctorRepo.ClearRating(tx, doctor.SpecialityID, doctor.Rating, doctor.ID); err != nil {
			u.log.Warnf("Failed to clear sibling rating: %v", err)
			return nil, err
		}
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor %d: %v", id, err)
		return nil, err
	}

	if req.PolyclinicIDs != nil || req.DistrictIDs != nil || req.ScheduleIDs != nil {
		polyclinics := doctor.Polyclinics
		if req.PolyclinicIDs != nil {
			polyclinics = polyclinicRefs(req.PolyclinicIDs)
		}
		districts := doctor.Districts
		if req.DistrictIDs != nil {
			districts = districtRefs(req.DistrictIDs)
		}
		schedules := doctor.Schedules
		if req.ScheduleIDs != nil {
			schedules = scheduleRefs(req.ScheduleIDs)
		}
		if err := u.doctorRepo.ReplaceAssociations(tx, doctor, polyclinics, districts, schedules); err != nil {
			u.log.Warnf("Failed to replace doctor associations: %v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit doctor update: %v", err)
		return nil, err
	}

	return u.GetByID(ctx, id)
}

func (u *doctorUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.doctorRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %d: %v", id, err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

func (u *doctorUsecase) Duplicate(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	source, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %v", id, err)
		return nil, err
	}
	if source == nil {
		return nil, ErrDoctorNotFound
	}

	clone := entity.Doctor{
		FirstName:    source.FirstName,
		LastName:     source.LastName,
		PaternalName: source.PaternalName,
		Phone:        source.Phone,
		Image:        source.Image,
		SpecialityID: source.SpecialityID,
		PositionID:   source.PositionID,
		Experience:   source.Experience,
		Cost:         source.Cost,
		Rating:       source.Rating,
	}

	if err := u.doctorRepo.Create(tx, &clone); err != nil {
		u.log.Warnf("Failed to create doctor clone: %v", err)
		return nil, err
	}

	if clone.Rating.IsSet() {
		if err := u.doctorRepo.ClearRating(tx, clone.SpecialityID, clone.Rating, clone.ID); err != nil {
			u.log.Warnf("Failed to clear sibling rating: %v", err)
			return nil, err
		}
	}

	if err := u.doctorRepo.AppendAssociations(tx, &clone, source.Polyclinics, source.Districts, source.Schedules); err != nil {
		u.log.Warnf("Failed to copy doctor associations: %v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit doctor duplicate: %v", err)
		return nil, err
	}

	return u.GetByID(ctx, clone.ID)
}

func applyDoctorUpdate(doctor *entity.Doctor, req *dto.UpdateDoctorRequest) {
	if req.FirstName != "" {
		doctor.FirstName = req.FirstName
	}
	if req.LastName != "" {
		doctor.LastName = req.LastName
	}
	if req.PaternalName != "" {
		doctor.PaternalName = req.PaternalName
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.Image != "" {
		doctor.Image = req.Image
	}
	if req.SpecialityID != 0 {
		doctor.SpecialityID = req.SpecialityID
	}
	if req.PositionID != 0 {
		doctor.PositionID = req.PositionID
	}
	if req.Experience != 0 {
		doctor.Experience = req.Experience
	}
	if req.Cost != nil {
		doctor.Cost = *req.Cost
	}
	if req.Rating != nil {
		doctor.Rating = entity.Rating(*req.Rating)
	}
}

func validateCost(cost decimal.Decimal) error {
	if cost.IsNegative() || cost.GreaterThan(maxCost) {
		return ErrInvalidCost
	}
	return nil
}

// Association stubs carry only primary keys; the rows must already exist.

func polyclinicRefs(ids []uint) []entity.Polyclinic {
	refs := make([]entity.Polyclinic, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, entity.Polyclinic{ID: id})
	}
	return refs
}

func districtRefs(ids []uint) []entity.District {
	refs := make([]entity.District, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, entity.District{ID: id})
	}
	return refs
}

func scheduleRefs(ids []uint) []entity.Schedule {
	refs := make([]entity.Schedule, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, entity.Schedule{ID: id})
	}
	return refs
}
