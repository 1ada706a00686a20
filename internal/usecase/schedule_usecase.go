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
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidDayOfWeek = errors.New("day of week must be between 1 and 7")
)

type ScheduleUsecase interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ScheduleResponse, error)
	GetAll(ctx context.Context, polyclinicID uint) (*dto.ScheduleListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id uint) error
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
}

func NewScheduleUsecase(db *gorm.DB, log *logrus.Logger, scheduleRepo repository.ScheduleRepository) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
	}
}

func (u *scheduleUsecase) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	day := entity.DayOfWeek(req.DayOfWeek)
	if !day.IsValid() {
		return nil, ErrInvalidDayOfWeek
	}

	schedule := entity.Schedule{
		DayOfWeek:    day,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		PolyclinicID: req.PolyclinicID,
		AddressID:    req.AddressID,
	}
	if err := u.scheduleRepo.Create(u.db.WithContext(ctx), &schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %v", err)
		return nil, err
	}
	return u.GetByID(ctx, schedule.ID)
}

func (u *scheduleUsecase) GetByID(ctx context.Context, id uint) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %v", id, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) GetAll(ctx context.Context, polyclinicID uint) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindAll(u.db.WithContext(ctx), polyclinicID)
	if err != nil {
		u.log.Warnf("Failed to list schedules: %v", err)
		return nil, err
	}
	return converter.SchedulesToListResponse(schedules), nil
}

func (u *scheduleUsecase) Update(ctx context.Context, id uint, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	db := u.db.WithContext(ctx)

	schedule, err := u.scheduleRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %v", id, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	if req.DayOfWeek != 0 {
		day := entity.DayOfWeek(req.DayOfWeek)
		if !day.IsValid() {
			return nil, ErrInvalidDayOfWeek
		}
		schedule.DayOfWeek = day
	}
	if req.StartTime != "" {
		schedule.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		schedule.EndTime = req.EndTime
	}
	if req.PolyclinicID != 0 {
		schedule.PolyclinicID = req.PolyclinicID
	}
	if req.AddressID != nil {
		schedule.AddressID = req.AddressID
	}

	if err := u.scheduleRepo.Update(db, schedule); err != nil {
		u.log.Warnf("Failed to update schedule %d: %v", id, err)
		return nil, err
	}
	return u.GetByID(ctx, id)
}

func (u *scheduleUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.scheduleRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete schedule %d: %v", id, err)
		return err
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}
