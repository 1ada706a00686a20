package repository

import (
	"errors"

	"doctorbot/internal/domain/entity"
	domainRepo "doctorbot/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) Create(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Create(schedule).Error
}

func (r *scheduleRepository) FindByID(db *gorm.DB, id uint) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.Preload("Polyclinic").Preload("Address").First(&schedule, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindAll(db *gorm.DB, polyclinicID uint) ([]entity.Schedule, error) {
	q := db.Preload("Polyclinic").Preload("Address")
	if polyclinicID != 0 {
		q = q.Where("polyclinic_id = ?", polyclinicID)
	}

	var schedules []entity.Schedule
	err := q.Order("day_of_week, start_time").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Save(schedule).Error
}

func (r *scheduleRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Schedule{}, id)
	return result.RowsAffected, result.Error
}
