package repository

import (
	"doctorbot/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.Schedule) error
	FindByID(db *gorm.DB, id uint) (*entity.Schedule, error)
	FindAll(db *gorm.DB, polyclinicID uint) ([]entity.Schedule, error)
	Update(db *gorm.DB, schedule *entity.Schedule) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
