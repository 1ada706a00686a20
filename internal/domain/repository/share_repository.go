package repository

import (
	"time"

	"doctorbot/internal/domain/entity"

	"gorm.io/gorm"
)

type ShareRepository interface {
	Create(db *gorm.DB, share *entity.Share) error
	FindByID(db *gorm.DB, id uint) (*entity.Share, error)
	FindAll(db *gorm.DB, polyclinicID uint) ([]entity.Share, error)
	// FindActive returns unexpired shares ordered by descending rating.
	FindActive(db *gorm.DB, now time.Time) ([]entity.Share, error)
	Update(db *gorm.DB, share *entity.Share) error
	Delete(db *gorm.DB, id uint) (int64, error)
	ClearRating(db *gorm.DB, rating entity.Rating, exceptID uint) error
}
