package repository

import (
	"errors"
	"time"

	"doctorbot/internal/domain/entity"
	domainRepo "doctorbot/internal/domain/repository"

	"gorm.io/gorm"
)

type shareRepository struct{}

func NewShareRepository() domainRepo.ShareRepository {
	return &shareRepository{}
}

func (r *shareRepository) Create(db *gorm.DB, share *entity.Share) error {
	return db.Create(share).Error
}

func (r *shareRepository) FindByID(db *gorm.DB, id uint) (*entity.Share, error) {
	var share entity.Share
	err := db.Preload("Polyclinic").First(&share, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &share, nil
}

func (r *shareRepository) FindAll(db *gorm.DB, polyclinicID uint) ([]entity.Share, error) {
	q := db.Preload("Polyclinic")
	if polyclinicID != 0 {
		q = q.Where("polyclinic_id = ?", polyclinicID)
	}

	var shares []entity.Share
	err := q.Order("end_date DESC").Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

func (r *shareRepository) FindActive(db *gorm.DB, now time.Time) ([]entity.Share, error) {
	var shares []entity.Share
	err := db.Preload("Polyclinic").
		Where("end_date >= ?", now.Truncate(24*time.Hour)).
		Order("rating DESC NULLS LAST").
		Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

func (r *shareRepository) Update(db *gorm.DB, share *entity.Share) error {
	return db.Save(share).Error
}

func (r *shareRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Share{}, id)
	return result.RowsAffected, result.Error
}

func (r *shareRepository) ClearRating(db *gorm.DB, rating entity.Rating, exceptID uint) error {
	return db.Model(&entity.Share{}).
		Where("rating = ? AND id <> ?", rating, exceptID).
		Update("rating", nil).Error
}
