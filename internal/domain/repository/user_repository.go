package repository

import (
	"doctorbot/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	CreateBatch(db *gorm.DB, users []entity.User) error
	FindByID(db *gorm.DB, id int64) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	// SetDeleted flips the soft-delete flag on the given ids.
	SetDeleted(db *gorm.DB, ids []int64, deleted bool) error
}
