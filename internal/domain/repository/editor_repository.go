package repository

import (
	"doctorbot/internal/domain/entity"

	"gorm.io/gorm"
)

type EditorRepository interface {
	Create(db *gorm.DB, editor *entity.Editor) error
	FindByID(db *gorm.DB, id uint) (*entity.Editor, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Editor, error)
}
