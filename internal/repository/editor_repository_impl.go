package repository

import (
	"errors"

	"doctorbot/internal/domain/entity"
	domainRepo "doctorbot/internal/domain/repository"

	"gorm.io/gorm"
)

type editorRepository struct{}

func NewEditorRepository() domainRepo.EditorRepository {
	return &editorRepository{}
}

func (r *editorRepository) Create(db *gorm.DB, editor *entity.Editor) error {
	return db.Create(editor).Error
}

func (r *editorRepository) FindByID(db *gorm.DB, id uint) (*entity.Editor, error) {
	var editor entity.Editor
	err := db.First(&editor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &editor, nil
}

func (r *editorRepository) FindByEmail(db *gorm.DB, email string) (*entity.Editor, error) {
	var editor entity.Editor
	err := db.Where("email = ?", email).First(&editor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &editor, nil
}
