package repository

import (
	"errors"

	"doctorbot/internal/domain/entity"
	domainRepo "doctorbot/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

// Create is idempotent: a duplicate platform id is ignored, not an error.
func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error
}

func (r *userRepository) CreateBatch(db *gorm.DB, users []entity.User) error {
	if len(users) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&users).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id int64) (*entity.User, error) {
	var user entity.User
	err := db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SetDeleted(db *gorm.DB, ids []int64, deleted bool) error {
	if len(ids) == 0 {
		return nil
	}
	return db.Model(&entity.User{}).Where("id IN ?", ids).Update("deleted", deleted).Error
}
