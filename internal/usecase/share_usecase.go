package usecase

import (
	"context"
	"errors"
	"time"

	"doctorbot/internal/converter"
	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"
	"doctorbot/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrShareNotFound     = errors.New("share not found")
	ErrShareDatesSwapped = errors.New("share end date precedes start date")
)

type ShareUsecase interface {
	Create(ctx context.Context, req *dto.CreateShareRequest) (*dto.ShareResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ShareResponse, error)
	GetAll(ctx context.Context, polyclinicID uint) (*dto.ShareListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateShareRequest) (*dto.ShareResponse, error)
	Delete(ctx context.Context, id uint) error
}

type shareUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	shareRepo repository.ShareRepository
}

func NewShareUsecase(db *gorm.DB, log *logrus.Logger, shareRepo repository.ShareRepository) ShareUsecase {
	return &shareUsecase{
		db:        db,
		log:       log,
		shareRepo: shareRepo,
	}
}

func (u *shareUsecase) Create(ctx context.Context, req *dto.CreateShareRequest) (*dto.ShareResponse, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrShareDatesSwapped
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	share := entity.Share{
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Sum:          req.Sum,
		Rating:       entity.Rating(req.Rating),
		PolyclinicID: req.PolyclinicID,
	}

	if err := u.shareRepo.Create(tx, &share); err != nil {
		u.log.Warnf("Failed to create share: %v", err)
		return nil, err
	}

	if share.Rating.IsSet() {
		if err := u.shareRepo.ClearRating(tx, share.Rating, share.ID); err != nil {
			u.log.Warnf("Failed to clear sibling rating: %v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit share create: %v", err)
		return nil, err
	}

	return u.GetByID(ctx, share.ID)
}

func (u *shareUsecase) GetByID(ctx context.Context, id uint) (*dto.ShareResponse, error) {
	share, err := u.shareRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find share %d: %v", id, err)
		return nil, err
	}
	if share == nil {
		return nil, ErrShareNotFound
	}
	return converter.ShareToResponse(share, time.Now()), nil
}

func (u *shareUsecase) GetAll(ctx context.Context, polyclinicID uint) (*dto.ShareListResponse, error) {
	shares, err := u.shareRepo.FindAll(u.db.WithContext(ctx), polyclinicID)
	if err != nil {
		u.log.Warnf("Failed to list shares: %v", err)
		return nil, err
	}
	return converter.SharesToListResponse(shares, time.Now()), nil
}

func (u *shareUsecase) Update(ctx context.Context, id uint, req *dto.UpdateShareRequest) (*dto.ShareResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	share, err := u.shareRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find share %d: %v", id, err)
		return nil, err
	}
	if share == nil {
		return nil, ErrShareNotFound
	}

	if req.Description != "" {
		share.Description = req.Description
	}
	if req.StartDate != nil {
		share.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		share.EndDate = *req.EndDate
	}
	if req.Sum != nil {
		share.Sum = *req.Sum
	}
	if req.Rating != nil {
		share.Rating = entity.Rating(*req.Rating)
	}
	if req.PolyclinicID != 0 {
		share.PolyclinicID = req.PolyclinicID
	}

	if share.EndDate.Before(share.StartDate) {
		return nil, ErrShareDatesSwapped
	}

	if share.Rating.IsSet() {
		if err := u.shareRepo.ClearRating(tx, share.Rating, share.ID); err != nil {
			u.log.Warnf("Failed to clear sibling rating: %v", err)
			return nil, err
		}
	}

	if err := u.shareRepo.Update(tx, share); err != nil {
		u.log.Warnf("Failed to update share %d: %v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit share update: %v", err)
		return nil, err
	}

	return u.GetByID(ctx, id)
}

func (u *shareUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.shareRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete share %d: %v", id, err)
		return err
	}
	if affected == 0 {
		return ErrShareNotFound
	}
	return nil
}
