package job

import (
	"context"
	"errors"
	"time"

	"doctorbot/internal/domain/entity"
	"doctorbot/internal/domain/repository"
	"doctorbot/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MemberSource lists the current members of the promoted channel
type MemberSource interface {
	ListMembers(ctx context.Context) ([]tgbotapi.User, error)
}

// WelcomeSender greets a newly seen user
type WelcomeSender interface {
	EnqueueWelcome(chatID int64)
}

// MembershipSync periodically diffs the channel roster against stored
// users: new ids are inserted, returning soft-deleted ids re-enabled,
// absent ids soft-deleted, all in one transaction. A rate-limit failure
// aborts the run; any other failure is retried exactly once.
type MembershipSync struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	source     MemberSource
	welcome    WelcomeSender
	interval   time.Duration
	retryDelay time.Duration
}

func NewMembershipSync(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	source MemberSource,
	welcome WelcomeSender,
	interval, retryDelay time.Duration,
) *MembershipSync {
	return &MembershipSync{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		source:     source,
		welcome:    welcome,
		interval:   interval,
		retryDelay: retryDelay,
	}
}

// Start blocks, running one sync per interval until ctx is cancelled
func (s *MembershipSync) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *MembershipSync) runOnce(ctx context.Context) {
	err := s.Sync(ctx)
	if err == nil {
		return
	}

	var tgErr *telegram.Error
	if errors.As(err, &tgErr) && tgErr.IsRateLimit() {
		// Retrying a throttled upstream only amplifies the throttle.
		s.log.Errorf("Membership sync rate limited, aborting: %v", err)
		return
	}

	s.log.Errorf("Membership sync failed, retrying once: %v", err)
	select {
	case <-ctx.Done():
		return
	case <-time.After(s.retryDelay):
	}

	if err := s.Sync(ctx); err != nil {
		s.log.Errorf("Membership sync retry failed: %v", err)
	}
}

// Sync performs one roster diff and applies it
func (s *MembershipSync) Sync(ctx context.Context) error {
	members, err := s.source.ListMembers(ctx)
	if err != nil {
		return err
	}

	existing, err := s.userRepo.FindAll(s.db.WithContext(ctx))
	if err != nil {
		return err
	}

	plan := diffMembers(existing, members)

	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := s.userRepo.CreateBatch(tx, plan.insert); err != nil {
		return err
	}
	if err := s.userRepo.SetDeleted(tx, plan.reenable, false); err != nil {
		return err
	}
	if err := s.userRepo.SetDeleted(tx, plan.softDelete, true); err != nil {
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}

	for _, user := range plan.insert {
		s.welcome.EnqueueWelcome(user.ID)
	}

	s.log.Infof("Membership sync done: %d inserted, %d re-enabled, %d soft-deleted",
		len(plan.insert), len(plan.reenable), len(plan.softDelete))
	return nil
}

type syncPlan struct {
	insert     []entity.User
	reenable   []int64
	softDelete []int64
}

// diffMembers partitions ids so no id lands in more than one bucket
func diffMembers(existing []entity.User, upstream []tgbotapi.User) syncPlan {
	known := make(map[int64]*entity.User, len(existing))
	for i := range existing {
		known[existing[i].ID] = &existing[i]
	}

	present := make(map[int64]bool, len(upstream))
	var plan syncPlan

	for _, member := range upstream {
		if present[member.ID] {
			continue
		}
		present[member.ID] = true

		user, ok := known[member.ID]
		if !ok {
			plan.insert = append(plan.insert, entity.User{
				ID:        member.ID,
				Username:  member.UserName,
				FirstName: member.FirstName,
				LastName:  member.LastName,
				IsBot:     member.IsBot,
			})
			continue
		}
		if user.Deleted {
			plan.reenable = append(plan.reenable, user.ID)
		}
	}

	for id, user := range known {
		if !present[id] && !user.Deleted {
			plan.softDelete = append(plan.softDelete, id)
		}
	}

	return plan
}
