package usecase

import (
	"context"
	"testing"
	"time"

	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type recordingShareRepo struct {
	fakeShareRepo
	shares     map[uint]*entity.Share
	nextID     uint
	clearCalls []clearGlobalRatingCall
}

func newRecordingShareRepo() *recordingShareRepo {
	return &recordingShareRepo{shares: map[uint]*entity.Share{}}
}

func (r *recordingShareRepo) add(s entity.Share) {
	if s.ID > r.nextID {
		r.nextID = s.ID
	}
	r.shares[s.ID] = &s
}

func (r *recordingShareRepo) Create(db *gorm.DB, share *entity.Share) error {
	r.nextID++
	share.ID = r.nextID
	stored := *share
	r.shares[share.ID] = &stored
	return nil
}

func (r *recordingShareRepo) FindByID(db *gorm.DB, id uint) (*entity.Share, error) {
	if s, ok := r.shares[id]; ok {
		stored := *s
		return &stored, nil
	}
	return nil, nil
}

func (r *recordingShareRepo) ClearRating(db *gorm.DB, rating entity.Rating, exceptID uint) error {
	r.clearCalls = append(r.clearCalls, clearGlobalRatingCall{rating, exceptID})
	for id, s := range r.shares {
		if id != exceptID && s.Rating == rating {
			s.Rating = entity.Rating(0)
		}
	}
	return nil
}

func newShareFixture() (*recordingShareRepo, ShareUsecase) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	repo := newRecordingShareRepo()
	return repo, NewShareUsecase(newFakeTxDB(), log, repo)
}

func TestCreateShareMovesRating(t *testing.T) {
	repo, uc := newShareFixture()
	now := time.Now()
	repo.add(entity.Share{ID: 1, Description: "Old promo", PolyclinicID: 2, Rating: entity.Rating(3)})

	resp, err := uc.Create(context.Background(), &dto.CreateShareRequest{
		Description:  "Free checkup",
		StartDate:    now,
		EndDate:      now.AddDate(0, 1, 0),
		Rating:       3,
		PolyclinicID: 5,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Share ratings are a single ranking across all polyclinics.
	want := clearGlobalRatingCall{rating: entity.Rating(3), exceptID: resp.ID}
	if len(repo.clearCalls) != 1 || repo.clearCalls[0] != want {
		t.Fatalf("clear calls = %+v, want [%+v]", repo.clearCalls, want)
	}
	if repo.shares[1].Rating.IsSet() {
		t.Error("share of another polyclinic kept its rating")
	}
}

func TestCreateShareRejectsSwappedDates(t *testing.T) {
	repo, uc := newShareFixture()
	now := time.Now()

	_, err := uc.Create(context.Background(), &dto.CreateShareRequest{
		Description:  "Backwards",
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, -1),
		PolyclinicID: 5,
	})
	if err != ErrShareDatesSwapped {
		t.Fatalf("err = %v, want ErrShareDatesSwapped", err)
	}
	if len(repo.shares) != 0 {
		t.Errorf("rejected share was stored: %+v", repo.shares)
	}
}
