package usecase

import (
	"context"
	"testing"

	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type clearGlobalRatingCall struct {
	rating   entity.Rating
	exceptID uint
}

type recordingPolyclinicRepo struct {
	fakePolyclinicRepo
	polyclinics map[uint]*entity.Polyclinic
	nextID      uint
	clearCalls  []clearGlobalRatingCall
}

func newRecordingPolyclinicRepo() *recordingPolyclinicRepo {
	return &recordingPolyclinicRepo{polyclinics: map[uint]*entity.Polyclinic{}}
}

func (r *recordingPolyclinicRepo) add(p entity.Polyclinic) {
	if p.ID > r.nextID {
		r.nextID = p.ID
	}
	r.polyclinics[p.ID] = &p
}

func (r *recordingPolyclinicRepo) Create(db *gorm.DB, p *entity.Polyclinic) error {
	r.nextID++
	p.ID = r.nextID
	stored := *p
	r.polyclinics[p.ID] = &stored
	return nil
}

func (r *recordingPolyclinicRepo) FindByID(db *gorm.DB, id uint) (*entity.Polyclinic, error) {
	if p, ok := r.polyclinics[id]; ok {
		stored := *p
		return &stored, nil
	}
	return nil, nil
}

func (r *recordingPolyclinicRepo) Update(db *gorm.DB, p *entity.Polyclinic) error {
	stored := *p
	r.polyclinics[p.ID] = &stored
	return nil
}

func (r *recordingPolyclinicRepo) ClearRating(db *gorm.DB, rating entity.Rating, exceptID uint) error {
	r.clearCalls = append(r.clearCalls, clearGlobalRatingCall{rating, exceptID})
	for id, p := range r.polyclinics {
		if id != exceptID && p.Rating == rating {
			p.Rating = entity.Rating(0)
		}
	}
	return nil
}

func newPolyclinicFixture() (*recordingPolyclinicRepo, PolyclinicUsecase) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	repo := newRecordingPolyclinicRepo()
	return repo, NewPolyclinicUsecase(newFakeTxDB(), log, repo)
}

func TestCreatePolyclinicClearsRatingAcrossDistricts(t *testing.T) {
	repo, uc := newPolyclinicFixture()
	d1, d2 := uint(1), uint(2)
	repo.add(entity.Polyclinic{ID: 1, Name: "Central", DistrictID: &d1, Rating: entity.Rating(1)})

	resp, err := uc.Create(context.Background(), &dto.CreatePolyclinicRequest{
		Name:       "Northside",
		DistrictID: &d2,
		Rating:     1,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Polyclinic ratings are a single ranking, not per district.
	want := clearGlobalRatingCall{rating: entity.Rating(1), exceptID: resp.ID}
	if len(repo.clearCalls) != 1 || repo.clearCalls[0] != want {
		t.Fatalf("clear calls = %+v, want [%+v]", repo.clearCalls, want)
	}
	if repo.polyclinics[1].Rating.IsSet() {
		t.Error("holder in another district kept its rating")
	}
	if resp.Rating != 1 {
		t.Errorf("rating = %d, want 1", resp.Rating)
	}
}

func TestUpdatePolyclinicRatingZeroClearsWithoutTouchingSiblings(t *testing.T) {
	repo, uc := newPolyclinicFixture()
	repo.add(entity.Polyclinic{ID: 1, Name: "Central", Rating: entity.Rating(2)})
	repo.add(entity.Polyclinic{ID: 2, Name: "Northside", Rating: entity.Rating(3)})

	rating := int16(0)
	resp, err := uc.Update(context.Background(), 1, &dto.UpdatePolyclinicRequest{Rating: &rating})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if len(repo.clearCalls) != 0 {
		t.Errorf("clearing a rating touched siblings: %+v", repo.clearCalls)
	}
	if resp.Rating != 0 {
		t.Errorf("rating = %d, want cleared", resp.Rating)
	}
	if !repo.polyclinics[2].Rating.IsSet() {
		t.Error("unrelated polyclinic lost its rating")
	}
}
