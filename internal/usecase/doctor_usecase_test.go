package usecase

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// fakeTxPool satisfies gorm's transaction interfaces so a usecase can run its
// Begin/Commit flow without a database. No query ever executes because the
// repositories are fakes.
type fakeTxPool struct{}

func (p *fakeTxPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, nil
}

func (p *fakeTxPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (p *fakeTxPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (p *fakeTxPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (p *fakeTxPool) BeginTx(ctx context.Context, opts *sql.TxOptions) (gorm.ConnPool, error) {
	return p, nil
}

func (p *fakeTxPool) Commit() error   { return nil }
func (p *fakeTxPool) Rollback() error { return nil }

func newFakeTxDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{ConnPool: &fakeTxPool{}}}
	db.Statement = &gorm.Statement{DB: db, ConnPool: db.Config.ConnPool}
	return db
}

type clearDoctorRatingCall struct {
	specialityID uint
	rating       entity.Rating
	exceptID     uint
}

type doctorAssociations struct {
	doctorID    uint
	polyclinics []entity.Polyclinic
	districts   []entity.District
	schedules   []entity.Schedule
}

type recordingDoctorRepo struct {
	fakeDoctorRepo
	doctors    map[uint]*entity.Doctor
	nextID     uint
	clearCalls []clearDoctorRatingCall
	appended   *doctorAssociations
}

func newRecordingDoctorRepo() *recordingDoctorRepo {
	return &recordingDoctorRepo{doctors: map[uint]*entity.Doctor{}}
}

func (r *recordingDoctorRepo) add(d entity.Doctor) {
	if d.ID > r.nextID {
		r.nextID = d.ID
	}
	r.doctors[d.ID] = &d
}

func (r *recordingDoctorRepo) Create(db *gorm.DB, d *entity.Doctor) error {
	r.nextID++
	d.ID = r.nextID
	stored := *d
	r.doctors[d.ID] = &stored
	return nil
}

func (r *recordingDoctorRepo) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	if d, ok := r.doctors[id]; ok {
		stored := *d
		return &stored, nil
	}
	return nil, nil
}

func (r *recordingDoctorRepo) Update(db *gorm.DB, d *entity.Doctor) error {
	stored := *d
	r.doctors[d.ID] = &stored
	return nil
}

func (r *recordingDoctorRepo) ClearRating(db *gorm.DB, specialityID uint, rating entity.Rating, exceptID uint) error {
	r.clearCalls = append(r.clearCalls, clearDoctorRatingCall{specialityID, rating, exceptID})
	for id, d := range r.doctors {
		if id != exceptID && d.SpecialityID == specialityID && d.Rating == rating {
			d.Rating = entity.Rating(0)
		}
	}
	return nil
}

func (r *recordingDoctorRepo) AppendAssociations(db *gorm.DB, d *entity.Doctor, p []entity.Polyclinic, ds []entity.District, sc []entity.Schedule) error {
	r.appended = &doctorAssociations{d.ID, p, ds, sc}
	if stored, ok := r.doctors[d.ID]; ok {
		stored.Polyclinics = p
		stored.Districts = ds
		stored.Schedules = sc
	}
	return nil
}

func newDoctorFixture() (*recordingDoctorRepo, DoctorUsecase) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	repo := newRecordingDoctorRepo()
	return repo, NewDoctorUsecase(newFakeTxDB(), log, repo)
}

func baseDoctor() *entity.Doctor {
	return &entity.Doctor{
		ID:           10,
		FirstName:    "Anna",
		LastName:     "Petrenko",
		PaternalName: "Ivanivna",
		Phone:        "+380501234567",
		Image:        "anna.jpg",
		SpecialityID: 3,
		PositionID:   2,
		Experience:   12,
		Cost:         decimal.NewFromInt(450),
		Rating:       entity.Rating(2),
	}
}

func TestApplyDoctorUpdateEmptyRequestChangesNothing(t *testing.T) {
	doctor := baseDoctor()
	want := *doctor

	applyDoctorUpdate(doctor, &dto.UpdateDoctorRequest{})

	if !reflect.DeepEqual(*doctor, want) {
		t.Errorf("empty update changed the doctor:\ngot  %+v\nwant %+v", *doctor, want)
	}
}

func TestApplyDoctorUpdateOverwritesProvidedFields(t *testing.T) {
	doctor := baseDoctor()
	cost := decimal.NewFromInt(600)

	applyDoctorUpdate(doctor, &dto.UpdateDoctorRequest{
		FirstName:    "Olena",
		SpecialityID: 7,
		Experience:   20,
		Cost:         &cost,
	})

	if doctor.FirstName != "Olena" || doctor.SpecialityID != 7 || doctor.Experience != 20 {
		t.Errorf("fields not applied: %+v", doctor)
	}
	if !doctor.Cost.Equal(cost) {
		t.Errorf("cost = %s, want 600", doctor.Cost)
	}
	if doctor.LastName != "Petrenko" || doctor.Rating != entity.Rating(2) {
		t.Errorf("untouched fields changed: %+v", doctor)
	}
}

func TestApplyDoctorUpdateRatingPointer(t *testing.T) {
	tests := []struct {
		name   string
		rating *int16
		want   entity.Rating
	}{
		{"nil keeps current", nil, entity.Rating(2)},
		{"zero clears", new(int16), entity.Rating(0)},
		{"value sets", func() *int16 { v := int16(5); return &v }(), entity.Rating(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctor := baseDoctor()
			applyDoctorUpdate(doctor, &dto.UpdateDoctorRequest{Rating: tt.rating})
			if doctor.Rating != tt.want {
				t.Errorf("rating = %v, want %v", doctor.Rating, tt.want)
			}
		})
	}
}

func TestValidateCost(t *testing.T) {
	if err := validateCost(decimal.NewFromInt(0)); err != nil {
		t.Errorf("zero cost rejected: %v", err)
	}
	if err := validateCost(decimal.NewFromInt(100000)); err != nil {
		t.Errorf("max cost rejected: %v", err)
	}
	if err := validateCost(decimal.NewFromInt(-1)); err != ErrInvalidCost {
		t.Errorf("negative cost: err = %v, want ErrInvalidCost", err)
	}
	if err := validateCost(decimal.NewFromInt(100001)); err != ErrInvalidCost {
		t.Errorf("over max: err = %v, want ErrInvalidCost", err)
	}
}

func TestAssociationRefsKeepOrder(t *testing.T) {
	refs := polyclinicRefs([]uint{4, 1, 9})
	if len(refs) != 3 || refs[0].ID != 4 || refs[1].ID != 1 || refs[2].ID != 9 {
		t.Errorf("refs = %+v, want ids [4 1 9]", refs)
	}
	if got := districtRefs(nil); len(got) != 0 {
		t.Errorf("nil ids produced refs: %+v", got)
	}
}

func TestCreateDoctorMovesRatingWithinSpeciality(t *testing.T) {
	repo, uc := newDoctorFixture()
	repo.add(entity.Doctor{ID: 1, SpecialityID: 3, Rating: entity.Rating(2)})
	repo.add(entity.Doctor{ID: 2, SpecialityID: 8, Rating: entity.Rating(2)})

	resp, err := uc.Create(context.Background(), &dto.CreateDoctorRequest{
		FirstName:    "Olena",
		LastName:     "Koval",
		PaternalName: "Petrivna",
		Phone:        "+380671112233",
		SpecialityID: 3,
		PositionID:   1,
		Experience:   5,
		Rating:       2,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	want := clearDoctorRatingCall{specialityID: 3, rating: entity.Rating(2), exceptID: resp.ID}
	if len(repo.clearCalls) != 1 || repo.clearCalls[0] != want {
		t.Fatalf("clear calls = %+v, want [%+v]", repo.clearCalls, want)
	}
	if repo.doctors[1].Rating.IsSet() {
		t.Error("previous holder in the same speciality kept its rating")
	}
	if !repo.doctors[2].Rating.IsSet() {
		t.Error("doctor of another speciality lost its rating")
	}
	if resp.Rating != 2 {
		t.Errorf("rating = %d, want 2", resp.Rating)
	}
}

func TestCreateDoctorWithoutRatingSkipsClearing(t *testing.T) {
	repo, uc := newDoctorFixture()

	_, err := uc.Create(context.Background(), &dto.CreateDoctorRequest{
		FirstName:    "Olena",
		LastName:     "Koval",
		PaternalName: "Petrivna",
		Phone:        "+380671112233",
		SpecialityID: 3,
		PositionID:   1,
		Experience:   5,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if len(repo.clearCalls) != 0 {
		t.Errorf("unrated create cleared siblings: %+v", repo.clearCalls)
	}
}

func TestUpdateDoctorRatingMovesValue(t *testing.T) {
	repo, uc := newDoctorFixture()
	repo.add(*baseDoctor())
	repo.add(entity.Doctor{ID: 11, SpecialityID: 3, Rating: entity.Rating(4)})

	rating := int16(4)
	resp, err := uc.Update(context.Background(), 10, &dto.UpdateDoctorRequest{Rating: &rating})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	want := clearDoctorRatingCall{specialityID: 3, rating: entity.Rating(4), exceptID: 10}
	if len(repo.clearCalls) != 1 || repo.clearCalls[0] != want {
		t.Fatalf("clear calls = %+v, want [%+v]", repo.clearCalls, want)
	}
	if repo.doctors[11].Rating.IsSet() {
		t.Error("previous holder kept its rating")
	}
	if resp.Rating != 4 {
		t.Errorf("rating = %d, want 4", resp.Rating)
	}
}

func TestDuplicateDoctorClonesScalarsAndAssociations(t *testing.T) {
	repo, uc := newDoctorFixture()
	source := *baseDoctor()
	source.ID = 7
	source.Polyclinics = []entity.Polyclinic{{ID: 4}, {ID: 9}}
	source.Districts = []entity.District{{ID: 1}}
	source.Schedules = []entity.Schedule{{ID: 5}}
	repo.add(source)

	resp, err := uc.Duplicate(context.Background(), 7)
	if err != nil {
		t.Fatalf("Duplicate() error: %v", err)
	}
	if resp.ID == 0 || resp.ID == source.ID {
		t.Fatalf("clone id = %d, want a new identity", resp.ID)
	}

	got := *repo.doctors[resp.ID]
	got.ID = source.ID
	got.Polyclinics = source.Polyclinics
	got.Districts = source.Districts
	got.Schedules = source.Schedules
	if !reflect.DeepEqual(got, source) {
		t.Errorf("clone scalars differ from source:\ngot  %+v\nwant %+v", got, source)
	}

	if repo.appended == nil || repo.appended.doctorID != resp.ID {
		t.Fatalf("associations not appended to the clone: %+v", repo.appended)
	}
	if !reflect.DeepEqual(repo.appended.polyclinics, source.Polyclinics) ||
		!reflect.DeepEqual(repo.appended.districts, source.Districts) ||
		!reflect.DeepEqual(repo.appended.schedules, source.Schedules) {
		t.Errorf("clone associations differ from source: %+v", repo.appended)
	}

	want := clearDoctorRatingCall{specialityID: source.SpecialityID, rating: source.Rating, exceptID: resp.ID}
	if len(repo.clearCalls) != 1 || repo.clearCalls[0] != want {
		t.Fatalf("clear calls = %+v, want [%+v]", repo.clearCalls, want)
	}
	if repo.doctors[source.ID].Rating.IsSet() {
		t.Error("source should have lost its rating to the clone")
	}
}

func TestDuplicateDoctorMissingSource(t *testing.T) {
	_, uc := newDoctorFixture()

	if _, err := uc.Duplicate(context.Background(), 99); err != ErrDoctorNotFound {
		t.Errorf("err = %v, want ErrDoctorNotFound", err)
	}
}
