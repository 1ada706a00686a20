package usecase

import (
	"context"
	"testing"
	"time"

	"doctorbot/internal/domain/entity"
	"doctorbot/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type specialityListCall struct {
	chatID int64
	query  string
}

type districtListCall struct {
	chatID       int64
	messageID    int
	branch       string
	specialityID uint
}

type fakeNotifier struct {
	welcomes        []int64
	specialityLists []specialityListCall
	clinicOrPrivate []uint
	districtLists   []districtListCall
	doctorCards     [][]uint
	polyclinicCards [][]uint
	shareLists      [][]entity.Share
	searchPrompts   int
	notFound        int
}

func (f *fakeNotifier) EnqueueWelcome(chatID int64) { f.welcomes = append(f.welcomes, chatID) }
func (f *fakeNotifier) EnqueueSpecialityList(chatID int64, query string) {
	f.specialityLists = append(f.specialityLists, specialityListCall{chatID, query})
}
func (f *fakeNotifier) EnqueueClinicOrPrivate(chatID int64, messageID int, specialityID uint) {
	f.clinicOrPrivate = append(f.clinicOrPrivate, specialityID)
}
func (f *fakeNotifier) EnqueueDistrictList(chatID int64, messageID int, branch string, specialityID uint) {
	f.districtLists = append(f.districtLists, districtListCall{chatID, messageID, branch, specialityID})
}
func (f *fakeNotifier) EnqueueDoctorCards(chatID int64, messageID int, ids []uint) {
	f.doctorCards = append(f.doctorCards, ids)
}
func (f *fakeNotifier) EnqueuePolyclinicCards(chatID int64, messageID int, ids []uint) {
	f.polyclinicCards = append(f.polyclinicCards, ids)
}
func (f *fakeNotifier) EnqueueShareList(chatID int64, shares []entity.Share) {
	f.shareLists = append(f.shareLists, shares)
}
func (f *fakeNotifier) EnqueueSearchPrompt(chatID int64) { f.searchPrompts++ }
func (f *fakeNotifier) EnqueueNotFound(chatID int64) { f.notFound++ }

type fakeSearchState struct {
	pending map[int64]bool
}

func newFakeSearchState() *fakeSearchState {
	return &fakeSearchState{pending: map[int64]bool{}}
}

func (f *fakeSearchState) SetPending(ctx context.Context, userID int64) error {
	f.pending[userID] = true
	return nil
}

func (f *fakeSearchState) IsPending(ctx context.Context, userID int64) (bool, error) {
	return f.pending[userID], nil
}

func (f *fakeSearchState) Clear(ctx context.Context, userID int64) error {
	delete(f.pending, userID)
	return nil
}

type fakeUserRepo struct {
	users map[int64]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]entity.User{}}
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		f.users[user.ID] = *user
	}
	return nil
}

func (f *fakeUserRepo) CreateBatch(db *gorm.DB, users []entity.User) error {
	for _, u := range users {
		f.Create(db, &u)
	}
	return nil
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id int64) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(db *gorm.DB) ([]entity.User, error) {
	var out []entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) SetDeleted(db *gorm.DB, ids []int64, deleted bool) error {
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			u.Deleted = deleted
			f.users[id] = u
		}
	}
	return nil
}

type fakeShareRepo struct {
	active []entity.Share
}

func (f *fakeShareRepo) Create(db *gorm.DB, share *entity.Share) error { return nil }
func (f *fakeShareRepo) FindByID(db *gorm.DB, id uint) (*entity.Share, error) { return nil, nil }
func (f *fakeShareRepo) FindAll(db *gorm.DB, pID uint) ([]entity.Share, error) { return nil, nil }
func (f *fakeShareRepo) Update(db *gorm.DB, share *entity.Share) error { return nil }
func (f *fakeShareRepo) Delete(db *gorm.DB, id uint) (int64, error) { return 0, nil }
func (f *fakeShareRepo) ClearRating(db *gorm.DB, r entity.Rating, e uint) error { return nil }
func (f *fakeShareRepo) FindActive(db *gorm.DB, now time.Time) ([]entity.Share, error) {
	return f.active, nil
}

type fakeDoctorRepo struct {
	bySpecDistrict []entity.Doctor
}

func (f *fakeDoctorRepo) Create(db *gorm.DB, d *entity.Doctor) error { return nil }
func (f *fakeDoctorRepo) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) { return nil, nil }
func (f *fakeDoctorRepo) FindByIDs(db *gorm.DB, ids []uint) ([]entity.Doctor, error) { return nil, nil }
func (f *fakeDoctorRepo) FindAll(db *gorm.DB, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	return nil, nil
}
func (f *fakeDoctorRepo) FindBySpecialityAndDistrict(db *gorm.DB, specialityID, districtID uint) ([]entity.Doctor, error) {
	return f.bySpecDistrict, nil
}
func (f *fakeDoctorRepo) Update(db *gorm.DB, d *entity.Doctor) error { return nil }
func (f *fakeDoctorRepo) Delete(db *gorm.DB, id uint) (int64, error) { return 0, nil }
func (f *fakeDoctorRepo) ClearRating(db *gorm.DB, s uint, r entity.Rating, e uint) error {
	return nil
}
func (f *fakeDoctorRepo) ReplaceAssociations(db *gorm.DB, d *entity.Doctor, p []entity.Polyclinic, ds []entity.District, sc []entity.Schedule) error {
	return nil
}
func (f *fakeDoctorRepo) AppendAssociations(db *gorm.DB, d *entity.Doctor, p []entity.Polyclinic, ds []entity.District, sc []entity.Schedule) error {
	return nil
}

type fakePolyclinicRepo struct {
	bySpecDistrict []entity.Polyclinic
}

func (f *fakePolyclinicRepo) Create(db *gorm.DB, p *entity.Polyclinic) error { return nil }
func (f *fakePolyclinicRepo) FindByID(db *gorm.DB, id uint) (*entity.Polyclinic, error) {
	return nil, nil
}
func (f *fakePolyclinicRepo) FindByIDs(db *gorm.DB, ids []uint) ([]entity.Polyclinic, error) {
	return nil, nil
}
func (f *fakePolyclinicRepo) FindAll(db *gorm.DB, filter entity.PolyclinicFilter) ([]entity.Polyclinic, error) {
	return nil, nil
}
func (f *fakePolyclinicRepo) FindBySpecialityAndDistrict(db *gorm.DB, specialityID, districtID uint) ([]entity.Polyclinic, error) {
	return f.bySpecDistrict, nil
}
func (f *fakePolyclinicRepo) Update(db *gorm.DB, p *entity.Polyclinic) error { return nil }
func (f *fakePolyclinicRepo) Delete(db *gorm.DB, id uint) (int64, error) { return 0, nil }
func (f *fakePolyclinicRepo) ClearRating(db *gorm.DB, r entity.Rating, e uint) error {
	return nil
}
func (f *fakePolyclinicRepo) ReplaceAssociations(db *gorm.DB, p *entity.Polyclinic, a []entity.Address, ph []entity.Phone, s []entity.Speciality) error {
	return nil
}
func (f *fakePolyclinicRepo) AppendAssociations(db *gorm.DB, p *entity.Polyclinic, a []entity.Address, ph []entity.Phone, s []entity.Speciality) error {
	return nil
}

type fixture struct {
	usecase     WebhookUsecase
	notifier    *fakeNotifier
	searchState *fakeSearchState
	users       *fakeUserRepo
	shares      *fakeShareRepo
	doctors     *fakeDoctorRepo
	polyclinics *fakePolyclinicRepo
}

func newFixture() *fixture {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	f := &fixture{
		notifier:    &fakeNotifier{},
		searchState: newFakeSearchState(),
		users:       newFakeUserRepo(),
		shares:      &fakeShareRepo{},
		doctors:     &fakeDoctorRepo{},
		polyclinics: &fakePolyclinicRepo{},
	}
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db, ConnPool: db.Config.ConnPool}
	f.usecase = NewWebhookUsecase(db, log, f.notifier, f.searchState, f.users, f.shares, f.doctors, f.polyclinics)
	return f
}

func messageUpdate(chatID int64, text string) *tgbotapi.Update {
	return &tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: chatID, UserName: "user"},
			Chat: &tgbotapi.Chat{ID: chatID},
			Text: text,
		},
	}
}

func callbackUpdate(chatID int64, messageID int, data string) *tgbotapi.Update {
	return &tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			From:    &tgbotapi.User{ID: chatID},
			Message: &tgbotapi.Message{MessageID: messageID, Chat: &tgbotapi.Chat{ID: chatID}},
			Data:    data,
		},
	}
}

func TestStartCreatesUserOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := f.usecase.HandleUpdate(ctx, messageUpdate(42, "/start")); err != nil {
			t.Fatalf("HandleUpdate() error: %v", err)
		}
	}

	if len(f.users.users) != 1 {
		t.Errorf("users stored = %d, want 1", len(f.users.users))
	}
	if len(f.notifier.welcomes) != 3 {
		t.Errorf("welcomes = %d, want one per /start", len(f.notifier.welcomes))
	}
}

func TestFindDoctorButtonSendsFullList(t *testing.T) {
	f := newFixture()

	if err := f.usecase.HandleUpdate(context.Background(), messageUpdate(42, "find my doctor")); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}

	if len(f.notifier.specialityLists) != 1 {
		t.Fatalf("speciality lists = %d, want 1", len(f.notifier.specialityLists))
	}
	if f.notifier.specialityLists[0].query != "" {
		t.Errorf("query = %q, want empty", f.notifier.specialityLists[0].query)
	}
}

func TestPromotionsEmpty(t *testing.T) {
	f := newFixture()

	if err := f.usecase.HandleUpdate(context.Background(), messageUpdate(42, "promotions")); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}

	if f.notifier.notFound != 1 {
		t.Errorf("notFound = %d, want 1", f.notifier.notFound)
	}
	if len(f.notifier.shareLists) != 0 {
		t.Errorf("share lists = %d, want 0", len(f.notifier.shareLists))
	}
}

func TestPromotionsWithActiveShares(t *testing.T) {
	f := newFixture()
	f.shares.active = []entity.Share{{ID: 1, Description: "deal"}}

	if err := f.usecase.HandleUpdate(context.Background(), messageUpdate(42, "promotions")); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}

	if len(f.notifier.shareLists) != 1 || len(f.notifier.shareLists[0]) != 1 {
		t.Fatalf("share lists = %v, want one list with one share", f.notifier.shareLists)
	}
	if f.notifier.notFound != 0 {
		t.Errorf("notFound = %d, want 0", f.notifier.notFound)
	}
}

func TestSearchFlow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if err := f.usecase.HandleUpdate(ctx, messageUpdate(42, "search by speciality")); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}
	if f.notifier.searchPrompts != 1 {
		t.Fatalf("search prompts = %d, want 1", f.notifier.searchPrompts)
	}
	if !f.searchState.pending[42] {
		t.Fatal("search mark should be pending after button press")
	}

	if err := f.usecase.HandleUpdate(ctx, messageUpdate(42, "cardio")); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}
	if len(f.notifier.specialityLists) != 1 || f.notifier.specialityLists[0].query != "cardio" {
		t.Fatalf("speciality lists = %v, want one filtered by cardio", f.notifier.specialityLists)
	}
	if f.searchState.pending[42] {
		t.Error("search mark should be cleared after the query message")
	}

	// Without the mark, free text does nothing
	if err := f.usecase.HandleUpdate(ctx, messageUpdate(42, "dentist")); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}
	if len(f.notifier.specialityLists) != 1 {
		t.Errorf("free text without pending mark triggered a search")
	}
}

func TestSearchIgnoresShortQueries(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.searchState.SetPending(ctx, 42)

	if err := f.usecase.HandleUpdate(ctx, messageUpdate(42, "ab")); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}

	if len(f.notifier.specialityLists) != 0 {
		t.Errorf("short query should be ignored, got %v", f.notifier.specialityLists)
	}
	if !f.searchState.pending[42] {
		t.Error("short query should leave the mark pending")
	}
}

func TestCallbackSpeciality(t *testing.T) {
	f := newFixture()
	data := telegram.CallbackPayload{Type: telegram.CallbackSpeciality, Data: "3"}.Encode()

	if err := f.usecase.HandleUpdate(context.Background(), callbackUpdate(42, 10, data)); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}

	if len(f.notifier.clinicOrPrivate) != 1 || f.notifier.clinicOrPrivate[0] != 3 {
		t.Errorf("clinicOrPrivate calls = %v, want [3]", f.notifier.clinicOrPrivate)
	}
}

func TestCallbackClinicOrPrivate(t *testing.T) {
	f := newFixture()
	data := telegram.CallbackPayload{Type: telegram.CallbackClinicOrPrivate, Data: "private,3"}.Encode()

	if err := f.usecase.HandleUpdate(context.Background(), callbackUpdate(42, 10, data)); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}

	want := districtListCall{chatID: 42, messageID: 10, branch: telegram.BranchPrivate, specialityID: 3}
	if len(f.notifier.districtLists) != 1 || f.notifier.districtLists[0] != want {
		t.Errorf("district lists = %v, want %v", f.notifier.districtLists, want)
	}
}

func TestCallbackDistrictOrdersDoctorsByRating(t *testing.T) {
	f := newFixture()
	f.doctors.bySpecDistrict = []entity.Doctor{
		{ID: 10},                           // unrated goes last
		{ID: 11, Rating: entity.Rating(2)},
		{ID: 12, Rating: entity.Rating(1)},
		{ID: 11, Rating: entity.Rating(2)}, // duplicate row from the join
	}
	data := telegram.CallbackPayload{Type: telegram.CallbackDistrict, Data: "private,3,7"}.Encode()

	if err := f.usecase.HandleUpdate(context.Background(), callbackUpdate(42, 10, data)); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}

	if len(f.notifier.doctorCards) != 1 {
		t.Fatalf("doctor card batches = %d, want 1", len(f.notifier.doctorCards))
	}
	got := f.notifier.doctorCards[0]
	want := []uint{12, 11, 10}
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestCallbackDistrictClinicBranch(t *testing.T) {
	f := newFixture()
	f.polyclinics.bySpecDistrict = []entity.Polyclinic{
		{ID: 20, Rating: entity.Rating(5)},
		{ID: 21, Rating: entity.Rating(1)},
	}
	data := telegram.CallbackPayload{Type: telegram.CallbackDistrict, Data: "clinic,3,7"}.Encode()

	if err := f.usecase.HandleUpdate(context.Background(), callbackUpdate(42, 10, data)); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}

	if len(f.notifier.polyclinicCards) != 1 {
		t.Fatalf("polyclinic card batches = %d, want 1", len(f.notifier.polyclinicCards))
	}
	got := f.notifier.polyclinicCards[0]
	if len(got) != 2 || got[0] != 21 || got[1] != 20 {
		t.Errorf("ids = %v, want [21 20]", got)
	}
}

func TestCallbackDistrictNoResults(t *testing.T) {
	f := newFixture()
	data := telegram.CallbackPayload{Type: telegram.CallbackDistrict, Data: "clinic,3,7"}.Encode()

	if err := f.usecase.HandleUpdate(context.Background(), callbackUpdate(42, 10, data)); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}

	if f.notifier.notFound != 1 {
		t.Errorf("notFound = %d, want 1", f.notifier.notFound)
	}
}

func TestMalformedCallbackIsSwallowed(t *testing.T) {
	f := newFixture()

	for _, data := range []string{
		"not json",
		`{"type":"district","data":"clinic"}`,
		`{"type":"district","data":"walk,3,7"}`,
		`{"type":"speciality","data":"zero"}`,
		`{"type":"mystery","data":"1"}`,
	} {
		if err := f.usecase.HandleUpdate(context.Background(), callbackUpdate(42, 10, data)); err != nil {
			t.Errorf("HandleUpdate(%q) error: %v", data, err)
		}
	}

	if f.notifier.notFound != 0 || len(f.notifier.doctorCards) != 0 || len(f.notifier.polyclinicCards) != 0 {
		t.Error("malformed callbacks should not enqueue anything")
	}
}

func TestUnknownUpdateIsIgnored(t *testing.T) {
	f := newFixture()

	if err := f.usecase.HandleUpdate(context.Background(), &tgbotapi.Update{}); err != nil {
		t.Fatalf("HandleUpdate() error: %v", err)
	}
}
