package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"doctorbot/internal/domain/entity"
	"doctorbot/internal/domain/repository"
	"doctorbot/internal/job"
	"doctorbot/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gorm.io/gorm"
)

// minSearchLength is the shortest free-text speciality query accepted
// while the search mark is pending.
const minSearchLength = 3

// Notifier hands presentation work to the background queue. Every method
// returns immediately; delivery happens on the worker pool.
type Notifier interface {
	EnqueueWelcome(chatID int64)
	EnqueueSpecialityList(chatID int64, query string)
	EnqueueClinicOrPrivate(chatID int64, messageID int, specialityID uint)
	EnqueueDistrictList(chatID int64, messageID int, branch string, specialityID uint)
	EnqueueDoctorCards(chatID int64, messageID int, ids []uint)
	EnqueuePolyclinicCards(chatID int64, messageID int, ids []uint)
	EnqueueShareList(chatID int64, shares []entity.Share)
	EnqueueSearchPrompt(chatID int64)
	EnqueueNotFound(chatID int64)
}

// SearchState tracks whether a user's next message is a speciality query.
type SearchState interface {
	SetPending(ctx context.Context, userID int64) error
	IsPending(ctx context.Context, userID int64) (bool, error)
	Clear(ctx context.Context, userID int64) error
}

type WebhookUsecase interface {
	// HandleUpdate routes a decoded update. A returned error means the
	// update could not be processed; the caller logs it and still
	// acknowledges delivery so the platform does not redeliver forever.
	HandleUpdate(ctx context.Context, update *tgbotapi.Update) error
}

type webhookUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	notifier       Notifier
	searchState    SearchState
	userRepo       repository.UserRepository
	shareRepo      repository.ShareRepository
	doctorRepo     repository.DoctorRepository
	polyclinicRepo repository.PolyclinicRepository
}

func NewWebhookUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notifier Notifier,
	searchState SearchState,
	userRepo repository.UserRepository,
	shareRepo repository.ShareRepository,
	doctorRepo repository.DoctorRepository,
	polyclinicRepo repository.PolyclinicRepository,
) WebhookUsecase {
	return &webhookUsecase{
		db:             db,
		log:            log,
		notifier:       notifier,
		searchState:    searchState,
		userRepo:       userRepo,
		shareRepo:      shareRepo,
		doctorRepo:     doctorRepo,
		polyclinicRepo: polyclinicRepo,
	}
}

func (u *webhookUsecase) HandleUpdate(ctx context.Context, update *tgbotapi.Update) error {
	switch {
	case update.CallbackQuery != nil:
		return u.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		return u.handleMessage(ctx, update.Message)
	case update.ChatJoinRequest != nil:
		u.log.Infof("Chat join request from user %d", update.ChatJoinRequest.From.ID)
		return nil
	default:
		return nil
	}
}

func (u *webhookUsecase) handleMessage(ctx context.Context, message *tgbotapi.Message) error {
	if message.From == nil || message.Chat == nil {
		return nil
	}
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	switch strings.ToLower(text) {
	case job.CommandStart:
		return u.handleStart(ctx, message)
	case job.ButtonFindDoctor:
		u.notifier.EnqueueSpecialityList(chatID, "")
		return nil
	case job.ButtonSearch:
		if err := u.searchState.SetPending(ctx, message.From.ID); err != nil {
			u.log.Warnf("Failed to mark search pending for user %d: %v", message.From.ID, err)
			return err
		}
		u.notifier.EnqueueSearchPrompt(chatID)
		return nil
	case job.ButtonPromotions:
		return u.handlePromotions(ctx, chatID)
	}

	return u.handleFreeText(ctx, message.From.ID, chatID, text)
}

func (u *webhookUsecase) handleStart(ctx context.Context, message *tgbotapi.Message) error {
	from := message.From

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), from.ID)
	if err != nil {
		u.log.Warnf("Failed to look up user %d: %v", from.ID, err)
		return err
	}
	if user == nil {
		newUser := entity.User{
			ID:        from.ID,
			Username:  from.UserName,
			FirstName: from.FirstName,
			LastName:  from.LastName,
			IsBot:     from.IsBot,
		}
		if err := u.userRepo.Create(u.db.WithContext(ctx), &newUser); err != nil {
			u.log.Warnf("Failed to create user %d: %v", from.ID, err)
			return err
		}
	}

	u.notifier.EnqueueWelcome(message.Chat.ID)
	return nil
}

func (u *webhookUsecase) handlePromotions(ctx context.Context, chatID int64) error {
	shares, err := u.shareRepo.FindActive(u.db.WithContext(ctx), time.Now())
	if err != nil {
		u.log.Warnf("Failed to load active shares: %v", err)
		return err
	}
	if len(shares) == 0 {
		u.notifier.EnqueueNotFound(chatID)
		return nil
	}
	u.notifier.EnqueueShareList(chatID, shares)
	return nil
}

// handleFreeText consumes the pending search mark. Text arriving without
// the mark, or shorter than the minimum, is ignored.
func (u *webhookUsecase) handleFreeText(ctx context.Context, userID, chatID int64, text string) error {
	if len([]rune(text)) < minSearchLength {
		return nil
	}

	pending, err := u.searchState.IsPending(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to read search mark for user %d: %v", userID, err)
		return err
	}
	if !pending {
		return nil
	}

	if err := u.searchState.Clear(ctx, userID); err != nil {
		u.log.Warnf("Failed to clear search mark for user %d: %v", userID, err)
	}
	u.notifier.EnqueueSpecialityList(chatID, text)
	return nil
}

func (u *webhookUsecase) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	if callback.Message == nil || callback.Message.Chat == nil {
		u.log.Warn("Callback query without an attached message, skipping")
		return nil
	}
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID

	payload, err := telegram.ParseCallbackPayload(callback.Data)
	if err != nil {
		u.log.Warnf("Malformed callback payload %q: %v", callback.Data, err)
		return nil
	}

	switch payload.Type {
	case telegram.CallbackSpeciality:
		specialityID := cast.ToUint(payload.Data)
		if specialityID == 0 {
			u.log.Warnf("Callback with invalid speciality id %q", payload.Data)
			return nil
		}
		u.notifier.EnqueueClinicOrPrivate(chatID, messageID, specialityID)
		return nil
	case telegram.CallbackClinicOrPrivate:
		branch, specialityID, ok := parseBranchSpeciality(payload.Data)
		if !ok {
			u.log.Warnf("Callback with invalid branch data %q", payload.Data)
			return nil
		}
		u.notifier.EnqueueDistrictList(chatID, messageID, branch, specialityID)
		return nil
	case telegram.CallbackDistrict:
		return u.handleDistrict(ctx, chatID, messageID, payload.Data)
	default:
		u.log.Warnf("Callback with unknown type %q", payload.Type)
		return nil
	}
}

// handleDistrict is the terminal funnel step: resolve the accumulated
// selection to rating-ordered result cards.
func (u *webhookUsecase) handleDistrict(ctx context.Context, chatID int64, messageID int, data string) error {
	branch, specialityID, districtID, ok := parseBranchSpecialityDistrict(data)
	if !ok {
		u.log.Warnf("Callback with invalid district data %q", data)
		return nil
	}

	switch branch {
	case telegram.BranchPrivate:
		doctors, err := u.doctorRepo.FindBySpecialityAndDistrict(u.db.WithContext(ctx), specialityID, districtID)
		if err != nil {
			u.log.Warnf("Failed to load doctors for speciality %d district %d: %v", specialityID, districtID, err)
			return err
		}
		ids := orderDoctorIDs(doctors)
		if len(ids) == 0 {
			u.notifier.EnqueueNotFound(chatID)
			return nil
		}
		u.notifier.EnqueueDoctorCards(chatID, messageID, ids)
		return nil
	case telegram.BranchClinic:
		polyclinics, err := u.polyclinicRepo.FindBySpecialityAndDistrict(u.db.WithContext(ctx), specialityID, districtID)
		if err != nil {
			u.log.Warnf("Failed to load polyclinics for speciality %d district %d: %v", specialityID, districtID, err)
			return err
		}
		ids := orderPolyclinicIDs(polyclinics)
		if len(ids) == 0 {
			u.notifier.EnqueueNotFound(chatID)
			return nil
		}
		u.notifier.EnqueuePolyclinicCards(chatID, messageID, ids)
		return nil
	default:
		u.log.Warnf("Callback with unknown branch %q", branch)
		return nil
	}
}

func parseBranchSpeciality(data string) (string, uint, bool) {
	parts := strings.Split(data, ",")
	if len(parts) != 2 {
		return "", 0, false
	}
	branch := parts[0]
	if branch != telegram.BranchClinic && branch != telegram.BranchPrivate {
		return "", 0, false
	}
	specialityID := cast.ToUint(parts[1])
	if specialityID == 0 {
		return "", 0, false
	}
	return branch, specialityID, true
}

func parseBranchSpecialityDistrict(data string) (string, uint, uint, bool) {
	parts := strings.Split(data, ",")
	if len(parts) != 3 {
		return "", 0, 0, false
	}
	branch := parts[0]
	if branch != telegram.BranchClinic && branch != telegram.BranchPrivate {
		return "", 0, 0, false
	}
	specialityID := cast.ToUint(parts[1])
	districtID := cast.ToUint(parts[2])
	if specialityID == 0 || districtID == 0 {
		return "", 0, 0, false
	}
	return branch, specialityID, districtID, true
}

// orderDoctorIDs sorts rated entries first by ascending rating, unrated
// entries after them, and deduplicates while keeping that order.
func orderDoctorIDs(doctors []entity.Doctor) []uint {
	sort.SliceStable(doctors, func(i, j int) bool {
		if doctors[i].Rating != doctors[j].Rating {
			return doctors[i].Rating.Before(doctors[j].Rating)
		}
		return doctors[i].ID < doctors[j].ID
	})

	seen := make(map[uint]struct{}, len(doctors))
	ids := make([]uint, 0, len(doctors))
	for _, d := range doctors {
		if _, ok := seen[d.ID]; ok {
			continue
		}
		seen[d.ID] = struct{}{}
		ids = append(ids, d.ID)
	}
	return ids
}

func orderPolyclinicIDs(polyclinics []entity.Polyclinic) []uint {
	sort.SliceStable(polyclinics, func(i, j int) bool {
		if polyclinics[i].Rating != polyclinics[j].Rating {
			return polyclinics[i].Rating.Before(polyclinics[j].Rating)
		}
		return polyclinics[i].ID < polyclinics[j].ID
	})

	seen := make(map[uint]struct{}, len(polyclinics))
	ids := make([]uint, 0, len(polyclinics))
	for _, p := range polyclinics {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		ids = append(ids, p.ID)
	}
	return ids
}
