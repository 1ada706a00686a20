package job

import (
	"context"
	"fmt"
	"time"

	"doctorbot/internal/domain/entity"
	"doctorbot/internal/domain/repository"
	"doctorbot/internal/telegram"
	"doctorbot/internal/worker"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Messenger is the outbound surface the jobs talk to
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string, replyMarkup interface{}) error
	SendPhoto(ctx context.Context, chatID int64, photo, caption string) error
	EditMessageText(ctx context.Context, chatID int64, messageID int, text string, replyMarkup interface{}) error
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
}

// Queue accepts fire-and-forget work
type Queue interface {
	Enqueue(job worker.Job)
}

// Jobs builds the background tasks the webhook dispatcher hands off. Each
// job reads the store, formats a message and calls the messenger; a failed
// send is logged and the job aborts without retry.
type Jobs struct {
	db             *gorm.DB
	log            *logrus.Logger
	queue          Queue
	messenger      Messenger
	specialityRepo repository.SpecialityRepository
	districtRepo   repository.DistrictRepository
	doctorRepo     repository.DoctorRepository
	polyclinicRepo repository.PolyclinicRepository
}

func NewJobs(
	db *gorm.DB,
	log *logrus.Logger,
	queue Queue,
	messenger Messenger,
	specialityRepo repository.SpecialityRepository,
	districtRepo repository.DistrictRepository,
	doctorRepo repository.DoctorRepository,
	polyclinicRepo repository.PolyclinicRepository,
) *Jobs {
	return &Jobs{
		db:             db,
		log:            log,
		queue:          queue,
		messenger:      messenger,
		specialityRepo: specialityRepo,
		districtRepo:   districtRepo,
		doctorRepo:     doctorRepo,
		polyclinicRepo: polyclinicRepo,
	}
}

func (j *Jobs) EnqueueWelcome(chatID int64) {
	j.queue.Enqueue(worker.Job{
		Name: "send_welcome",
		Run: func(ctx context.Context) error {
			return j.messenger.SendMessage(ctx, chatID, textWelcome, welcomeKeyboard())
		},
	})
}

// EnqueueSpecialityList sends the speciality menu. A non-empty query keeps
// only case-insensitive substring matches.
func (j *Jobs) EnqueueSpecialityList(chatID int64, query string) {
	j.queue.Enqueue(worker.Job{
		Name: "send_specialities",
		Run: func(ctx context.Context) error {
			return j.sendSpecialityList(ctx, chatID, query)
		},
	})
}

func (j *Jobs) EnqueueClinicOrPrivate(chatID int64, messageID int, specialityID uint) {
	j.queue.Enqueue(worker.Job{
		Name: "send_clinic_or_private",
		Run: func(ctx context.Context) error {
			return j.sendClinicOrPrivate(ctx, chatID, messageID, specialityID)
		},
	})
}

func (j *Jobs) EnqueueDistrictList(chatID int64, messageID int, branch string, specialityID uint) {
	j.queue.Enqueue(worker.Job{
		Name: "send_districts",
		Run: func(ctx context.Context) error {
			return j.sendDistrictList(ctx, chatID, messageID, branch, specialityID)
		},
	})
}

func (j *Jobs) EnqueueDoctorCards(chatID int64, messageID int, ids []uint) {
	j.queue.Enqueue(worker.Job{
		Name: "send_doctor_cards",
		Run: func(ctx context.Context) error {
			return j.sendDoctorCards(ctx, chatID, messageID, ids)
		},
	})
}

func (j *Jobs) EnqueuePolyclinicCards(chatID int64, messageID int, ids []uint) {
	j.queue.Enqueue(worker.Job{
		Name: "send_polyclinic_cards",
		Run: func(ctx context.Context) error {
			return j.sendPolyclinicCards(ctx, chatID, messageID, ids)
		},
	})
}

func (j *Jobs) EnqueueShareList(chatID int64, shares []entity.Share) {
	j.queue.Enqueue(worker.Job{
		Name: "send_shares",
		Run: func(ctx context.Context) error {
			for i := range shares {
				if err := j.messenger.SendMessage(ctx, chatID, shareText(&shares[i]), nil); err != nil {
					return err
				}
			}
			return nil
		},
	})
}

func (j *Jobs) EnqueueSearchPrompt(chatID int64) {
	j.queue.Enqueue(worker.Job{
		Name: "send_search_prompt",
		Run: func(ctx context.Context) error {
			return j.messenger.SendMessage(ctx, chatID, textSearchPrompt, nil)
		},
	})
}

func (j *Jobs) EnqueueNotFound(chatID int64) {
	j.queue.Enqueue(worker.Job{
		Name: "send_not_found",
		Run: func(ctx context.Context) error {
			return j.messenger.SendMessage(ctx, chatID, textNotFound, nil)
		},
	})
}

func (j *Jobs) sendSpecialityList(ctx context.Context, chatID int64, query string) error {
	var (
		specialities []entity.Speciality
		err          error
	)
	if query == "" {
		specialities, err = j.specialityRepo.FindAll(j.db.WithContext(ctx))
	} else {
		specialities, err = j.specialityRepo.SearchByName(j.db.WithContext(ctx), query)
	}
	if err != nil {
		return err
	}
	if len(specialities) == 0 {
		return j.messenger.SendMessage(ctx, chatID, textNotFound, nil)
	}

	buttons := make([]tgbotapi.InlineKeyboardButton, len(specialities))
	for i, s := range specialities {
		payload := telegram.CallbackPayload{
			Type: telegram.CallbackSpeciality,
			Data: fmt.Sprintf("%d", s.ID),
		}
		buttons[i] = tgbotapi.NewInlineKeyboardButtonData(s.Name, payload.Encode())
	}

	markup := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: batchRows(buttons, specialityRowWidth)}
	return j.messenger.SendMessage(ctx, chatID, textSpecialities, markup)
}

func (j *Jobs) sendClinicOrPrivate(ctx context.Context, chatID int64, messageID int, specialityID uint) error {
	clinic := telegram.CallbackPayload{
		Type: telegram.CallbackClinicOrPrivate,
		Data: fmt.Sprintf("%s,%d", telegram.BranchClinic, specialityID),
	}
	private := telegram.CallbackPayload{
		Type: telegram.CallbackClinicOrPrivate,
		Data: fmt.Sprintf("%s,%d", telegram.BranchPrivate, specialityID),
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(textClinic, clinic.Encode()),
			tgbotapi.NewInlineKeyboardButtonData(textPrivate, private.Encode()),
		),
	)
	return j.messenger.EditMessageText(ctx, chatID, messageID, textClinicOrPrivate, markup)
}

func (j *Jobs) sendDistrictList(ctx context.Context, chatID int64, messageID int, branch string, specialityID uint) error {
	if err := j.messenger.DeleteMessage(ctx, chatID, messageID); err != nil {
		j.log.Warnf("Failed to delete menu message %d: %v", messageID, err)
	}

	districts, err := j.districtRepo.FindAll(j.db.WithContext(ctx))
	if err != nil {
		return err
	}
	if len(districts) == 0 {
		return j.messenger.SendMessage(ctx, chatID, textNotFound, nil)
	}

	buttons := make([]tgbotapi.InlineKeyboardButton, len(districts))
	for i, d := range districts {
		payload := telegram.CallbackPayload{
			Type: telegram.CallbackDistrict,
			Data: fmt.Sprintf("%s,%d,%d", branch, specialityID, d.ID),
		}
		buttons[i] = tgbotapi.NewInlineKeyboardButtonData(d.Name, payload.Encode())
	}

	markup := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: batchRows(buttons, districtRowWidth)}
	return j.messenger.SendMessage(ctx, chatID, textDistricts, markup)
}

func (j *Jobs) sendDoctorCards(ctx context.Context, chatID int64, messageID int, ids []uint) error {
	if err := j.messenger.DeleteMessage(ctx, chatID, messageID); err != nil {
		j.log.Warnf("Failed to delete menu message %d: %v", messageID, err)
	}

	doctors, err := j.doctorRepo.FindByIDs(j.db.WithContext(ctx), ids)
	if err != nil {
		return err
	}

	for _, id := range ids {
		for i := range doctors {
			if doctors[i].ID != id {
				continue
			}
			if err := j.messenger.SendPhoto(ctx, chatID, doctors[i].Image, doctorCaption(&doctors[i])); err != nil {
				return err
			}
			break
		}
	}
	return nil
}

func (j *Jobs) sendPolyclinicCards(ctx context.Context, chatID int64, messageID int, ids []uint) error {
	if err := j.messenger.DeleteMessage(ctx, chatID, messageID); err != nil {
		j.log.Warnf("Failed to delete menu message %d: %v", messageID, err)
	}

	polyclinics, err := j.polyclinicRepo.FindByIDs(j.db.WithContext(ctx), ids)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, id := range ids {
		for i := range polyclinics {
			if polyclinics[i].ID != id {
				continue
			}
			if err := j.messenger.SendPhoto(ctx, chatID, polyclinics[i].Image, polyclinicCaption(&polyclinics[i], now)); err != nil {
				return err
			}
			break
		}
	}
	return nil
}
