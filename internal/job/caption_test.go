package job

import (
	"strings"
	"testing"
	"time"

	"doctorbot/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestDoctorCaption(t *testing.T) {
	doctor := &entity.Doctor{
		FirstName:    "Anna",
		LastName:     "Petrenko",
		PaternalName: "Ivanivna",
		Phone:        "+380501234567",
		Experience:   12,
		Cost:         decimal.NewFromInt(450),
		Speciality:   entity.Speciality{Name: "Cardiology"},
		Position:     entity.Position{Name: "Senior physician"},
		Polyclinics: []entity.Polyclinic{
			{Name: "Central", Addresses: []entity.Address{{Value: "Main st. 1"}, {Value: "Side st. 2"}}},
		},
		Schedules: []entity.Schedule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "13:00", Polyclinic: entity.Polyclinic{Name: "Central"}},
		},
	}

	caption := doctorCaption(doctor)

	for _, want := range []string{
		"<b>Petrenko Anna Ivanivna</b>",
		"Speciality: <i>Cardiology</i>",
		"Position: <i>Senior physician</i>",
		"Central (Main st. 1, Side st. 2)",
		"Experience: <i>12 years</i>",
		"Cost: <i>450.00 uah</i>",
		"Monday 09:00-13:00 - Central",
		"Phone: <i>+380501234567</i>",
	} {
		if !strings.Contains(caption, want) {
			t.Errorf("caption missing %q:\n%s", want, caption)
		}
	}
}

func TestPolyclinicCaptionSkipsExpiredShares(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	polyclinic := &entity.Polyclinic{
		Name:      "Northside",
		WorkStart: "08:00",
		WorkEnd:   "20:00",
		Phones:    []entity.Phone{{Number: "+380441112233"}},
		Shares: []entity.Share{
			{Description: "Free checkup", StartDate: now.AddDate(0, 0, -5), EndDate: now.AddDate(0, 0, 5)},
			{Description: "Old promo", StartDate: now.AddDate(0, -2, 0), EndDate: now.AddDate(0, -1, 0)},
		},
	}

	caption := polyclinicCaption(polyclinic, now)

	if !strings.Contains(caption, "Free checkup") {
		t.Errorf("caption missing active promotion:\n%s", caption)
	}
	if strings.Contains(caption, "Old promo") {
		t.Errorf("caption lists expired promotion:\n%s", caption)
	}
	if !strings.Contains(caption, "Work time: <i>08:00 - 20:00</i>") {
		t.Errorf("caption missing work time:\n%s", caption)
	}
}

func TestShareText(t *testing.T) {
	share := &entity.Share{
		Description: "Spring discount",
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		Sum:         decimal.NewFromFloat(99.5),
		Polyclinic:  entity.Polyclinic{Name: "Central"},
	}

	text := shareText(share)

	for _, want := range []string{
		"<b>Central</b>",
		"Spring discount",
		"Discount: <i>99.50 uah</i>",
		"Valid: <i>01.03.2026 - 15.04.2026</i>",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("share text missing %q:\n%s", want, text)
		}
	}
}
