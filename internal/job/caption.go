package job

import (
	"fmt"
	"strings"
	"time"

	"doctorbot/internal/domain/entity"
)

// doctorCaption builds the HTML card a doctor detail message carries
func doctorCaption(d *entity.Doctor) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>%s</b>\n", d.FullName())
	fmt.Fprintf(&b, "Speciality: <i>%s</i>\n", d.Speciality.Name)
	fmt.Fprintf(&b, "Position: <i>%s</i>\n", d.Position.Name)

	if len(d.Polyclinics) > 0 {
		b.WriteString("Polyclinics:\n")
		for _, p := range d.Polyclinics {
			if len(p.Addresses) > 0 {
				fmt.Fprintf(&b, "<i>%s (%s)</i>\n", p.Name, joinAddresses(p.Addresses))
			} else {
				fmt.Fprintf(&b, "<i>%s</i>\n", p.Name)
			}
		}
	}

	fmt.Fprintf(&b, "Experience: <i>%d years</i>\n", d.Experience)
	fmt.Fprintf(&b, "Cost: <i>%s uah</i>\n", d.Cost.StringFixed(2))

	if len(d.Schedules) > 0 {
		b.WriteString("Schedule:\n")
		for _, s := range d.Schedules {
			fmt.Fprintf(&b, "<i>%s - %s</i>\n", s.Label(), s.Polyclinic.Name)
		}
	}

	fmt.Fprintf(&b, "Phone: <i>%s</i>\n", d.Phone)

	return b.String()
}

// polyclinicCaption builds the HTML card a polyclinic detail message carries
func polyclinicCaption(p *entity.Polyclinic, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>%s</b>\n", p.Name)
	if len(p.Addresses) > 0 {
		fmt.Fprintf(&b, "Address: <i>%s</i>\n", joinAddresses(p.Addresses))
	}

	site := p.SiteURL
	if site == "" {
		site = "-"
	}
	fmt.Fprintf(&b, "Site: <a href=\"%s\">%s</a>\n", site, site)
	fmt.Fprintf(&b, "Work time: <i>%s</i>\n", p.WorkTime())

	if len(p.Phones) > 0 {
		b.WriteString("Phones:\n")
		for _, phone := range p.Phones {
			fmt.Fprintf(&b, "<i>%s</i>\n", phone.Number)
		}
	}

	active := activeShares(p.Shares, now)
	if len(active) > 0 {
		b.WriteString("Promotions:\n")
		for _, s := range active {
			fmt.Fprintf(&b, "<i>%s</i>\n", s.Description)
		}
	}

	return b.String()
}

// shareText formats one promotional campaign message
func shareText(s *entity.Share) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>%s</b>\n", s.Polyclinic.Name)
	fmt.Fprintf(&b, "%s\n", s.Description)
	fmt.Fprintf(&b, "Discount: <i>%s uah</i>\n", s.Sum.StringFixed(2))
	fmt.Fprintf(&b, "Valid: <i>%s - %s</i>\n",
		s.StartDate.Format("02.01.2006"), s.EndDate.Format("02.01.2006"))

	return b.String()
}

func joinAddresses(addresses []entity.Address) string {
	values := make([]string, len(addresses))
	for i, a := range addresses {
		values[i] = a.Value
	}
	return strings.Join(values, ", ")
}

func activeShares(shares []entity.Share, now time.Time) []entity.Share {
	var active []entity.Share
	for i := range shares {
		if shares[i].IsActive(now) {
			active = append(active, shares[i])
		}
	}
	return active
}
