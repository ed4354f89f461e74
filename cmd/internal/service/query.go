package service

import "emrappt/cmd/internal/domain/entity"

type Period string

const (
	PeriodAll      Period = "all"
	PeriodToday    Period = "today"
	PeriodUpcoming Period = "upcoming"
	PeriodPast     Period = "past"
)

func (p Period) IsValid() bool {
	switch p {
	case "", PeriodAll, PeriodToday, PeriodUpcoming, PeriodPast:
		return true
	}
	return false
}

// Matches classifies a YYYY-MM-DD date against today. Both sides are
// fixed-width, so string order is chronological order.
func (p Period) Matches(date, today string) bool {
	switch p {
	case PeriodToday:
		return date == today
	case PeriodUpcoming:
		return date > today
	case PeriodPast:
		return date < today
	default:
		return true
	}
}

// AppointmentFilter holds the optional query predicates. Empty fields match
// everything; set fields are combined with AND.
type AppointmentFilter struct {
	Date       string `query:"date"`
	Status     string `query:"status"`
	DoctorName string `query:"doctorName"`
	Period     Period `query:"period"`
}

func (f *AppointmentFilter) Matches(appt *entity.Appointment, today string) bool {
	if f.Date != "" && appt.Date != f.Date {
		return false
	}
	if f.Status != "" && string(appt.Status) != f.Status {
		return false
	}
	if f.DoctorName != "" && appt.DoctorName != f.DoctorName {
		return false
	}
	return f.Period.Matches(appt.Date, today)
}

func filterAppointments(appts []*entity.Appointment, filter *AppointmentFilter, today string) []*entity.Appointment {
	out := make([]*entity.Appointment, 0, len(appts))
	for _, appt := range appts {
		if filter.Matches(appt, today) {
			out = append(out, appt)
		}
	}
	return out
}
