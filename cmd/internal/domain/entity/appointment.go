package entity

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusConfirmed Status = "Confirmed"
	StatusUpcoming  Status = "Upcoming"
	StatusCancelled Status = "Cancelled"
)

var statuses = []Status{StatusScheduled, StatusConfirmed, StatusUpcoming, StatusCancelled}

type Mode string

const (
	ModeInPerson  Mode = "In-Person"
	ModeVideoCall Mode = "Video Call"
	ModePhoneCall Mode = "Phone Call"
)

var modes = []Mode{ModeInPerson, ModeVideoCall, ModePhoneCall}

func (s Status) IsValid() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

func (m Mode) IsValid() bool {
	for _, known := range modes {
		if m == known {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID         int    `gorm:"primaryKey;autoIncrement:false"`
	Name       string `gorm:"not null"`
	Date       string `gorm:"not null;index:idx_doctor_date"` // YYYY-MM-DD
	Time       string `gorm:"not null"`                       // HH:MM
	Duration   int    `gorm:"not null"`                       // minutes
	DoctorName string `gorm:"not null;index:idx_doctor_date"`
	Status     Status `gorm:"not null"`
	Mode       Mode   `gorm:"not null"`
	Reason     string
	Phone      string
	Email      string
	Notes      string
}

// IsCancelled reports whether the appointment is excluded from conflict checks.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

func (a *Appointment) Clone() *Appointment {
	c := *a
	return &c
}
