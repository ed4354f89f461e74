package service

import (
	"emrappt/cmd/internal/domain/entity"
	"emrappt/cmd/internal/utils"
	"emrappt/cmd/internal/utils/apierror"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type AppointmentRepository interface {
	NextID() (int, error)
	Save(appointment *entity.Appointment) error
	FindAll() ([]*entity.Appointment, error)
	FindByID(id int) (*entity.Appointment, error)
	FindByDoctorAndDate(doctor, date string) ([]*entity.Appointment, error)
	UpdateStatus(id int, status entity.Status) (*entity.Appointment, error)
	Delete(id int) (bool, error)
}

// DurationInput accepts the duration either as a JSON number or as a
// numeric string.
type DurationInput string

func (d *DurationInput) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*d = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = DurationInput(s)
		return nil
	}
	*d = DurationInput(raw)
	return nil
}

func (d DurationInput) Minutes() (int, error) {
	return strconv.Atoi(string(d))
}

type CreateAppointmentRequest struct {
	PatientName string        `json:"patientName" validate:"required"`
	Date        string        `json:"date" validate:"required"`
	Time        string        `json:"time" validate:"required"`
	Duration    DurationInput `json:"duration" validate:"required,nonzero"`
	DoctorName  string        `json:"doctorName" validate:"required"`
	Mode        entity.Mode   `json:"mode" validate:"required,apptmode"`
	Status      entity.Status `json:"status" validate:"omitempty,apptstatus"`
	Reason      string        `json:"reason"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	Notes       string        `json:"notes"`
}

type UpdateStatusRequest struct {
	Status entity.Status `json:"status" validate:"required,apptstatus"`
}

type AppointmentResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Duration   int    `json:"duration"`
	DoctorName string `json:"doctorName"`
	Status     string `json:"status"`
	Mode       string `json:"mode"`
	Reason     string `json:"reason"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Notes      string `json:"notes"`
}

type StatsResponse struct {
	TotalPatients     int `json:"totalPatients"`
	AppointmentsToday int `json:"appointmentsToday"`
	ConfirmedToday    int `json:"confirmedToday"`
	UpcomingCount     int `json:"upcomingCount"`
	VideoCallsToday   int `json:"videoCallsToday"`
	TotalDoctors      int `json:"totalDoctors"`
}

type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	Validate        *validator.Validate
	Now             func() time.Time

	// mu serializes read-check-write sequences against the repository.
	mu sync.Mutex
}

func NewAppointmentService(apptRepo AppointmentRepository, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{AppointmentRepo: apptRepo, Validate: validate, Now: time.Now}
}

func (a *DefaultAppointmentService) GetAppointments(filter *AppointmentFilter) ([]*AppointmentResponse, apierror.ErrorResponse) {
	if filter == nil {
		filter = &AppointmentFilter{}
	}
	utils.Sanitize(filter)
	if !filter.Period.IsValid() {
		return nil, apierror.NewValidationError(nil, []string{"period"})
	}

	appts, err := a.AppointmentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	matched := filterAppointments(appts, filter, a.today())
	return toAppointmentResponses(matched), nil
}

func (a *DefaultAppointmentService) GetAppointmentsByPeriod(period Period) ([]*AppointmentResponse, apierror.ErrorResponse) {
	return a.GetAppointments(&AppointmentFilter{Period: period})
}

func (a *DefaultAppointmentService) CreateAppointment(req *CreateAppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	duration, err := req.Duration.Minutes()
	if err != nil {
		return nil, apierror.NewMalformedInputError("duration must be a whole number of minutes")
	}
	if duration < 0 {
		return nil, apierror.NewValidationError(nil, []string{"duration"})
	}

	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, apierror.NewMalformedInputError("date must be formatted as YYYY-MM-DD")
	}

	start, err := utils.MinutesOfDay(req.Time)
	if err != nil {
		return nil, apierror.NewMalformedInputError("time must be formatted as HH:MM")
	}
	end := start + duration

	a.mu.Lock()
	defer a.mu.Unlock()

	candidates, err := a.AppointmentRepo.FindByDoctorAndDate(req.DoctorName, req.Date)
	if err != nil {
		log.Errorf("failed to fetch appointments of %s on %s: %v", req.DoctorName, req.Date, err)
		return nil, apierror.InternalServerError
	}

	conflict, err := findConflict(candidates, start, end)
	if err != nil {
		log.Errorf("failed to check conflicts for %s on %s: %v", req.DoctorName, req.Date, err)
		return nil, apierror.InternalServerError
	}
	if conflict != nil {
		return nil, apierror.NewConflictError(conflict.ID, req.DoctorName, req.Date, conflict.Time, conflict.Duration, conflict.Name)
	}

	id, err := a.AppointmentRepo.NextID()
	if err != nil {
		log.Errorf("failed to allocate appointment id: %v", err)
		return nil, apierror.InternalServerError
	}

	status := req.Status
	if status == "" {
		status = entity.StatusScheduled
	}

	appointment := &entity.Appointment{
		ID:         id,
		Name:       req.PatientName,
		Date:       req.Date,
		Time:       req.Time,
		Duration:   duration,
		DoctorName: req.DoctorName,
		Status:     status,
		Mode:       req.Mode,
		Reason:     req.Reason,
		Phone:      req.Phone,
		Email:      req.Email,
		Notes:      req.Notes,
	}

	err = a.AppointmentRepo.Save(appointment)
	if err != nil {
		log.Errorf("failed to save appointment: %v", err)
		return nil, apierror.InternalServerError
	}
	log.Infof("appointment %d booked with %s on %s at %s", id, appointment.DoctorName, appointment.Date, appointment.Time)
	return toAppointmentResponse(appointment), nil
}

// UpdateStatus changes the status of an appointment in place. Conflicts are
// not re-checked, so moving an appointment out of Cancelled can double-book.
func (a *DefaultAppointmentService) UpdateStatus(id int, req *UpdateStatusRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	appt, err := a.AppointmentRepo.UpdateStatus(id, req.Status)
	if err != nil {
		log.Errorf("failed to update status of appointment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.NotFound
	}
	return toAppointmentResponse(appt), nil
}

func (a *DefaultAppointmentService) DeleteAppointment(id int) apierror.ErrorResponse {
	a.mu.Lock()
	defer a.mu.Unlock()

	deleted, err := a.AppointmentRepo.Delete(id)
	if err != nil {
		log.Errorf("failed to delete appointment by id %d: %v", id, err)
		return apierror.InternalServerError
	}
	if !deleted {
		return apierror.NotFound
	}
	return nil
}

func (a *DefaultAppointmentService) GetDoctors() ([]string, apierror.ErrorResponse) {
	appts, err := a.AppointmentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	doctors := distinct(appts, func(appt *entity.Appointment) string { return appt.DoctorName })
	sort.Strings(doctors)
	return doctors, nil
}

func (a *DefaultAppointmentService) GetStats() (*StatsResponse, apierror.ErrorResponse) {
	appts, err := a.AppointmentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	today := a.today()
	stats := &StatsResponse{
		TotalPatients: len(distinct(appts, func(appt *entity.Appointment) string { return appt.Name })),
		TotalDoctors:  len(distinct(appts, func(appt *entity.Appointment) string { return appt.DoctorName })),
	}
	for _, appt := range appts {
		if PeriodUpcoming.Matches(appt.Date, today) {
			stats.UpcomingCount++
		}
		if !PeriodToday.Matches(appt.Date, today) {
			continue
		}
		stats.AppointmentsToday++
		if appt.Status == entity.StatusConfirmed {
			stats.ConfirmedToday++
		}
		if appt.Mode == entity.ModeVideoCall {
			stats.VideoCallsToday++
		}
	}
	return stats, nil
}

func (a *DefaultAppointmentService) today() string {
	return utils.FormatDate(a.Now())
}

func distinct(appts []*entity.Appointment, key func(*entity.Appointment) string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, appt := range appts {
		k := key(appt)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

func toAppointmentResponses(appts []*entity.Appointment) []*AppointmentResponse {
	response := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		response[i] = toAppointmentResponse(appt)
	}
	return response
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         appt.ID,
		Name:       appt.Name,
		Date:       appt.Date,
		Time:       appt.Time,
		Duration:   appt.Duration,
		DoctorName: appt.DoctorName,
		Status:     string(appt.Status),
		Mode:       string(appt.Mode),
		Reason:     appt.Reason,
		Phone:      appt.Phone,
		Email:      appt.Email,
		Notes:      appt.Notes,
	}
}
