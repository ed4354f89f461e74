package repository

import (
	"emrappt/cmd/internal/domain/entity"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"sync"
)

type DefaultAppointmentRepository struct {
	db *gorm.DB

	mu     sync.Mutex
	nextID int
}

// NewAppointmentRepository seeds the id counter from the highest stored id so
// that ids are never handed out twice, even after deletes.
func NewAppointmentRepository(db *gorm.DB) (*DefaultAppointmentRepository, error) {
	var maxID int
	err := db.Model(&entity.Appointment{}).
		Select("COALESCE(MAX(id), 0)").
		Row().
		Scan(&maxID)
	if err != nil {
		return nil, fmt.Errorf("read max appointment id: %w", err)
	}
	return &DefaultAppointmentRepository{db: db, nextID: maxID + 1}, nil
}

func (a *DefaultAppointmentRepository) NextID() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextID
	a.nextID++
	return id, nil
}

func (a *DefaultAppointmentRepository) FindByID(id int) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := a.db.First(&appt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (a *DefaultAppointmentRepository) FindAll() ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.Order("id asc").Find(&appts).Error
	return appts, err
}

func (a *DefaultAppointmentRepository) FindByDoctorAndDate(doctor, date string) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.
		Where(map[string]any{"doctor_name": doctor, "date": date}).
		Order("id asc").
		Find(&appts).Error
	return appts, err
}

func (a *DefaultAppointmentRepository) Save(appointment *entity.Appointment) error {
	a.mu.Lock()
	if appointment.ID >= a.nextID {
		a.nextID = appointment.ID + 1
	}
	a.mu.Unlock()

	return a.db.Create(appointment).Error
}

func (a *DefaultAppointmentRepository) UpdateStatus(id int, status entity.Status) (*entity.Appointment, error) {
	res := a.db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return a.FindByID(id)
}

func (a *DefaultAppointmentRepository) Delete(id int) (bool, error) {
	res := a.db.Delete(&entity.Appointment{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
