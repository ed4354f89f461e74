package memory

import (
	"emrappt/cmd/internal/domain/entity"
	"sync"
)

// AppointmentStore keeps appointments in insertion order in process memory.
// Records handed in and out are copies, so callers never alias the store's state.
type AppointmentStore struct {
	mu     sync.RWMutex
	appts  []*entity.Appointment
	nextID int
}

// NewAppointmentStore returns a store holding the given records. The id counter
// starts right above the highest seeded id.
func NewAppointmentStore(seed []*entity.Appointment) *AppointmentStore {
	s := &AppointmentStore{nextID: 1}
	for _, appt := range seed {
		s.appts = append(s.appts, appt.Clone())
		if appt.ID >= s.nextID {
			s.nextID = appt.ID + 1
		}
	}
	return s
}

func (s *AppointmentStore) NextID() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	return id, nil
}

func (s *AppointmentStore) Save(appt *entity.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appts = append(s.appts, appt.Clone())
	if appt.ID >= s.nextID {
		s.nextID = appt.ID + 1
	}
	return nil
}

func (s *AppointmentStore) FindAll() ([]*entity.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Appointment, len(s.appts))
	for i, appt := range s.appts {
		out[i] = appt.Clone()
	}
	return out, nil
}

func (s *AppointmentStore) FindByID(id int) (*entity.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.appts[i].Clone(), nil
	}
	return nil, nil
}

func (s *AppointmentStore) FindByDoctorAndDate(doctor, date string) ([]*entity.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Appointment
	for _, appt := range s.appts {
		if appt.DoctorName == doctor && appt.Date == date {
			out = append(out, appt.Clone())
		}
	}
	return out, nil
}

// UpdateStatus returns nil when no appointment has the given id.
func (s *AppointmentStore) UpdateStatus(id int, status entity.Status) (*entity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	s.appts[i].Status = status
	return s.appts[i].Clone(), nil
}

func (s *AppointmentStore) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.appts = append(s.appts[:i], s.appts[i+1:]...)
	return true, nil
}

func (s *AppointmentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appts)
}

// indexOf must be called with mu held.
func (s *AppointmentStore) indexOf(id int) int {
	for i, appt := range s.appts {
		if appt.ID == id {
			return i
		}
	}
	return -1
}
