package memory

import (
	"emrappt/cmd/internal/domain/entity"
	"sync"
	"testing"
)

func TestNewAppointmentStore_SeedsCounterAboveFixtures(t *testing.T) {
	s := NewAppointmentStore(entity.Fixtures())

	if s.Len() != 12 {
		t.Fatalf("expected 12 seeded appointments, got %d", s.Len())
	}
	id, err := s.NextID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 13 {
		t.Errorf("expected first id 13, got %d", id)
	}
	next, _ := s.NextID()
	if next != 14 {
		t.Errorf("expected second id 14, got %d", next)
	}
}

func TestNewAppointmentStore_EmptyStartsAtOne(t *testing.T) {
	s := NewAppointmentStore(nil)
	id, _ := s.NextID()
	if id != 1 {
		t.Errorf("expected 1, got %d", id)
	}
}

func TestAppointmentStore_FindAllKeepsInsertionOrder(t *testing.T) {
	s := NewAppointmentStore(entity.Fixtures())
	_ = s.Save(&entity.Appointment{ID: 13, Name: "Late Patient", Date: "2020-01-01"})

	all, err := s.FindAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 13 {
		t.Fatalf("expected 13, got %d", len(all))
	}
	for i, appt := range all {
		if appt.ID != i+1 {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, appt.ID)
		}
	}
}

func TestAppointmentStore_ReturnsCopies(t *testing.T) {
	s := NewAppointmentStore(entity.Fixtures())

	appt, _ := s.FindByID(1)
	appt.Status = entity.StatusCancelled

	again, _ := s.FindByID(1)
	if again.Status != entity.StatusConfirmed {
		t.Errorf("store state leaked through returned pointer: %s", again.Status)
	}
}

func TestAppointmentStore_FindByID_Absent(t *testing.T) {
	s := NewAppointmentStore(entity.Fixtures())
	appt, err := s.FindByID(999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt != nil {
		t.Errorf("expected nil, got %+v", appt)
	}
}

func TestAppointmentStore_FindByDoctorAndDate(t *testing.T) {
	s := NewAppointmentStore(entity.Fixtures())
	appts, _ := s.FindByDoctorAndDate("Dr. Rajesh Kumar", "2026-01-30")
	if len(appts) != 2 {
		t.Fatalf("expected 2, got %d", len(appts))
	}
	if appts[0].ID != 1 || appts[1].ID != 3 {
		t.Errorf("unexpected ids %d, %d", appts[0].ID, appts[1].ID)
	}
}

func TestAppointmentStore_UpdateStatus(t *testing.T) {
	s := NewAppointmentStore(entity.Fixtures())

	updated, err := s.UpdateStatus(2, entity.StatusConfirmed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil || updated.Status != entity.StatusConfirmed {
		t.Fatalf("expected confirmed appointment, got %+v", updated)
	}

	missing, err := s.UpdateStatus(404, entity.StatusConfirmed)
	if err != nil || missing != nil {
		t.Errorf("expected nil, nil for unknown id, got %+v, %v", missing, err)
	}
}

func TestAppointmentStore_Delete(t *testing.T) {
	s := NewAppointmentStore(entity.Fixtures())

	ok, _ := s.Delete(5)
	if !ok {
		t.Fatal("expected delete to succeed")
	}
	if appt, _ := s.FindByID(5); appt != nil {
		t.Error("expected appointment 5 to be gone")
	}
	if s.Len() != 11 {
		t.Errorf("expected 11, got %d", s.Len())
	}

	ok, _ = s.Delete(5)
	if ok {
		t.Error("expected second delete to fail")
	}
	if s.Len() != 11 {
		t.Errorf("failed delete changed size: %d", s.Len())
	}
}

func TestAppointmentStore_IDsNotReusedAfterDelete(t *testing.T) {
	s := NewAppointmentStore(entity.Fixtures())
	id, _ := s.NextID()
	_ = s.Save(&entity.Appointment{ID: id})
	_, _ = s.Delete(id)

	next, _ := s.NextID()
	if next == id {
		t.Errorf("id %d was reused", id)
	}
}

func TestAppointmentStore_NextIDConcurrent(t *testing.T) {
	s := NewAppointmentStore(nil)

	const n = 50
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := s.NextID()
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
}
