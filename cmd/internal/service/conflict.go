package service

import (
	"emrappt/cmd/internal/domain/entity"
	"emrappt/cmd/internal/utils"
	"fmt"
)

// findConflict returns the first non-cancelled candidate whose
// [time, time+duration) window overlaps [start, end), or nil. Windows that
// only touch at an endpoint do not overlap.
func findConflict(candidates []*entity.Appointment, start, end int) (*entity.Appointment, error) {
	for _, appt := range candidates {
		if appt.IsCancelled() {
			continue
		}

		existingStart, err := utils.MinutesOfDay(appt.Time)
		if err != nil {
			return nil, fmt.Errorf("appointment %d has unreadable time %q: %w", appt.ID, appt.Time, err)
		}
		existingEnd := existingStart + appt.Duration

		if start < existingEnd && existingStart < end {
			return appt, nil
		}
	}
	return nil, nil
}
