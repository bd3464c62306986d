package domain

import "github.com/m04kA/SMC-ConsultationService/pkg/types"

// Slot represents a named time-of-day interval from the global catalog.
// Slots are shared between consultants and administered out of band.
type Slot struct {
	ID        int64
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DurationMinutes returns the slot length in minutes
func (s *Slot) DurationMinutes() int {
	start, err := s.StartTime.Minutes()
	if err != nil {
		return 0
	}
	end, err := s.EndTime.Minutes()
	if err != nil {
		return 0
	}
	return end - start
}

