package reservation

import "fmt"

// ===============================
// Slot Grid
// ===============================

// The bookable day is fixed for every barber and every date: half-hour
// slots from 09:00:00 up to but not including 18:00:00.
const (
	gridStartMinute = 9 * 60
	gridEndMinute   = 18 * 60
	slotStepMinutes = 30
)

// SlotGrid returns the full day grid as HH:MM:SS strings in ascending order.
func SlotGrid() []string {
	grid := make([]string, 0, (gridEndMinute-gridStartMinute)/slotStepMinutes)
	for m := gridStartMinute; m < gridEndMinute; m += slotStepMinutes {
		grid = append(grid, fmt.Sprintf("%02d:%02d:00", m/60, m%60))
	}
	return grid
}

// AvailableSlots subtracts the booked times from the full grid, preserving
// grid order. Booked times that do not fall on the grid are ignored.
func AvailableSlots(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	available := make([]string, 0, (gridEndMinute-gridStartMinute)/slotStepMinutes)
	for _, slot := range SlotGrid() {
		if _, ok := taken[slot]; ok {
			continue
		}
		available = append(available, slot)
	}
	return available
}
