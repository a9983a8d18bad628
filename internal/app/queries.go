package app

import (
	"time"

	"github.com/SnowSE/finalproject-ricardoayala2510/internal/domain"
)

// Read-only views over the working set. Results are copies in insertion
// order; callers can hold them across later mutations.

// AvailableRoomSearch returns the numbers of every room with no reservation
// row on date, in room insertion order.
func (e *Engine) AvailableRoomSearch(date time.Time) []int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	day := domain.Day(date)
	reserved := make(map[int]bool)
	for _, r := range e.reservations {
		if domain.Day(r.Date).Equal(day) {
			reserved[r.RoomNumber] = true
		}
	}

	available := make([]int, 0, len(e.rooms))
	for _, room := range e.rooms {
		if !reserved[room.Number] {
			available = append(available, room.Number)
		}
	}
	return available
}

// ReservationReport returns the rows on date's calendar day.
func (e *Engine) ReservationReport(date time.Time) []domain.Reservation {
	e.mu.RLock()
	defer e.mu.RUnlock()

	day := domain.Day(date)
	var out []domain.Reservation
	for _, r := range e.reservations {
		if domain.Day(r.Date).Equal(day) {
			out = append(out, r)
		}
	}
	return out
}

// CustomerReservationReport returns customerName's rows dated today or
// later. "Today" is read at call time, so the report shifts with the
// calendar.
func (e *Engine) CustomerReservationReport(customerName string) []domain.Reservation {
	e.mu.RLock()
	defer e.mu.RUnlock()

	today := domain.Day(e.now())
	var out []domain.Reservation
	for _, r := range e.reservations {
		if r.CustomerName == customerName && !domain.Day(r.Date).Before(today) {
			out = append(out, r)
		}
	}
	return out
}

// CalculateUtilizationRate returns the percentage of rooms reserved on
// date: rows on date / total rooms * 100. A hotel with no rooms is
// ErrNoRooms, not a division by zero.
func (e *Engine) CalculateUtilizationRate(date time.Time) (float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.utilizationLocked(date)
}

func (e *Engine) utilizationLocked(date time.Time) (float64, error) {
	if len(e.rooms) == 0 {
		return 0, domain.ErrNoRooms
	}
	day := domain.Day(date)
	reserved := 0
	for _, r := range e.reservations {
		if domain.Day(r.Date).Equal(day) {
			reserved++
		}
	}
	return float64(reserved) / float64(len(e.rooms)) * 100, nil
}

// CalculateUtilizationRateRange computes the rate for each calendar date in
// [start, end] inclusive, one entry per day.
func (e *Engine) CalculateUtilizationRateRange(start, end time.Time) ([]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []float64
	for d := domain.Day(start); !d.After(domain.Day(end)); d = d.AddDate(0, 0, 1) {
		rate, err := e.utilizationLocked(d)
		if err != nil {
			return nil, err
		}
		out = append(out, rate)
	}
	return out, nil
}

// Rooms returns the room collection in insertion order.
func (e *Engine) Rooms() []domain.Room {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.Room, len(e.rooms))
	copy(out, e.rooms)
	return out
}

// Prices returns the current price list.
func (e *Engine) Prices() []domain.RoomPrice {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.RoomPrice, len(e.prices))
	copy(out, e.prices)
	return out
}
