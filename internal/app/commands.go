package app

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/SnowSE/finalproject-ricardoayala2510/internal/adapters/observability"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/domain"
)

// Repeat-customer discount: a customer with at least discountThreshold
// reservation rows on the books gets discountRate off. Rows are per-night,
// so a single five-night stay is enough to cross the threshold.
const discountThreshold = 5

var discountRate = decimal.RequireFromString("0.9")

// paymentConfirmationLen is the display length confirmations are cut to.
const paymentConfirmationLen = 30

// AddRoom appends a room. A room number already on record is rejected.
func (e *Engine) AddRoom(number int, roomType string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	defer func() { observability.ObserveOp("add_room", err) }()

	if e.roomExistsLocked(number) {
		err = domain.DuplicateRoomError{RoomNumber: number}
		return err
	}
	e.rooms = append(e.rooms, domain.Room{Number: number, Type: roomType})
	log.Info().Int("room", number).Str("type", roomType).Msg("room added")
	return nil
}

// RoomNumberExists reports whether a room is already on record.
func (e *Engine) RoomNumberExists(number int) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.roomExistsLocked(number)
}

func (e *Engine) roomExistsLocked(number int) bool {
	for _, r := range e.rooms {
		if r.Number == number {
			return true
		}
	}
	return false
}

// AddCustomer appends a customer. Names are not unique; booking the same
// name twice records two customers and reservations match either.
func (e *Engine) AddCustomer(name, cardNumber string) {
	e.mu.Lock()
	e.customers = append(e.customers, domain.Customer{Name: name, CardNumber: cardNumber})
	e.mu.Unlock()
	observability.ObserveOp("add_customer", nil)
	log.Info().Str("customer", name).Msg("customer added")
}

// IsRoomAvailable reports whether no row in reservations holds roomNumber
// on date's calendar day.
func IsRoomAvailable(roomNumber int, date time.Time, reservations []domain.Reservation) bool {
	day := domain.Day(date)
	for _, r := range reservations {
		if r.RoomNumber == roomNumber && domain.Day(r.Date).Equal(day) {
			return false
		}
	}
	return true
}

// IsRoomAvailable queries the session's active reservations.
func (e *Engine) IsRoomAvailable(roomNumber int, date time.Time) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return IsRoomAvailable(roomNumber, date, e.reservations)
}

// AddReservation books roomNumber for every calendar date in
// [checkIn, checkOut] inclusive as one row per night, all sharing a fresh
// reservation id and payment confirmation. The whole range is checked
// before customer existence, and nothing is appended unless every night is
// free: a conflict names the first conflicting date and leaves the books
// untouched.
func (e *Engine) AddReservation(checkIn, checkOut time.Time, roomNumber int, customerName string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	defer func() { observability.ObserveOp("add_reservation", err) }()

	start, end := domain.Day(checkIn), domain.Day(checkOut)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !IsRoomAvailable(roomNumber, d, e.reservations) {
			err = domain.RoomUnavailableError{RoomNumber: roomNumber, Date: d}
			return "", err
		}
	}
	if !e.customerExistsLocked(customerName) {
		err = domain.CustomerNotFoundError{Name: customerName}
		return "", err
	}

	id := uuid.NewString()
	confirmation := uuid.NewString()
	if len(confirmation) > paymentConfirmationLen {
		confirmation = confirmation[:paymentConfirmationLen]
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		e.reservations = append(e.reservations, domain.Reservation{
			ID:                  id,
			Date:                d,
			RoomNumber:          roomNumber,
			CustomerName:        customerName,
			PaymentConfirmation: confirmation,
		})
	}
	log.Info().
		Str("id", id).
		Int("room", roomNumber).
		Str("customer", customerName).
		Str("check_in", start.Format(domain.DateLayout)).
		Str("check_out", end.Format(domain.DateLayout)).
		Msg("reservation added")
	return id, nil
}

// AddReservationOn is the single-night form: a range of exactly one day.
func (e *Engine) AddReservationOn(date time.Time, roomNumber int, customerName string) (string, error) {
	return e.AddReservation(date, date, roomNumber, customerName)
}

func (e *Engine) customerExistsLocked(name string) bool {
	for _, c := range e.customers {
		if c.Name == name {
			return true
		}
	}
	return false
}

// CalculateDiscountedPrice applies the repeat-customer discount to
// originalPrice. The count is per-night rows for customerName across all
// time, past and future alike.
func (e *Engine) CalculateDiscountedPrice(originalPrice decimal.Decimal, customerName string) decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()

	count := 0
	for _, r := range e.reservations {
		if r.CustomerName == customerName {
			count++
		}
	}
	if count >= discountThreshold {
		return originalPrice.Mul(discountRate)
	}
	return originalPrice
}

// RefundReservation moves every row sharing id out of the active set and
// archives them to the refund store. The archive append happens right away;
// the active file shrinks at the next save point.
func (e *Engine) RefundReservation(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	defer func() { observability.ObserveOp("refund_reservation", err) }()

	var kept, refunded []domain.Reservation
	for _, r := range e.reservations {
		if r.ID == id {
			refunded = append(refunded, r)
		} else {
			kept = append(kept, r)
		}
	}
	if len(refunded) == 0 {
		err = domain.ReservationNotFoundError{ID: id}
		return err
	}
	if err = e.store.AppendRefunds(refunded); err != nil {
		return err
	}
	e.reservations = kept
	log.Info().Str("id", id).Int("nights", len(refunded)).Msg("reservation refunded")
	return nil
}

// ChangeRoomPrice updates the daily rate for roomType in place. An unknown
// type is an error, never an insert.
func (e *Engine) ChangeRoomPrice(roomType string, newRate decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	defer func() { observability.ObserveOp("change_room_price", err) }()

	for i, p := range e.prices {
		if p.Type == roomType {
			e.prices[i].DailyRate = newRate
			log.Info().Str("type", roomType).Str("rate", newRate.String()).Msg("room price changed")
			return nil
		}
	}
	err = domain.RoomTypeNotFoundError{Type: roomType}
	return err
}

// GetRoomPrice returns the daily rate for roomType.
func (e *Engine) GetRoomPrice(roomType string) (decimal.Decimal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, p := range e.prices {
		if p.Type == roomType {
			return p.DailyRate, nil
		}
	}
	return decimal.Decimal{}, domain.RoomTypeNotFoundError{Type: roomType}
}
