package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar format used in the persisted files (MM/DD/YYYY).
const DateLayout = "01/02/2006"

type Room struct {
	Number int
	Type   string
}

type Customer struct {
	Name       string
	CardNumber string
}

// Reservation is one room on one calendar date. A multi-night stay is a row
// per night, all sharing ID and PaymentConfirmation.
type Reservation struct {
	ID                  string
	Date                time.Time // midnight UTC
	RoomNumber          int
	CustomerName        string
	PaymentConfirmation string
}

type RoomPrice struct {
	Type      string
	DailyRate decimal.Decimal
}

// RoomTypes is the closed set accepted at the interaction boundary. Storage
// keeps the type as a free string so new types can be introduced later.
var RoomTypes = []string{"Single", "Double", "Suite"}

func ValidRoomType(t string) bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// Day strips the time-of-day component, normalizing to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
