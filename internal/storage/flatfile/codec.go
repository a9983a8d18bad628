package flatfile

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SnowSE/finalproject-ricardoayala2510/internal/domain"
)

// Line shapes, one record per line, no header:
//
//	Rooms:        room_number,room_type
//	Customers:    name,card_number
//	Reservations: id,MM/DD/YYYY,room_number,customer_name,payment_confirmation
//	RoomPrices:   room_type,daily_rate
//	Refunds:      same as Reservations

func parseRoom(fields []string) (domain.Room, error) {
	if len(fields) < 2 {
		return domain.Room{}, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Room{}, err
	}
	return domain.Room{Number: n, Type: fields[1]}, nil
}

func formatRoom(r domain.Room) string {
	return fmt.Sprintf("%d,%s", r.Number, r.Type)
}

func parseCustomer(fields []string) (domain.Customer, error) {
	if len(fields) < 2 {
		return domain.Customer{}, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	return domain.Customer{Name: fields[0], CardNumber: fields[1]}, nil
}

func formatCustomer(c domain.Customer) string {
	return fmt.Sprintf("%s,%s", c.Name, c.CardNumber)
}

func parseReservation(fields []string) (domain.Reservation, error) {
	if len(fields) < 5 {
		return domain.Reservation{}, fmt.Errorf("want 5 fields, got %d", len(fields))
	}
	date, err := time.ParseInLocation(domain.DateLayout, fields[1], time.UTC)
	if err != nil {
		return domain.Reservation{}, err
	}
	room, err := strconv.Atoi(fields[2])
	if err != nil {
		return domain.Reservation{}, err
	}
	return domain.Reservation{
		ID:                  fields[0],
		Date:                date,
		RoomNumber:          room,
		CustomerName:        fields[3],
		PaymentConfirmation: fields[4],
	}, nil
}

func formatReservation(r domain.Reservation) string {
	return fmt.Sprintf("%s,%s,%d,%s,%s",
		r.ID, r.Date.Format(domain.DateLayout), r.RoomNumber, r.CustomerName, r.PaymentConfirmation)
}

func parsePrice(fields []string) (domain.RoomPrice, error) {
	if len(fields) < 2 {
		return domain.RoomPrice{}, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	rate, err := decimal.NewFromString(fields[1])
	if err != nil {
		return domain.RoomPrice{}, err
	}
	return domain.RoomPrice{Type: fields[0], DailyRate: rate}, nil
}

func formatPrice(p domain.RoomPrice) string {
	return fmt.Sprintf("%s,%s", p.Type, p.DailyRate.String())
}
