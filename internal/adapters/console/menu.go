package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SnowSE/finalproject-ricardoayala2510/internal/app"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/domain"
)

// Menu is the numbered interactive surface over the engine. Every engine
// error is reported and the session continues; bad input is rejected in a
// single parse-validate-report pass, never looped on.
type Menu struct {
	engine *app.Engine
	in     *bufio.Reader
	out    io.Writer
}

func New(engine *app.Engine, in io.Reader, out io.Writer) *Menu {
	return &Menu{engine: engine, in: bufio.NewReader(in), out: out}
}

// Run loops until the exit choice. The caller owns the final save.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out, "\nHotel Management System")
		fmt.Fprintln(m.out, "1. Add New Room")
		fmt.Fprintln(m.out, "2. Add New Customer")
		fmt.Fprintln(m.out, "3. Add New Reservation")
		fmt.Fprintln(m.out, "4. Available Room Search")
		fmt.Fprintln(m.out, "5. Reservation Report")
		fmt.Fprintln(m.out, "6. Change Room Price")
		fmt.Fprintln(m.out, "7. Refund Reservation")
		fmt.Fprintln(m.out, "8. Utilization Report")
		fmt.Fprintln(m.out, "9. Exit")
		fmt.Fprint(m.out, "Enter your choice: ")

		switch strings.TrimSpace(m.readLine()) {
		case "1":
			m.addRoom()
		case "2":
			m.addCustomer()
		case "3":
			m.addReservation()
		case "4":
			m.availableRoomSearch()
		case "5":
			m.reportMenu()
		case "6":
			m.changeRoomPrice()
		case "7":
			m.refundReservation()
		case "8":
			m.utilizationMenu()
		case "9":
			fmt.Fprintln(m.out, "Exiting.")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter a number between 1 and 9.")
		}
	}
}

func (m *Menu) addRoom() {
	fmt.Fprint(m.out, "Enter the type of the new room (Single, Double, Suite): ")
	roomType := strings.TrimSpace(m.readLine())
	if !domain.ValidRoomType(roomType) {
		fmt.Fprintln(m.out, "Invalid room type.")
		return
	}

	number, ok := m.promptInt("Enter the new room number: ")
	if !ok {
		return
	}
	if err := m.engine.AddRoom(number, roomType); err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return
	}
	fmt.Fprintf(m.out, "Room %d (%s) added successfully.\n", number, roomType)
}

func (m *Menu) addCustomer() {
	fmt.Fprint(m.out, "Enter the new customer name (more than 4 characters): ")
	name := strings.TrimSpace(m.readLine())
	if len(name) <= 4 {
		fmt.Fprintln(m.out, "Invalid input. Customer name must have more than 4 characters.")
		return
	}
	fmt.Fprint(m.out, "Enter the new card number (more than 4 characters): ")
	card := strings.TrimSpace(m.readLine())
	if len(card) <= 4 {
		fmt.Fprintln(m.out, "Invalid input. Card number must have more than 4 characters.")
		return
	}
	m.engine.AddCustomer(name, card)
	fmt.Fprintf(m.out, "Customer %s added successfully.\n", name)
}

func (m *Menu) addReservation() {
	checkIn, ok := m.promptDate("Enter the check-in date (MM/DD/YYYY): ")
	if !ok {
		return
	}
	checkOut, ok := m.promptDate("Enter the check-out date (MM/DD/YYYY): ")
	if !ok {
		return
	}
	if checkOut.Before(checkIn) {
		fmt.Fprintln(m.out, "Invalid input. Check-out date is before check-in date.")
		return
	}

	fmt.Fprintln(m.out, "Rooms:")
	fmt.Fprint(m.out, roomText(m.engine.Rooms()))
	roomNumber, ok := m.promptInt("Enter the room number for the reservation: ")
	if !ok {
		return
	}
	fmt.Fprint(m.out, "Enter the customer name for the reservation: ")
	customerName := strings.TrimSpace(m.readLine())

	id, err := m.engine.AddReservation(checkIn, checkOut, roomNumber, customerName)
	if err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return
	}
	fmt.Fprintf(m.out, "Reservation %s added successfully.\n", id)

	// Price echo: nights x daily rate, with the repeat-customer discount.
	for _, room := range m.engine.Rooms() {
		if room.Number != roomNumber {
			continue
		}
		rate, err := m.engine.GetRoomPrice(room.Type)
		if err != nil {
			fmt.Fprintln(m.out, "Error:", err)
			return
		}
		nights := int(domain.Day(checkOut).Sub(domain.Day(checkIn)).Hours()/24) + 1
		total := m.engine.CalculateDiscountedPrice(rate.Mul(decimal.NewFromInt(int64(nights))), customerName)
		fmt.Fprintf(m.out, "Total Price: $%s\n", total.StringFixed(2))
		return
	}
}

func (m *Menu) availableRoomSearch() {
	date, ok := m.promptDate("Enter the search date (MM/DD/YYYY): ")
	if !ok {
		return
	}
	fmt.Fprintln(m.out, "Available Rooms:")
	for _, n := range m.engine.AvailableRoomSearch(date) {
		fmt.Fprintf(m.out, "Room %d\n", n)
	}
}

func (m *Menu) reportMenu() {
	fmt.Fprintln(m.out, "1. Reservation Report for Date")
	fmt.Fprintln(m.out, "2. Customer Reservation Report")
	fmt.Fprintln(m.out, "3. Back to Main Menu")
	fmt.Fprint(m.out, "Enter your choice: ")

	switch strings.TrimSpace(m.readLine()) {
	case "1":
		date, ok := m.promptDate("Enter the report date (MM/DD/YYYY): ")
		if !ok {
			return
		}
		m.printReservations(m.engine.ReservationReport(date))
	case "2":
		fmt.Fprint(m.out, "Enter the customer name: ")
		name := strings.TrimSpace(m.readLine())
		m.printReservations(m.engine.CustomerReservationReport(name))
	case "3":
		return
	default:
		fmt.Fprintln(m.out, "Invalid choice. Please enter a number between 1 and 3.")
	}
}

func (m *Menu) changeRoomPrice() {
	fmt.Fprintln(m.out, "Current Prices:")
	for _, p := range m.engine.Prices() {
		fmt.Fprintf(m.out, "%s: $%s\n", p.Type, p.DailyRate.StringFixed(2))
	}
	fmt.Fprint(m.out, "Enter the room type: ")
	roomType := strings.TrimSpace(m.readLine())

	fmt.Fprint(m.out, "Enter the new daily rate: ")
	rate, err := decimal.NewFromString(strings.TrimSpace(m.readLine()))
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input. Please enter a valid daily rate.")
		return
	}
	if err := m.engine.ChangeRoomPrice(roomType, rate); err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return
	}
	fmt.Fprintln(m.out, "Room price updated successfully.")
}

func (m *Menu) refundReservation() {
	fmt.Fprint(m.out, "Enter the reservation number to refund: ")
	id := strings.TrimSpace(m.readLine())
	if err := m.engine.RefundReservation(id); err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return
	}
	fmt.Fprintf(m.out, "Reservation %s refunded successfully.\n", id)
}

func (m *Menu) utilizationMenu() {
	fmt.Fprintln(m.out, "1. Utilization Report for Day")
	fmt.Fprintln(m.out, "2. Utilization Report for Date Range")
	fmt.Fprintln(m.out, "3. Back to Main Menu")
	fmt.Fprint(m.out, "Enter your choice: ")

	switch strings.TrimSpace(m.readLine()) {
	case "1":
		date, ok := m.promptDate("Enter the date for the Utilization Report (MM/DD/YYYY): ")
		if !ok {
			return
		}
		rate, err := m.engine.CalculateUtilizationRate(date)
		if err != nil {
			fmt.Fprintln(m.out, "Error:", err)
			return
		}
		fmt.Fprintf(m.out, "Utilization Rate for %s: %.2f%%\n", date.Format(domain.DateLayout), rate)
	case "2":
		start, ok := m.promptDate("Enter the start date for the Utilization Report (MM/DD/YYYY): ")
		if !ok {
			return
		}
		end, ok := m.promptDate("Enter the end date for the Utilization Report (MM/DD/YYYY): ")
		if !ok {
			return
		}
		rates, err := m.engine.CalculateUtilizationRateRange(start, end)
		if err != nil {
			fmt.Fprintln(m.out, "Error:", err)
			return
		}
		for i, r := range rates {
			d := domain.Day(start).AddDate(0, 0, i)
			fmt.Fprintf(m.out, "%s: %.2f%%\n", d.Format(domain.DateLayout), r)
		}
	case "3":
		return
	default:
		fmt.Fprintln(m.out, "Invalid choice. Please enter a number between 1 and 3.")
	}
}

func (m *Menu) printReservations(rows []domain.Reservation) {
	if len(rows) == 0 {
		fmt.Fprintln(m.out, "No reservations found.")
		return
	}
	for _, r := range rows {
		fmt.Fprintf(m.out, "%s  %s  Room %d  %s  %s\n",
			r.ID, r.Date.Format(domain.DateLayout), r.RoomNumber, r.CustomerName, r.PaymentConfirmation)
	}
}

func roomText(rooms []domain.Room) string {
	var b strings.Builder
	for _, r := range rooms {
		fmt.Fprintf(&b, "%d (%s)\n", r.Number, r.Type)
	}
	return b.String()
}

func (m *Menu) promptInt(prompt string) (int, bool) {
	fmt.Fprint(m.out, prompt)
	n, err := strconv.Atoi(strings.TrimSpace(m.readLine()))
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input. Please enter a valid number.")
		return 0, false
	}
	return n, true
}

func (m *Menu) promptDate(prompt string) (time.Time, bool) {
	fmt.Fprint(m.out, prompt)
	d, err := time.ParseInLocation(domain.DateLayout, strings.TrimSpace(m.readLine()), time.UTC)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input. Please enter a valid date.")
		return time.Time{}, false
	}
	return d, true
}

func (m *Menu) readLine() string {
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "9" // EOF: treat as exit
	}
	return line
}
