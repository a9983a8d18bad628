package domain

// RecordStore is the persistence boundary. Collections are loaded once at
// session start and written back whole at explicit save points; refunds are
// the exception and are appended, never rewritten.
//
// Files are comma-delimited, so no field value may itself contain a comma.
// The store does not enforce this.
type RecordStore interface {
	LoadRooms() ([]Room, error)
	LoadCustomers() ([]Customer, error)
	LoadReservations() ([]Reservation, error)
	LoadPrices() ([]RoomPrice, error)
	LoadRefunds() ([]Reservation, error)

	SaveRooms([]Room) error
	SaveCustomers([]Customer) error
	SaveReservations([]Reservation) error
	SavePrices([]RoomPrice) error
	AppendRefunds([]Reservation) error
}
