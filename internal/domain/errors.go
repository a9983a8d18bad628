package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoRooms is returned by utilization queries when the hotel has no rooms
// on record (the rate would divide by zero).
var ErrNoRooms = errors.New("no rooms on record")

type DuplicateRoomError struct {
	RoomNumber int
}

func (e DuplicateRoomError) Error() string {
	return fmt.Sprintf("room %d already exists", e.RoomNumber)
}

// RoomUnavailableError carries the first conflicting date of the requested
// range.
type RoomUnavailableError struct {
	RoomNumber int
	Date       time.Time
}

func (e RoomUnavailableError) Error() string {
	return fmt.Sprintf("room %d is not available on %s", e.RoomNumber, e.Date.Format(DateLayout))
}

type CustomerNotFoundError struct {
	Name string
}

func (e CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer %q not found", e.Name)
}

type ReservationNotFoundError struct {
	ID string
}

func (e ReservationNotFoundError) Error() string {
	return fmt.Sprintf("reservation %s not found", e.ID)
}

type RoomTypeNotFoundError struct {
	Type string
}

func (e RoomTypeNotFoundError) Error() string {
	return fmt.Sprintf("room type %q not found", e.Type)
}

// InvalidFormatError describes a malformed persisted line. Loaders skip the
// line and keep going; the error only surfaces in logs.
type InvalidFormatError struct {
	File string
	Line int
	Text string
}

func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("%s:%d: invalid record %q", e.File, e.Line, e.Text)
}
