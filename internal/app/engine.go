package app

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/SnowSE/finalproject-ricardoayala2510/internal/domain"
)

// Engine owns the in-memory working set for one session. Collections are
// populated once by Load and flushed whole by Save; every operation in
// between is in-memory only.
//
// The core flow is single-user and synchronous. The mutex exists only so
// the optional read-only reports listener can observe state while the menu
// mutates it.
type Engine struct {
	store domain.RecordStore

	mu           sync.RWMutex
	rooms        []domain.Room
	customers    []domain.Customer
	reservations []domain.Reservation
	prices       []domain.RoomPrice

	now func() time.Time
}

func NewEngine(store domain.RecordStore) *Engine {
	return &Engine{store: store, now: time.Now}
}

// Load populates the working set from the record store. Called once at
// session start; nothing re-reads the backing files mid-session.
func (e *Engine) Load() error {
	rooms, err := e.store.LoadRooms()
	if err != nil {
		return err
	}
	customers, err := e.store.LoadCustomers()
	if err != nil {
		return err
	}
	reservations, err := e.store.LoadReservations()
	if err != nil {
		return err
	}
	prices, err := e.store.LoadPrices()
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.rooms, e.customers, e.reservations, e.prices = rooms, customers, reservations, prices
	e.mu.Unlock()

	log.Info().
		Int("rooms", len(rooms)).
		Int("customers", len(customers)).
		Int("reservations", len(reservations)).
		Int("prices", len(prices)).
		Msg("working set loaded")
	return nil
}

// Save overwrites every backing file with the current working set. A
// failure mid-write can leave a file partially written; the error is
// surfaced, not recovered from.
func (e *Engine) Save() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if err := e.store.SaveRooms(e.rooms); err != nil {
		return err
	}
	if err := e.store.SaveCustomers(e.customers); err != nil {
		return err
	}
	if err := e.store.SaveReservations(e.reservations); err != nil {
		return err
	}
	if err := e.store.SavePrices(e.prices); err != nil {
		return err
	}
	log.Info().Msg("working set saved")
	return nil
}
