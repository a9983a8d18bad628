package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SnowSE/finalproject-ricardoayala2510/internal/adapters/observability"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/domain"
)

// Backing file names, discovered relative to the working directory.
const (
	RoomsFile        = "Rooms.txt"
	CustomersFile    = "Customers.txt"
	ReservationsFile = "Reservations.txt"
	PricesFile       = "RoomPrices.txt"
	RefundsFile      = "Refunds.txt"
)

// Store reads and writes the comma-delimited record files. Saves are whole-
// file overwrites; a failure mid-write can leave a file partially written,
// which is surfaced as an error and not recovered from.
type Store struct {
	rooms        string
	customers    string
	reservations string
	prices       string
	refunds      string
	log          zerolog.Logger
}

// Open locates the record files starting from dir (the working directory
// when dir is empty) and walking parent directories. Refunds.txt is created
// next to Reservations.txt when absent, since a fresh data set has no
// refunds yet.
func Open(dir string) (*Store, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}

	s := &Store{log: log.With().Str("component", "flatfile").Logger()}
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{RoomsFile, &s.rooms},
		{CustomersFile, &s.customers},
		{ReservationsFile, &s.reservations},
		{PricesFile, &s.prices},
	} {
		p, err := FindFile(dir, f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = p
	}

	p, err := FindFile(dir, RefundsFile)
	if err != nil {
		p = filepath.Join(filepath.Dir(s.reservations), RefundsFile)
	}
	s.refunds = p
	return s, nil
}

// FindFile searches dir and its parents for name, stopping at the
// filesystem root.
func FindFile(dir, name string) (string, error) {
	for {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find %s in %s or any parent directory", name, dir)
		}
		dir = parent
	}
}

func (s *Store) LoadRooms() ([]domain.Room, error) {
	var out []domain.Room
	err := s.loadLines(s.rooms, func(fields []string) error {
		r, err := parseRoom(fields)
		if err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	return out, err
}

func (s *Store) LoadCustomers() ([]domain.Customer, error) {
	var out []domain.Customer
	err := s.loadLines(s.customers, func(fields []string) error {
		c, err := parseCustomer(fields)
		if err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

func (s *Store) LoadReservations() ([]domain.Reservation, error) {
	return s.loadReservationFile(s.reservations)
}

func (s *Store) LoadRefunds() ([]domain.Reservation, error) {
	return s.loadReservationFile(s.refunds)
}

func (s *Store) loadReservationFile(path string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := s.loadLines(path, func(fields []string) error {
		r, err := parseReservation(fields)
		if err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	return out, err
}

func (s *Store) LoadPrices() ([]domain.RoomPrice, error) {
	var out []domain.RoomPrice
	err := s.loadLines(s.prices, func(fields []string) error {
		p, err := parsePrice(fields)
		if err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

// loadLines streams path line by line, splitting on commas. A line the
// parser rejects is logged and skipped; the rest of the file still loads.
// A missing file is an empty collection.
func (s *Store) loadLines(path string, parse func([]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	name := filepath.Base(path)
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := parse(strings.Split(line, ",")); err != nil {
			ferr := domain.InvalidFormatError{File: name, Line: n, Text: line}
			s.log.Warn().Err(ferr).Msg("skipping malformed record")
			continue
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	observability.ObserveStore(name, "load")
	return nil
}

func (s *Store) SaveRooms(rooms []domain.Room) error {
	var b strings.Builder
	for _, r := range rooms {
		b.WriteString(formatRoom(r))
		b.WriteByte('\n')
	}
	return s.overwrite(s.rooms, b.String())
}

func (s *Store) SaveCustomers(customers []domain.Customer) error {
	var b strings.Builder
	for _, c := range customers {
		b.WriteString(formatCustomer(c))
		b.WriteByte('\n')
	}
	return s.overwrite(s.customers, b.String())
}

func (s *Store) SaveReservations(reservations []domain.Reservation) error {
	var b strings.Builder
	for _, r := range reservations {
		b.WriteString(formatReservation(r))
		b.WriteByte('\n')
	}
	return s.overwrite(s.reservations, b.String())
}

func (s *Store) SavePrices(prices []domain.RoomPrice) error {
	var b strings.Builder
	for _, p := range prices {
		b.WriteString(formatPrice(p))
		b.WriteByte('\n')
	}
	return s.overwrite(s.prices, b.String())
}

// AppendRefunds adds archived rows to Refunds.txt without touching the rows
// already there.
func (s *Store) AppendRefunds(refunds []domain.Reservation) error {
	if len(refunds) == 0 {
		return nil
	}
	f, err := os.OpenFile(s.refunds, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, r := range refunds {
		if _, err := fmt.Fprintln(f, formatReservation(r)); err != nil {
			return err
		}
	}
	observability.ObserveStore(RefundsFile, "append")
	return nil
}

func (s *Store) overwrite(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	observability.ObserveStore(filepath.Base(path), "save")
	return nil
}
