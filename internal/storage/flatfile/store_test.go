package flatfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SnowSE/finalproject-ricardoayala2510/internal/domain"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/storage/flatfile"
)

func seedDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		flatfile.RoomsFile:        "101,Single\n102,Double\n",
		flatfile.CustomersFile:    "Ann Smith,1234567890\n",
		flatfile.ReservationsFile: "res-1,01/01/2024,101,Ann Smith,conf-1\n",
		flatfile.PricesFile:       "Single,80.00\nDouble,120.50\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	return dir
}

func TestOpen_MissingFiles(t *testing.T) {
	if _, err := flatfile.Open(t.TempDir()); err == nil {
		t.Fatalf("want error when no record files exist anywhere up the tree")
	}
}

func TestFindFile_WalksParents(t *testing.T) {
	dir := seedDataDir(t)
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	p, err := flatfile.FindFile(nested, flatfile.RoomsFile)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if p != filepath.Join(dir, flatfile.RoomsFile) {
		t.Fatalf("want file from ancestor dir, got %s", p)
	}

	// Open from the nested dir resolves everything the same way
	if _, err := flatfile.Open(nested); err != nil {
		t.Fatalf("open from nested dir: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := seedDataDir(t)
	s, err := flatfile.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	rooms, err := s.LoadRooms()
	if err != nil {
		t.Fatalf("load rooms: %v", err)
	}
	if len(rooms) != 2 || rooms[0].Number != 101 || rooms[1].Type != "Double" {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}

	customers, err := s.LoadCustomers()
	if err != nil {
		t.Fatalf("load customers: %v", err)
	}
	if len(customers) != 1 || customers[0].Name != "Ann Smith" {
		t.Fatalf("unexpected customers: %+v", customers)
	}

	reservations, err := s.LoadReservations()
	if err != nil {
		t.Fatalf("load reservations: %v", err)
	}
	if len(reservations) != 1 {
		t.Fatalf("unexpected reservations: %+v", reservations)
	}
	r := reservations[0]
	if r.ID != "res-1" || r.RoomNumber != 101 || r.CustomerName != "Ann Smith" ||
		r.PaymentConfirmation != "conf-1" || r.Date.Format(domain.DateLayout) != "01/01/2024" {
		t.Fatalf("unexpected reservation: %+v", r)
	}

	prices, err := s.LoadPrices()
	if err != nil {
		t.Fatalf("load prices: %v", err)
	}
	if len(prices) != 2 || prices[1].DailyRate.String() != "120.5" {
		t.Fatalf("unexpected prices: %+v", prices)
	}

	// write everything back and reload
	if err := s.SaveRooms(rooms); err != nil {
		t.Fatalf("save rooms: %v", err)
	}
	if err := s.SaveCustomers(customers); err != nil {
		t.Fatalf("save customers: %v", err)
	}
	if err := s.SaveReservations(reservations); err != nil {
		t.Fatalf("save reservations: %v", err)
	}
	if err := s.SavePrices(prices); err != nil {
		t.Fatalf("save prices: %v", err)
	}

	again, err := s.LoadReservations()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(again) != 1 || again[0] != r {
		t.Fatalf("round trip changed the row: %+v", again)
	}
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	dir := seedDataDir(t)
	bad := "101,Single\nnot-a-number,Double\n102\n103,Suite\n"
	if err := os.WriteFile(filepath.Join(dir, flatfile.RoomsFile), []byte(bad), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := flatfile.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	rooms, err := s.LoadRooms()
	if err != nil {
		t.Fatalf("load must not abort on malformed lines: %v", err)
	}
	if len(rooms) != 2 || rooms[0].Number != 101 || rooms[1].Number != 103 {
		t.Fatalf("want the two good rows, got %+v", rooms)
	}
}

func TestAppendRefunds(t *testing.T) {
	dir := seedDataDir(t)
	s, err := flatfile.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	row := domain.Reservation{
		ID: "res-9", Date: mustDay(t, "03/01/2024"), RoomNumber: 102,
		CustomerName: "Ann Smith", PaymentConfirmation: "conf-9",
	}
	if err := s.AppendRefunds([]domain.Reservation{row}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendRefunds([]domain.Reservation{row}); err != nil {
		t.Fatalf("second append: %v", err)
	}

	refunds, err := s.LoadRefunds()
	if err != nil {
		t.Fatalf("load refunds: %v", err)
	}
	if len(refunds) != 2 {
		t.Fatalf("appends must accumulate, got %d rows", len(refunds))
	}

	// file really is append-shaped: two identical lines
	b, err := os.ReadFile(filepath.Join(dir, flatfile.RefundsFile))
	if err != nil {
		t.Fatalf("read refunds file: %v", err)
	}
	if got := strings.Count(string(b), "res-9"); got != 2 {
		t.Fatalf("want 2 archived lines, got %d", got)
	}
}

func mustDay(t *testing.T, s string) (d time.Time) {
	t.Helper()
	d, err := time.ParseInLocation(domain.DateLayout, s, time.UTC)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}
