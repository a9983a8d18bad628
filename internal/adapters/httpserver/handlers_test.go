package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SnowSE/finalproject-ricardoayala2510/internal/adapters/httpserver"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/app"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/domain"
)

// memStore keeps everything in memory; good enough to seed an engine.
type memStore struct {
	rooms        []domain.Room
	customers    []domain.Customer
	reservations []domain.Reservation
	refunds      []domain.Reservation
}

func (m *memStore) LoadRooms() ([]domain.Room, error)               { return m.rooms, nil }
func (m *memStore) LoadCustomers() ([]domain.Customer, error)       { return m.customers, nil }
func (m *memStore) LoadReservations() ([]domain.Reservation, error) { return m.reservations, nil }
func (m *memStore) LoadPrices() ([]domain.RoomPrice, error)         { return nil, nil }
func (m *memStore) LoadRefunds() ([]domain.Reservation, error)      { return m.refunds, nil }
func (m *memStore) SaveRooms(rs []domain.Room) error                { m.rooms = rs; return nil }
func (m *memStore) SaveCustomers(cs []domain.Customer) error        { m.customers = cs; return nil }
func (m *memStore) SaveReservations(rs []domain.Reservation) error  { m.reservations = rs; return nil }
func (m *memStore) SavePrices([]domain.RoomPrice) error             { return nil }
func (m *memStore) AppendRefunds(rs []domain.Reservation) error {
	m.refunds = append(m.refunds, rs...)
	return nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	engine := app.NewEngine(&memStore{
		rooms: []domain.Room{
			{Number: 101, Type: "Single"},
			{Number: 102, Type: "Double"},
		},
		customers: []domain.Customer{{Name: "Ann Smith", CardNumber: "11111"}},
	})
	if err := engine.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := engine.AddReservation(
		mustDate(t, "01/01/2024"), mustDate(t, "01/01/2024"), 101, "Ann Smith"); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{E: engine})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(domain.DateLayout, s, time.UTC)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status: %d", resp.StatusCode)
	}
}

func TestAvailableRooms(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/rooms/available?date=01/01/2024")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	var out struct {
		Available []int `json:"available"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Available) != 1 || out.Available[0] != 102 {
		t.Fatalf("want [102], got %v", out.Available)
	}
}

func TestAvailableRooms_BadDate(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/rooms/available?date=bogus")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for bad date, got %d", resp.StatusCode)
	}
}

func TestReservationsByDate(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/reservations?date=01/01/2024")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var rows []struct {
		RoomNumber   int    `json:"room_number"`
		CustomerName string `json:"customer_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 || rows[0].RoomNumber != 101 || rows[0].CustomerName != "Ann Smith" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestUtilization(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/utilization?date=01/01/2024")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var out struct {
		Rate float64 `json:"rate"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Rate != 50.0 {
		t.Fatalf("2 rooms, 1 reserved: want 50.0, got %v", out.Rate)
	}
}
