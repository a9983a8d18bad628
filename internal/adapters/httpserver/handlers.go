package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/SnowSE/finalproject-ricardoayala2510/internal/app"
	"github.com/SnowSE/finalproject-ricardoayala2510/internal/domain"
)

type Handlers struct{ E *app.Engine }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type reservationView struct {
	ID                  string `json:"id"`
	Date                string `json:"date"`
	RoomNumber          int    `json:"room_number"`
	CustomerName        string `json:"customer_name"`
	PaymentConfirmation string `json:"payment_confirmation"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/rooms/available", h.availableRooms)
	s.mux.Get("/v1/reservations", h.reservationsByDate)
	s.mux.Get("/v1/customers/{name}/reservations", h.customerReservations)
	s.mux.Get("/v1/utilization", h.utilization)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// queryDate parses the date query parameter (MM/DD/YYYY).
func queryDate(r *http.Request, key string) (time.Time, bool) {
	d, err := time.ParseInLocation(domain.DateLayout, r.URL.Query().Get(key), time.UTC)
	return d, err == nil
}

func (h *Handlers) availableRooms(w http.ResponseWriter, r *http.Request) {
	date, ok := queryDate(r, "date")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid date", "date must be MM/DD/YYYY")
		return
	}
	rooms := h.E.AvailableRoomSearch(date)
	writeJSON(w, map[string]any{"date": date.Format(domain.DateLayout), "available": rooms})
}

func (h *Handlers) reservationsByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := queryDate(r, "date")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid date", "date must be MM/DD/YYYY")
		return
	}
	writeJSON(w, views(h.E.ReservationReport(date)))
}

func (h *Handlers) customerReservations(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	writeJSON(w, views(h.E.CustomerReservationReport(name)))
}

// utilization serves both the single-day form (?date=) and the range form
// (?start=&end=).
func (h *Handlers) utilization(w http.ResponseWriter, r *http.Request) {
	if date, ok := queryDate(r, "date"); ok {
		rate, err := h.E.CalculateUtilizationRate(date)
		if err != nil {
			writeProblem(w, http.StatusUnprocessableEntity, "No rooms", err.Error())
			return
		}
		writeJSON(w, map[string]any{"date": date.Format(domain.DateLayout), "rate": rate})
		return
	}

	start, ok1 := queryDate(r, "start")
	end, ok2 := queryDate(r, "end")
	if !ok1 || !ok2 {
		writeProblem(w, http.StatusBadRequest, "Invalid date", "provide date= or start= and end= as MM/DD/YYYY")
		return
	}
	rates, err := h.E.CalculateUtilizationRateRange(start, end)
	if err != nil {
		writeProblem(w, http.StatusUnprocessableEntity, "No rooms", err.Error())
		return
	}
	out := make([]map[string]any, len(rates))
	for i, rate := range rates {
		out[i] = map[string]any{
			"date": domain.Day(start).AddDate(0, 0, i).Format(domain.DateLayout),
			"rate": rate,
		}
	}
	writeJSON(w, out)
}

func views(rows []domain.Reservation) []reservationView {
	out := make([]reservationView, len(rows))
	for i, r := range rows {
		out[i] = reservationView{
			ID:                  r.ID,
			Date:                r.Date.Format(domain.DateLayout),
			RoomNumber:          r.RoomNumber,
			CustomerName:        r.CustomerName,
			PaymentConfirmation: r.PaymentConfirmation,
		}
	}
	return out
}
