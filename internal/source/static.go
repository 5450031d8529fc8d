package source

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roamly/booking-api/internal/domain"
)

//go:embed data/experiences.json
var embeddedDocument []byte

// defaultPrice is used when a demo booking references an experience the
// document does not contain.
const defaultPrice = 1000

// demoBookingMessage accompanies every simulated booking confirmation.
const demoBookingMessage = "Demo booking confirmed. Connect a backend API for live bookings."

// invalidPromoMessage is returned for codes missing from the demo promo table.
const invalidPromoMessage = "Invalid promo code"

// demoPromos is the fixed promo table served when no backend is configured.
// Keys are the uppercased codes users may type in any case.
var demoPromos = map[string]domain.Promo{
	"SAVE10":    {Code: "SAVE10", Type: domain.PromoPercentage, Value: 10},
	"FLAT100":   {Code: "FLAT100", Type: domain.PromoFlat, Value: 100},
	"WELCOME20": {Code: "WELCOME20", Type: domain.PromoPercentage, Value: 20},
}

// demoSlotTimes are the four daily time slots synthesized for experiences
// that ship without slot data. The 1:00 pm slot is always sold out so the
// frontend's "sold out" state stays exercisable in demo mode.
var demoSlotTimes = []struct {
	display   string
	available int
}{
	{"07:00 am", 4},
	{"9:00 am", 2},
	{"11:00 am", 5},
	{"1:00 pm", 0},
}

const (
	demoSlotDays  = 5
	demoSlotTotal = 10
)

// flexID accepts both JSON strings and JSON numbers, normalizing to a string.
// The static document historically used numeric ids while the API compares
// them as strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

// document is the shape of the static fallback file.
type document struct {
	Experiences []documentExperience `json:"experiences"`
}

type documentExperience struct {
	ID          flexID        `json:"id"`
	Name        string        `json:"name"`
	Location    string        `json:"location"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Price       float64       `json:"price"`
	Slots       []domain.Slot `json:"slots"`
}

// toExperience maps a document entry to the listing shape, dropping slots.
func (e documentExperience) toExperience() domain.Experience {
	return domain.Experience{
		ID:          string(e.ID),
		Name:        e.Name,
		Location:    e.Location,
		Description: e.Description,
		Image:       e.Image,
		Price:       e.Price,
	}
}

// Static is the Source implementation backed by the bundled JSON document.
// Reads come straight from the document; writes are simulated — demo bookings
// always succeed and never reserve capacity, matching the frontend's
// no-backend demo mode.
type Static struct {
	doc document
}

// NewStatic constructs a Static from the document embedded in the binary.
func NewStatic() (*Static, error) {
	return newStatic(embeddedDocument)
}

// NewStaticFromFile constructs a Static from a document on disk, for
// deployments that override the bundled data.
func NewStaticFromFile(path string) (*Static, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source.NewStaticFromFile: %w", err)
	}
	return newStatic(b)
}

func newStatic(b []byte) (*Static, error) {
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("source.Static: parse document: %w", err)
	}
	return &Static{doc: doc}, nil
}

// ListExperiences returns every experience in the document, without slots.
func (s *Static) ListExperiences(_ context.Context) ([]domain.Experience, error) {
	out := make([]domain.Experience, len(s.doc.Experiences))
	for i, e := range s.doc.Experiences {
		out[i] = e.toExperience()
	}
	return out, nil
}

// GetExperienceDetail finds the experience whose id matches the requested one
// (string-compared). When the entry carries no slot data, a 5-day schedule of
// four daily slots is synthesized starting tomorrow.
func (s *Static) GetExperienceDetail(_ context.Context, id string) (domain.ExperienceDetail, error) {
	e, ok := s.find(id)
	if !ok {
		return domain.ExperienceDetail{}, fmt.Errorf("source.Static.GetExperienceDetail: experience %q: %w", id, domain.ErrNotFound)
	}
	slots := e.Slots
	if len(slots) == 0 {
		slots = synthesizeSlots(string(e.ID), time.Now())
	}
	return domain.ExperienceDetail{Experience: e.toExperience(), Slots: slots}, nil
}

// CreateBooking simulates a booking confirmation. The price is looked up in
// the document (falling back to defaultPrice for unknown experiences), taxes
// are added per domain.NewQuote, and the reference is DEMO- plus the current
// unix-millisecond timestamp. Demo bookings never fail and do not check or
// decrement slot capacity.
func (s *Static) CreateBooking(_ context.Context, req domain.BookingRequest) (domain.BookingResponse, error) {
	price := float64(defaultPrice)
	name := ""
	if e, ok := s.find(req.ExperienceID); ok {
		price = e.Price
		name = e.Name
	}
	quote := domain.NewQuote(price, req.Quantity)

	return domain.BookingResponse{
		Success: true,
		Message: demoBookingMessage,
		Data: &domain.BookingData{
			BookingID:      uuid.NewString(),
			BookingRef:     fmt.Sprintf("DEMO-%d", time.Now().UnixMilli()),
			ExperienceName: name,
			Date:           req.Date,
			Time:           req.Time,
			Quantity:       req.Quantity,
			Total:          quote.Total,
		},
	}, nil
}

// ValidatePromoCode checks the uppercased code against the demo promo table.
// Unknown codes yield a structured failure, not an error.
func (s *Static) ValidatePromoCode(_ context.Context, code string, subtotal float64) (domain.PromoValidation, error) {
	p, ok := demoPromos[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return domain.PromoValidation{Success: false, Message: invalidPromoMessage}, nil
	}
	return domain.PromoValidation{
		Success: true,
		Data: &domain.PromoData{
			Code:     p.Code,
			Type:     p.Type,
			Value:    p.Value,
			Discount: p.Discount(subtotal),
		},
	}, nil
}

// find returns the document entry whose id matches, string-compared.
func (s *Static) find(id string) (documentExperience, bool) {
	for _, e := range s.doc.Experiences {
		if string(e.ID) == id {
			return e, true
		}
	}
	return documentExperience{}, false
}

// synthesizeSlots builds the demo schedule: for each of the next demoSlotDays
// calendar days starting tomorrow, one slot per entry in demoSlotTimes. Slot
// ids are deterministic over experience id, date, and time so repeated detail
// fetches within a day agree with each other.
func synthesizeSlots(experienceID string, from time.Time) []domain.Slot {
	slots := make([]domain.Slot, 0, demoSlotDays*len(demoSlotTimes))
	for day := 1; day <= demoSlotDays; day++ {
		date := from.AddDate(0, 0, day).Format("2006-01-02")
		for _, ts := range demoSlotTimes {
			slots = append(slots, domain.Slot{
				ID:             slotID(experienceID, date, ts.display),
				ExperienceID:   experienceID,
				Date:           date,
				Time:           ts.display,
				AvailableSpots: ts.available,
				TotalSpots:     demoSlotTotal,
			})
		}
	}
	return slots
}

// slotID derives a stable slot identifier from its coordinates,
// e.g. ("3", "2026-09-01", "9:00 am") → "3-2026-09-01-900am".
func slotID(experienceID, date, display string) string {
	compact := strings.NewReplacer(":", "", " ", "").Replace(display)
	return fmt.Sprintf("%s-%s-%s", experienceID, date, compact)
}
