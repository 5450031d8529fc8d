package domain

import "math"

// taxRate is the flat tax applied to the booking base amount.
const taxRate = 0.05

// BookingRequest is the payload submitted to create a booking.
// Date and Time carry the display values of the chosen slot so the
// confirmation can echo them back without a second lookup.
type BookingRequest struct {
	ExperienceID string `json:"experienceId"`
	SlotID       string `json:"slotId"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Quantity     int    `json:"quantity"`
	PromoCode    string `json:"promoCode,omitempty"`
	Date         string `json:"date,omitempty"`
	Time         string `json:"time,omitempty"`
}

// BookingData is the confirmation block of a successful booking.
type BookingData struct {
	BookingID      string  `json:"bookingId,omitempty"`
	BookingRef     string  `json:"bookingRef"`
	ExperienceName string  `json:"experienceName"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Quantity       int     `json:"quantity"`
	Total          float64 `json:"total"`
}

// BookingResponse is the outcome of a booking attempt. Data is nil when
// Success is false.
type BookingResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *BookingData `json:"data,omitempty"`
}

// Quote is the price breakdown for a booking: Base is price × quantity,
// Taxes is the rounded flat tax on the base, Total is their sum.
type Quote struct {
	Base  float64
	Taxes float64
	Total float64
}

// NewQuote computes the price breakdown for quantity units at the given
// per-unit price. Taxes are rounded to the nearest whole currency unit,
// e.g. price=1000, quantity=2 → base=2000, taxes=100, total=2100.
func NewQuote(price float64, quantity int) Quote {
	base := price * float64(quantity)
	taxes := math.Round(base * taxRate)
	return Quote{Base: base, Taxes: taxes, Total: base + taxes}
}
