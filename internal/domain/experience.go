// Package domain contains the core data types for the booking API.
// This package has zero external dependencies on other internal packages and
// is imported by every other internal package (source, service, handler).
//
// All types here are transient request/response payloads — nothing is
// persisted. JSON field names are camelCase because they are the wire format
// the booking web frontend already consumes.
package domain

// Experience represents a bookable activity listing.
type Experience struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

// Slot is a specific date/time instance of an Experience with limited capacity.
// Date is an ISO date string (YYYY-MM-DD); Time is a display string as shown
// to the user (e.g. "9:00 am").
type Slot struct {
	ID             string `json:"id"`
	ExperienceID   string `json:"experienceId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// ExperienceDetail is an Experience together with its bookable slots,
// in the order the data source provides them.
type ExperienceDetail struct {
	Experience
	Slots []Slot `json:"slots"`
}
