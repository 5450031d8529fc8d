package domain

import "math"

// PromoType distinguishes how a promo code reduces the subtotal.
type PromoType string

const (
	// PromoPercentage discounts a percentage of the subtotal.
	PromoPercentage PromoType = "percentage"
	// PromoFlat discounts a fixed amount regardless of subtotal.
	PromoFlat PromoType = "flat"
)

// Promo is a discount code definition.
type Promo struct {
	Code  string
	Type  PromoType
	Value float64
}

// Discount computes the discount this promo grants on the given subtotal.
// Percentage discounts are rounded to the nearest whole currency unit;
// flat discounts are the value itself, independent of subtotal.
func (p Promo) Discount(subtotal float64) float64 {
	if p.Type == PromoPercentage {
		return math.Round(subtotal * p.Value / 100)
	}
	return p.Value
}

// PromoData is the detail block of a successful promo validation.
type PromoData struct {
	Code     string    `json:"code"`
	Type     PromoType `json:"type"`
	Value    float64   `json:"value"`
	Discount float64   `json:"discount"`
}

// PromoValidation is the outcome of validating a promo code. A rejected code
// is not an error: Success is false and Message explains why.
type PromoValidation struct {
	Success bool       `json:"success"`
	Data    *PromoData `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
}
