package source_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/booking-api/internal/domain"
	"github.com/roamly/booking-api/internal/source"
)

func newStatic(t *testing.T) *source.Static {
	t.Helper()
	s, err := source.NewStatic()
	require.NoError(t, err)
	return s
}

// ---- ListExperiences -------------------------------------------------------

func TestStaticListExperiences_returnsAllEntries(t *testing.T) {
	s := newStatic(t)

	exps, err := s.ListExperiences(context.Background())

	require.NoError(t, err)
	require.Len(t, exps, 4)
	// numeric ids in the document are normalized to strings
	assert.Equal(t, "1", exps[0].ID)
	assert.Equal(t, "Sunrise Hot Air Balloon Ride", exps[0].Name)
	assert.Equal(t, float64(1000), exps[0].Price)
	assert.Equal(t, "4", exps[3].ID)
}

func TestStaticListExperiences_isIdempotent(t *testing.T) {
	s := newStatic(t)

	first, err := s.ListExperiences(context.Background())
	require.NoError(t, err)
	second, err := s.ListExperiences(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ---- GetExperienceDetail ---------------------------------------------------

func TestStaticGetExperienceDetail_matchesRequestedID(t *testing.T) {
	s := newStatic(t)

	for _, id := range []string{"1", "2", "3", "4"} {
		detail, err := s.GetExperienceDetail(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, detail.ID)
	}
}

func TestStaticGetExperienceDetail_unknownID_returnsNotFound(t *testing.T) {
	s := newStatic(t)

	_, err := s.GetExperienceDetail(context.Background(), "999")

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStaticGetExperienceDetail_synthesizesSlots(t *testing.T) {
	s := newStatic(t)
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	detail, err := s.GetExperienceDetail(context.Background(), "1")
	require.NoError(t, err)

	// 5 days × 4 times
	require.Len(t, detail.Slots, 20)
	assert.Equal(t, tomorrow, detail.Slots[0].Date)

	soldOut := 0
	for _, slot := range detail.Slots {
		assert.Equal(t, "1", slot.ExperienceID)
		assert.Equal(t, 10, slot.TotalSpots)
		assert.NotEmpty(t, slot.ID)
		if slot.Time == "1:00 pm" {
			assert.Equal(t, 0, slot.AvailableSpots, "the 1:00 pm slot is always sold out")
			soldOut++
		}
	}
	assert.Equal(t, 5, soldOut)
}

func TestStaticGetExperienceDetail_synthesizedIDsAreDeterministic(t *testing.T) {
	s := newStatic(t)

	first, err := s.GetExperienceDetail(context.Background(), "2")
	require.NoError(t, err)
	second, err := s.GetExperienceDetail(context.Background(), "2")
	require.NoError(t, err)

	require.Len(t, second.Slots, len(first.Slots))
	for i := range first.Slots {
		assert.Equal(t, first.Slots[i].ID, second.Slots[i].ID)
	}
}

func TestStaticGetExperienceDetail_keepsDocumentSlots(t *testing.T) {
	s := newStatic(t)

	detail, err := s.GetExperienceDetail(context.Background(), "4")
	require.NoError(t, err)

	// the stargazing entry ships with its own schedule — nothing is synthesized
	require.Len(t, detail.Slots, 2)
	assert.Equal(t, "4-2026-10-02-1900", detail.Slots[0].ID)
	assert.Equal(t, "7:00 pm", detail.Slots[0].Time)
	assert.Equal(t, 12, detail.Slots[1].AvailableSpots)
}

// ---- CreateBooking ---------------------------------------------------------

func TestStaticCreateBooking_computesTotalWithTaxes(t *testing.T) {
	s := newStatic(t)

	resp, err := s.CreateBooking(context.Background(), domain.BookingRequest{
		ExperienceID: "1",
		SlotID:       "1-slot",
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		Quantity:     2,
		Date:         "2026-09-05",
		Time:         "9:00 am",
	})

	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	// price 1000 × 2 = 2000 base + 100 taxes
	assert.Equal(t, float64(2100), resp.Data.Total)
	assert.Equal(t, "Sunrise Hot Air Balloon Ride", resp.Data.ExperienceName)
	assert.Equal(t, "2026-09-05", resp.Data.Date)
	assert.Equal(t, "9:00 am", resp.Data.Time)
	assert.Equal(t, 2, resp.Data.Quantity)
	assert.True(t, strings.HasPrefix(resp.Data.BookingRef, "DEMO-"))
	assert.NotEmpty(t, resp.Data.BookingID)
	assert.NotEmpty(t, resp.Message)
}

func TestStaticCreateBooking_unknownExperience_usesDefaultPrice(t *testing.T) {
	s := newStatic(t)

	resp, err := s.CreateBooking(context.Background(), domain.BookingRequest{
		ExperienceID: "999",
		Quantity:     1,
	})

	require.NoError(t, err)
	require.True(t, resp.Success)
	// default price 1000 + 5% taxes
	assert.Equal(t, float64(1050), resp.Data.Total)
	assert.Empty(t, resp.Data.ExperienceName)
}

// ---- ValidatePromoCode -----------------------------------------------------

func TestStaticValidatePromoCode(t *testing.T) {
	s := newStatic(t)

	tests := []struct {
		name     string
		code     string
		subtotal float64
		success  bool
		discount float64
	}{
		{"percentage, case-insensitive", "save10", 1000, true, 100},
		{"percentage twenty", "WELCOME20", 1000, true, 200},
		{"flat ignores subtotal", "FLAT100", 50, true, 100},
		{"unknown code", "bogus", 1000, false, 0},
		{"empty code", "", 1000, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := s.ValidatePromoCode(context.Background(), tt.code, tt.subtotal)
			require.NoError(t, err)
			assert.Equal(t, tt.success, v.Success)
			if tt.success {
				require.NotNil(t, v.Data)
				assert.Equal(t, tt.discount, v.Data.Discount)
				assert.Equal(t, strings.ToUpper(tt.code), v.Data.Code)
			} else {
				assert.Nil(t, v.Data)
				assert.Equal(t, "Invalid promo code", v.Message)
			}
		})
	}
}

// ---- document loading ------------------------------------------------------

func TestNewStaticFromFile_overridesBundledDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiences.json")
	doc := `{"experiences":[{"id":"custom-1","name":"Private Vineyard Tour","location":"Porto","price":250}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	s, err := source.NewStaticFromFile(path)
	require.NoError(t, err)

	exps, err := s.ListExperiences(context.Background())
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, "custom-1", exps[0].ID)
	assert.Equal(t, float64(250), exps[0].Price)
}

func TestNewStaticFromFile_missingFile_returnsError(t *testing.T) {
	_, err := source.NewStaticFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestNewStaticFromFile_malformedDocument_returnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiences.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := source.NewStaticFromFile(path)
	require.Error(t, err)
}
