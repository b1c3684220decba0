package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEventDate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, ok := ParseEventDate("2023-04-17")
		assert.True(t, ok)
		assert.Equal(t, time.Date(2023, 4, 17, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Whitespace", func(t *testing.T) {
		_, ok := ParseEventDate("  2023-04-17 ")
		assert.True(t, ok)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, s := range []string{"", "17/04/2023", "2023-13-40", "not a date"} {
			_, ok := ParseEventDate(s)
			assert.False(t, ok, "input %q", s)
		}
	})
}

func TestDatedEvents(t *testing.T) {
	d := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := &EntityRecord{Events: []Event{
		{CategoryCode: "FRD", Date: &d},
		{CategoryCode: "MLA"},
		{CategoryCode: "TER", Date: &d},
	}}
	dated := rec.DatedEvents()
	assert.Len(t, dated, 2)
	assert.Equal(t, "FRD", dated[0].CategoryCode)
	assert.Equal(t, "TER", dated[1].CategoryCode)
}

func TestDistinctCountries(t *testing.T) {
	rec := &EntityRecord{
		Addresses: []Address{
			{Country: "us"}, {Country: "US"}, {Country: " de "}, {Country: ""},
		},
		Identifications: []IdentityDocument{
			{Country: "RU"}, {Country: "ru"}, {Country: "CY"}, {Country: ""},
		},
	}
	assert.Equal(t, 2, rec.DistinctAddressCountries())
	assert.Equal(t, 2, rec.DistinctDocumentCountries())
}
