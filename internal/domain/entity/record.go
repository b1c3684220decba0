// Package entity defines the immutable profile snapshot consumed by the risk
// engine.  A record is assembled once per request by the retrieval layer,
// normalised at that boundary (dates parsed, country codes upper-cased), and
// is read-only for the duration of scoring.
package entity

import (
	"strings"
	"time"
)

// EventDateLayout is the calendar-date wire format used by the upstream
// profile store for event dates.
const EventDateLayout = "2006-01-02"

// EntityRecord is the full compliance profile of a person or organisation.
// All collections may be empty; absence of data lowers the assessment's
// reported completeness, it never causes an error.
type EntityRecord struct {
	ID              string
	Events          []Event
	Attributes      []AttributeTag
	Addresses       []Address
	Relationships   []Relationship
	Aliases         []string
	Identifications []IdentityDocument
}

// Event is one adverse-media or regulatory event attached to an entity.
type Event struct {
	// CategoryCode is the three-letter event taxonomy code (e.g. "MLA").
	CategoryCode string

	// SubCategoryCode qualifies the event stage ("CVT" convicted, "ALL"
	// alleged, …).  Empty when the source carried none.
	SubCategoryCode string

	// Date is the calendar date of the event, nil when absent or when the
	// source value failed to parse (the event then contributes with full
	// temporal weight and is excluded from pattern analysis).
	Date *time.Time

	// Description is optional free text from the source article.
	Description string
}

// AttributeTag is one raw profile attribute: a namespace code plus an
// uninterpreted value.  The risk package's attribute classifier turns tags
// into typed findings.
type AttributeTag struct {
	// CodeType is the attribute namespace, e.g. "PTY" (political-exposure
	// role) or "PRT" (party rating).
	CodeType string

	// RawValue is free text and may encode a role, a level, a date, or a
	// relationship sentence.
	RawValue string
}

// Address is one known address of the entity.  Only the country code feeds
// the geographic extractor; city and type are carried for reporting.
type Address struct {
	Country string
	City    string
	Type    string
}

// Relationship links the entity to a named counterpart.
type Relationship struct {
	// Type is free text from the source ("BENEFICIAL_OWNER", "spouse", …).
	Type string

	CounterpartName string

	// Direction is optional; empty means bidirectional.
	Direction string
}

// IdentityDocument is one identity document on file.  Only the issuing
// country is used by the behavioural extractor.
type IdentityDocument struct {
	Country string
	Type    string
	Number  string
}

// ParseEventDate parses a wire-format calendar date.  The second return is
// false for empty or malformed input; callers treat such events as date-less
// rather than failing.
func ParseEventDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(EventDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DatedEvents returns the subset of events carrying a date, for temporal
// analysis.  Order follows the record.
func (r *EntityRecord) DatedEvents() []Event {
	out := make([]Event, 0, len(r.Events))
	for _, e := range r.Events {
		if e.Date != nil {
			out = append(out, e)
		}
	}
	return out
}

// DistinctAddressCountries returns the set size of non-empty address country
// codes.
func (r *EntityRecord) DistinctAddressCountries() int {
	seen := make(map[string]struct{}, len(r.Addresses))
	for _, a := range r.Addresses {
		if c := strings.ToUpper(strings.TrimSpace(a.Country)); c != "" {
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}

// DistinctDocumentCountries returns the set size of non-empty identity
// document issuing countries.
func (r *EntityRecord) DistinctDocumentCountries() int {
	seen := make(map[string]struct{}, len(r.Identifications))
	for _, d := range r.Identifications {
		if c := strings.ToUpper(strings.TrimSpace(d.Country)); c != "" {
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}
