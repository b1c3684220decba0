package risk

import "github.com/sentineldata/riskintel/internal/domain/entity"

// BehaviorDetail is the behavioural extractor's output.  IdentityRisk and
// IdentityFactor are reported for analysts but do not feed the score.
type BehaviorDetail struct {
	Score             float64 `json:"score"`
	AliasCount        int     `json:"alias_count"`
	IdentityRisk      string  `json:"identity_risk"` // "low", "medium", "high"
	IdentityFactor    float64 `json:"identity_factor"`
	DocumentCountries int     `json:"document_countries"`
	AddressCountries  int     `json:"address_countries"`
	MultiJurisdiction bool    `json:"multi_jurisdiction"`
}

// BehavioralPatternExtractor scores identity-management behaviour: heavy
// alias use, identity documents issued across several countries, and a
// multi-jurisdiction footprint.
type BehavioralPatternExtractor struct{}

// NewBehavioralPatternExtractor builds the extractor.
func NewBehavioralPatternExtractor() *BehavioralPatternExtractor {
	return &BehavioralPatternExtractor{}
}

// Extract computes behavioural risk from a record.
func (x *BehavioralPatternExtractor) Extract(rec *entity.EntityRecord) BehaviorDetail {
	detail := BehaviorDetail{
		AliasCount:        len(rec.Aliases),
		IdentityRisk:      "low",
		IdentityFactor:    1.0,
		DocumentCountries: rec.DistinctDocumentCountries(),
		AddressCountries:  rec.DistinctAddressCountries(),
	}

	switch {
	case detail.AliasCount > 5:
		detail.IdentityRisk = "high"
		detail.IdentityFactor = 1.3
	case detail.AliasCount > 2:
		detail.IdentityRisk = "medium"
		detail.IdentityFactor = 1.1
	}

	var score float64
	if detail.AliasCount > 3 {
		score += 15
	}
	if detail.DocumentCountries > 2 {
		score += 10
	}
	if detail.AddressCountries > 3 {
		score += 10
		detail.MultiJurisdiction = true
	}

	detail.Score = clamp100(score)
	return detail
}
