package risk

import (
	"strings"

	"github.com/sentineldata/riskintel/internal/domain/entity"
)

const (
	geoMaxMultiplierScale  = 20.0
	geoSanctionedScale     = 15.0
	geoConflictScale       = 10.0
	geoMultiCountryFactor  = 1.2
	geoMultiCountryMinimum = 3
)

// GeographicRiskDetail is the geographic extractor's output.
type GeographicRiskDetail struct {
	Score              float64        `json:"score"`
	Countries          []string       `json:"countries,omitempty"`
	RiskDistribution   map[string]int `json:"risk_distribution,omitempty"`
	SanctionedExposure int            `json:"sanctioned_exposure"`
	ConflictZones      int            `json:"conflict_zones"`
	MaxMultiplier      float64        `json:"max_multiplier"`
	AvgMultiplier      float64        `json:"avg_multiplier"`
	MultiCountryFactor float64        `json:"multi_country_factor"`
}

// GeographicRiskExtractor scores jurisdictional exposure from addresses: the
// dominant country multiplier, direct sanctioned-country and conflict-zone
// presence, and a spread factor for entities rooted in many jurisdictions.
type GeographicRiskExtractor struct {
	ref *Reference
}

// NewGeographicRiskExtractor builds the extractor over a reference snapshot.
func NewGeographicRiskExtractor(ref *Reference) *GeographicRiskExtractor {
	return &GeographicRiskExtractor{ref: ref}
}

// Extract computes geographic risk from addresses.  Records without a usable
// country code score zero.
func (x *GeographicRiskExtractor) Extract(addresses []entity.Address) GeographicRiskDetail {
	detail := GeographicRiskDetail{
		MaxMultiplier:      0,
		MultiCountryFactor: 1.0,
	}

	seen := make(map[string]struct{})
	var multipliers []float64
	for _, a := range addresses {
		country := strings.ToUpper(strings.TrimSpace(a.Country))
		if country == "" {
			continue
		}
		if _, dup := seen[country]; !dup {
			seen[country] = struct{}{}
			detail.Countries = append(detail.Countries, country)
		}

		m := x.ref.CountryMultiplier(country)
		multipliers = append(multipliers, m)
		if m > detail.MaxMultiplier {
			detail.MaxMultiplier = m
		}
		if x.ref.IsSanctioned(country) {
			detail.SanctionedExposure++
		}
		if x.ref.IsConflictZone(country) {
			detail.ConflictZones++
		}
	}
	if len(multipliers) == 0 {
		return detail
	}

	detail.AvgMultiplier = mean(multipliers)
	detail.RiskDistribution = make(map[string]int)
	for _, m := range multipliers {
		switch {
		case m >= 2.0:
			detail.RiskDistribution["critical"]++
		case m >= 1.5:
			detail.RiskDistribution["high"]++
		case m >= 1.1:
			detail.RiskDistribution["medium"]++
		default:
			detail.RiskDistribution["low"]++
		}
	}

	if len(detail.Countries) > geoMultiCountryMinimum {
		detail.MultiCountryFactor = geoMultiCountryFactor
	}
	detail.Score = clamp100((geoMaxMultiplierScale*detail.MaxMultiplier +
		geoSanctionedScale*float64(detail.SanctionedExposure) +
		geoConflictScale*float64(detail.ConflictZones)) * detail.MultiCountryFactor)
	return detail
}
