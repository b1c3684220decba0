package risk

import (
	"strings"

	"github.com/sentineldata/riskintel/internal/domain/entity"
)

// highRiskRelationshipTypes are the link types whose presence amplifies the
// whole ensemble, not just the relationship component.
var highRiskRelationshipTypes = map[string]struct{}{
	"BUSINESS_PARTNER": {},
	"ASSOCIATE":        {},
	"BENEFICIAL_OWNER": {},
}

// NetworkDetail is the network-effect extractor's output.  NetworkRisk is
// the high-risk fraction on a 0-100 scale, reported but not scored directly.
type NetworkDetail struct {
	Amplification       float64 `json:"amplification"`
	NetworkRisk         float64 `json:"network_risk"`
	HighRiskConnections int     `json:"high_risk_connections"`
	TotalConnections    int     `json:"total_connections"`
}

// NetworkEffectExtractor derives the ensemble's network amplification from
// the count of high-risk link types.  An entity without relationships gets a
// neutral factor; any declared network starts at a small premium.
type NetworkEffectExtractor struct{}

// NewNetworkEffectExtractor builds the extractor.
func NewNetworkEffectExtractor() *NetworkEffectExtractor {
	return &NetworkEffectExtractor{}
}

// Extract computes the amplification factor.
func (x *NetworkEffectExtractor) Extract(relationships []entity.Relationship) NetworkDetail {
	detail := NetworkDetail{
		Amplification:    1.0,
		TotalConnections: len(relationships),
	}
	if len(relationships) == 0 {
		return detail
	}

	for _, rel := range relationships {
		t := strings.ToUpper(strings.TrimSpace(rel.Type))
		if _, ok := highRiskRelationshipTypes[t]; ok {
			detail.HighRiskConnections++
		}
	}

	detail.NetworkRisk = 100 * float64(detail.HighRiskConnections) / float64(detail.TotalConnections)

	switch {
	case detail.HighRiskConnections > 3:
		detail.Amplification = 1.3
	case detail.HighRiskConnections > 1:
		detail.Amplification = 1.2
	default:
		detail.Amplification = 1.1
	}
	return detail
}
