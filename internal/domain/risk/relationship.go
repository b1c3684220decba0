package risk

import (
	"strings"

	"github.com/sentineldata/riskintel/internal/domain/entity"
)

const relationshipBaseScore = 25.0

// relationshipCategory groups relationship types and carries the category's
// score weight.  Categories are matched in order; a type outside every list
// falls into the "unknown" category with neutral weight.
type relationshipCategory struct {
	name   string
	types  []string
	weight float64
}

var relationshipCategories = []relationshipCategory{
	{name: "ownership", weight: 2.0, types: []string{"BENEFICIAL_OWNER", "SHAREHOLDER", "DIRECTOR", "OFFICER"}},
	{name: "business", weight: 1.5, types: []string{"BUSINESS_PARTNER", "ASSOCIATE", "CONTRACTOR", "VENDOR", "CLIENT"}},
	{name: "legal", weight: 1.3, types: []string{"ATTORNEY", "LEGAL_REPRESENTATIVE", "TRUSTEE"}},
	{name: "financial", weight: 1.2, types: []string{"BANK", "LENDER", "BORROWER", "GUARANTOR"}},
	{name: "personal", weight: 1.1, types: []string{"FAMILY_MEMBER", "SPOUSE", "RELATIVE", "FRIEND"}},
}

// RelationshipRiskDetail is the relationship extractor's output.
type RelationshipRiskDetail struct {
	Score                float64        `json:"score"`
	Count                int            `json:"count"`
	NetworkNodes         int            `json:"network_nodes"`
	NetworkDensity       float64        `json:"network_density"`
	CategoryDistribution map[string]int `json:"category_distribution,omitempty"`
	Diversity            int            `json:"diversity"`
	MaxWeight            float64        `json:"max_weight"`
	ComplexityFactor     float64        `json:"complexity_factor"`
	DiversityFactor      float64        `json:"diversity_factor"`
}

// RelationshipRiskExtractor scores the entity's declared network: a fixed
// base scaled by the heaviest relationship category present, the density of
// links per distinct counterpart, and the spread across categories.
type RelationshipRiskExtractor struct{}

// NewRelationshipRiskExtractor builds the extractor.
func NewRelationshipRiskExtractor() *RelationshipRiskExtractor {
	return &RelationshipRiskExtractor{}
}

// Extract computes relationship risk.  No relationships scores zero.
func (x *RelationshipRiskExtractor) Extract(relationships []entity.Relationship) RelationshipRiskDetail {
	detail := RelationshipRiskDetail{
		Count:            len(relationships),
		ComplexityFactor: 1.0,
		DiversityFactor:  1.0,
	}
	if len(relationships) == 0 {
		return detail
	}

	detail.CategoryDistribution = make(map[string]int)
	counterparts := make(map[string]struct{})
	for _, rel := range relationships {
		counterparts[strings.TrimSpace(rel.CounterpartName)] = struct{}{}
		name, weight := categorize(rel.Type)
		detail.CategoryDistribution[name]++
		if weight > detail.MaxWeight {
			detail.MaxWeight = weight
		}
	}
	for name := range detail.CategoryDistribution {
		if name != "unknown" {
			detail.Diversity++
		}
	}

	detail.NetworkNodes = len(counterparts)
	detail.NetworkDensity = float64(detail.Count) / float64(detail.NetworkNodes)
	switch {
	case detail.NetworkDensity > 2.0:
		detail.ComplexityFactor = 1.3
	case detail.NetworkDensity > 1.5:
		detail.ComplexityFactor = 1.2
	}
	detail.DiversityFactor = 1 + 0.1*float64(detail.Diversity)

	detail.Score = clamp100(relationshipBaseScore * detail.MaxWeight *
		detail.ComplexityFactor * detail.DiversityFactor)
	return detail
}

func categorize(relType string) (string, float64) {
	t := strings.ToUpper(strings.TrimSpace(relType))
	for _, c := range relationshipCategories {
		for _, known := range c.types {
			if t == known {
				return c.name, c.weight
			}
		}
	}
	return "unknown", 1.0
}
