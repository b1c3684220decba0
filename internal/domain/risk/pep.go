package risk

// pepBaseScore anchors the political-exposure component before multipliers.
const pepBaseScore = 60.0

// levelWeights maps exposure levels to score weights, linear from L1 to L6.
var levelWeights = map[string]float64{
	"L1": 1.0, "L2": 1.2, "L3": 1.4, "L4": 1.6, "L5": 1.8, "L6": 2.0,
}

// PEPRiskDetail is the political-exposure extractor's output.
type PEPRiskDetail struct {
	Score                float64        `json:"score"`
	IsPEP                bool           `json:"is_pep"`
	HighestMultiplier    float64        `json:"highest_multiplier"`
	LevelDistribution    map[string]int `json:"level_distribution,omitempty"`
	DirectPolitical      int            `json:"direct_political"`
	FamilyAssociate      int            `json:"family_associate"`
	WeightedLevelScore   float64        `json:"weighted_level_score"`
	DiversityBonus       float64        `json:"diversity_bonus"`
	ConnectionMultiplier float64        `json:"connection_multiplier"`
}

// PEPRiskExtractor scores political exposure from the classified attribute
// profile: a fixed base scaled by the strongest role multiplier, the average
// level weight, role diversity, and whether exposure is direct or only via
// family and associates.
type PEPRiskExtractor struct {
	ref *Reference
}

// NewPEPRiskExtractor builds the extractor over a reference snapshot.
func NewPEPRiskExtractor(ref *Reference) *PEPRiskExtractor {
	return &PEPRiskExtractor{ref: ref}
}

// Extract computes the exposure score from a profile.  Non-PEP profiles score
// zero with neutral factors.
func (x *PEPRiskExtractor) Extract(profile *AttributeProfile) PEPRiskDetail {
	detail := PEPRiskDetail{
		HighestMultiplier:    1.0,
		DiversityBonus:       1.0,
		ConnectionMultiplier: 1.0,
		WeightedLevelScore:   1.0,
	}
	if profile == nil || !profile.IsPEP {
		return detail
	}
	detail.IsPEP = true
	detail.HighestMultiplier = profile.RoleMultiplier
	detail.LevelDistribution = make(map[string]int)

	for _, f := range profile.RoleFindings {
		if f.Level != "" {
			detail.LevelDistribution[f.Level]++
		}
		if x.ref.IsFamilyAssociateRole(f.Role) {
			detail.FamilyAssociate++
		} else {
			detail.DirectPolitical++
		}
	}

	// Average level weight over the distinct levels seen; profiles whose
	// findings carried no level stay at the neutral 1.0.
	if len(profile.Levels) > 0 {
		var sum float64
		for _, lvl := range profile.Levels {
			w, ok := levelWeights[lvl]
			if !ok {
				w = 1.0
			}
			sum += w
		}
		detail.WeightedLevelScore = sum / float64(len(profile.Levels))
	}

	if total := len(profile.RoleFindings); total > 0 {
		detail.DiversityBonus = 1 + 0.2*float64(len(profile.Roles))/float64(total)
	}

	switch {
	case detail.DirectPolitical > 0 && detail.FamilyAssociate > 0:
		detail.ConnectionMultiplier = 1.3
	case detail.DirectPolitical > 0:
		detail.ConnectionMultiplier = 1.2
	case detail.FamilyAssociate > 0:
		detail.ConnectionMultiplier = 1.1
	}

	detail.Score = clamp100(pepBaseScore * detail.HighestMultiplier *
		detail.WeightedLevelScore * detail.DiversityBonus * detail.ConnectionMultiplier)
	return detail
}
