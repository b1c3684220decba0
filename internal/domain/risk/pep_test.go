package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sentineldata/riskintel/internal/domain/entity"
)

func classify(t *testing.T, values ...string) *AttributeProfile {
	t.Helper()
	tags := make([]entity.AttributeTag, 0, len(values))
	for _, v := range values {
		tags = append(tags, entity.AttributeTag{CodeType: RoleTagType, RawValue: v})
	}
	return NewClassifier(DefaultReference()).Classify(tags)
}

func TestPEPExtractNonPEP(t *testing.T) {
	x := NewPEPRiskExtractor(DefaultReference())

	for _, p := range []*AttributeProfile{nil, {RoleMultiplier: 1.0}} {
		d := x.Extract(p)
		assert.False(t, d.IsPEP)
		assert.Zero(t, d.Score)
		assert.Equal(t, 1.0, d.ConnectionMultiplier)
	}
}

func TestPEPExtractHeadOfState(t *testing.T) {
	x := NewPEPRiskExtractor(DefaultReference())
	d := x.Extract(classify(t, "HOS:L6"))

	assert.True(t, d.IsPEP)
	assert.Equal(t, 2.0, d.HighestMultiplier)
	assert.Equal(t, 2.0, d.WeightedLevelScore) // L6
	assert.Equal(t, 1, d.DirectPolitical)
	assert.Zero(t, d.FamilyAssociate)
	assert.Equal(t, 1.2, d.ConnectionMultiplier)
	// 60 × 2.0 × 2.0 × 1.2 (diversity 1+0.2×1/1) × 1.2 saturates the cap.
	assert.Equal(t, 100.0, d.Score)
}

func TestPEPExtractFamilyOnly(t *testing.T) {
	x := NewPEPRiskExtractor(DefaultReference())
	d := x.Extract(classify(t, "FAM"))

	assert.Equal(t, 1, d.FamilyAssociate)
	assert.Zero(t, d.DirectPolitical)
	assert.Equal(t, 1.1, d.ConnectionMultiplier)
	// 60 × 1.2 × 1.2 × 1.1 × 1.2 still exceeds the cap.
	assert.Equal(t, 100.0, d.Score)
}

func TestPEPExtractMixedConnections(t *testing.T) {
	x := NewPEPRiskExtractor(DefaultReference())
	d := x.Extract(classify(t, "CAB:L5", "FAM"))

	assert.Equal(t, 1, d.DirectPolitical)
	assert.Equal(t, 1, d.FamilyAssociate)
	assert.Equal(t, 1.3, d.ConnectionMultiplier)
}

func TestPEPExtractNoLevelsNeutralWeight(t *testing.T) {
	// A keyword-only match carries the role's default level, so force a
	// profile without levels directly.
	x := NewPEPRiskExtractor(DefaultReference())
	p := &AttributeProfile{
		IsPEP:          true,
		Roles:          []string{"ASC"},
		RoleFindings:   []Finding{{Kind: FindingPEPRole, Role: "ASC", Multiplier: 1.1}},
		RoleMultiplier: 1.1,
	}
	d := x.Extract(p)
	assert.Equal(t, 1.0, d.WeightedLevelScore)
	assert.Greater(t, d.Score, 0.0)
}

func TestPEPExtractDiversityBonus(t *testing.T) {
	x := NewPEPRiskExtractor(DefaultReference())

	// Three findings of one role dilute diversity against three distinct
	// roles of comparable rank.
	repeated := x.Extract(classify(t, "MUN:L3", "MUN:L3", "MUN:L3"))
	distinct := x.Extract(classify(t, "MUN:L3", "POL:L3", "REG:L3"))
	assert.Less(t, repeated.DiversityBonus, distinct.DiversityBonus)
	assert.InDelta(t, 1.0+0.2/3, repeated.DiversityBonus, 0.001)
	assert.InDelta(t, 1.2, distinct.DiversityBonus, 0.001)
}
