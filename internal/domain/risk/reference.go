// Package risk implements the entity risk intelligence engine: an attribute
// classifier that recovers typed findings from free-text profile tags, eight
// independent signal extractors, a correlation analyzer, a weighted ensemble
// scorer, and the confidence / trajectory / tier layers that turn the raw
// ensemble output into a calibrated RiskAssessment.
//
// Scoring is a pure function of (record, reference snapshot, now).  The
// package performs no I/O and is safe to invoke concurrently across entities.
package risk

import (
	"fmt"
	"sort"
	"strings"
)

// Severity is the coarse seriousness bucket assigned to an event category.
type Severity string

const (
	SeverityCritical      Severity = "critical"
	SeverityValuable      Severity = "valuable"
	SeverityInvestigative Severity = "investigative"
	SeverityProbative     Severity = "probative"
)

// EventCategory describes one entry of the event taxonomy.
type EventCategory struct {
	Name      string   `mapstructure:"name" json:"name"`
	RiskScore float64  `mapstructure:"risk_score" json:"risk_score"`
	Severity  Severity `mapstructure:"severity" json:"severity"`
}

// EventSubCategory qualifies an event's procedural stage with a multiplier.
type EventSubCategory struct {
	Name       string  `mapstructure:"name" json:"name"`
	Multiplier float64 `mapstructure:"multiplier" json:"multiplier"`
}

// PEPRole describes one political-exposure role code.
type PEPRole struct {
	Name           string  `mapstructure:"name" json:"name"`
	RiskMultiplier float64 `mapstructure:"risk_multiplier" json:"risk_multiplier"`
	Level          string  `mapstructure:"level" json:"level"`
}

// Tier is one band of the risk classification scale.  Tiers are ordered by
// descending Min and together partition [0,100]: a score belongs to the first
// tier whose Min it reaches, so there is no gap or overlap at boundaries.
type Tier struct {
	Label       string  `mapstructure:"label" json:"label"`
	Min         float64 `mapstructure:"min" json:"min"`
	Color       string  `mapstructure:"color" json:"color"`
	Description string  `mapstructure:"description" json:"description"`
}

// EnsembleWeights are the fixed feature weights of the ensemble scorer.
type EnsembleWeights struct {
	Events        float64 `mapstructure:"events" json:"events"`
	PEP           float64 `mapstructure:"pep" json:"pep"`
	Geographic    float64 `mapstructure:"geographic" json:"geographic"`
	Relationships float64 `mapstructure:"relationships" json:"relationships"`
	Behavior      float64 `mapstructure:"behavior" json:"behavior"`
	Anomalies     float64 `mapstructure:"anomalies" json:"anomalies"`
}

// Sum returns the total of all weights.
func (w EnsembleWeights) Sum() float64 {
	return w.Events + w.PEP + w.Geographic + w.Relationships + w.Behavior + w.Anomalies
}

// DecayRule binds a set of event categories to a temporal decay rate and
// floor.  Rules are evaluated in order; the first rule containing the
// category wins, otherwise DecayDefault applies.
type DecayRule struct {
	Categories []string `mapstructure:"categories" json:"categories"`
	Rate       float64  `mapstructure:"rate" json:"rate"`
	Floor      float64  `mapstructure:"floor" json:"floor"`
}

// Reference is the immutable reference-data snapshot the engine scores
// against: the four code lookups plus the global tunables.  Snapshots are
// built from configuration, validated once, and then treated as read-only;
// hot reload swaps in a whole new snapshot rather than mutating one in place.
type Reference struct {
	// Version identifies the reference-data revision and is surfaced in
	// assessment metadata.
	Version string `mapstructure:"version" json:"version"`

	EventCategories    map[string]EventCategory    `mapstructure:"event_categories" json:"event_categories"`
	EventSubCategories map[string]EventSubCategory `mapstructure:"event_sub_categories" json:"event_sub_categories"`
	PEPRoles           map[string]PEPRole          `mapstructure:"pep_roles" json:"pep_roles"`

	// GeographicMultipliers maps ISO country codes to risk multipliers.
	// Unknown countries resolve to 1.0.
	GeographicMultipliers map[string]float64 `mapstructure:"geographic_multipliers" json:"geographic_multipliers"`

	SanctionedCountries []string `mapstructure:"sanctioned_countries" json:"sanctioned_countries"`
	ConflictZones       []string `mapstructure:"conflict_zones" json:"conflict_zones"`

	Tiers   []Tier          `mapstructure:"tiers" json:"tiers"`
	Weights EnsembleWeights `mapstructure:"weights" json:"weights"`

	DecayRules   []DecayRule `mapstructure:"decay_rules" json:"decay_rules"`
	DecayDefault DecayRule   `mapstructure:"decay_default" json:"decay_default"`

	// SynergyBoosts maps "CATEGORY:SUBCATEGORY" pairs to boosts applied on
	// top of the sub-category multiplier.  Absent pairs boost by 1.0.
	SynergyBoosts map[string]float64 `mapstructure:"synergy_boosts" json:"synergy_boosts"`

	// PEPKeywords maps a role code to the free-text keywords that imply it.
	// Used by the classifier's fuzzy fallback; deliberately small and
	// replaceable — completeness of these lists is a data-quality concern.
	PEPKeywords map[string][]string `mapstructure:"pep_keywords" json:"pep_keywords"`

	// FamilyAssociateRoles lists the role codes counted as indirect
	// (family/associate) exposure by the PEP extractor.
	FamilyAssociateRoles []string `mapstructure:"family_associate_roles" json:"family_associate_roles"`

	// HistoryCapacity bounds the engine's optional assessment history log.
	HistoryCapacity int `mapstructure:"history_capacity" json:"history_capacity"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookups with documented fallbacks (unknown codes never fail scoring)
// ─────────────────────────────────────────────────────────────────────────────

// Category returns the taxonomy entry for code.  Unknown codes fall back to a
// neutral mid-tier entry (score 50, investigative).
func (r *Reference) Category(code string) EventCategory {
	if c, ok := r.EventCategories[code]; ok {
		return c
	}
	return EventCategory{Name: code, RiskScore: 50, Severity: SeverityInvestigative}
}

// SubCategoryMultiplier returns the multiplier for a sub-category code, 1.0
// when unknown or empty.
func (r *Reference) SubCategoryMultiplier(code string) float64 {
	if s, ok := r.EventSubCategories[code]; ok {
		return s.Multiplier
	}
	return 1.0
}

// Role returns the PEP role entry for code.  Unknown roles fall back to a
// neutral multiplier 1.0 at level L1.
func (r *Reference) Role(code string) PEPRole {
	if p, ok := r.PEPRoles[code]; ok {
		return p
	}
	return PEPRole{Name: code, RiskMultiplier: 1.0, Level: "L1"}
}

// KnownRole reports whether code is present in the role table.
func (r *Reference) KnownRole(code string) bool {
	_, ok := r.PEPRoles[code]
	return ok
}

// CountryMultiplier returns the geographic multiplier for a country code,
// 1.0 when unknown.
func (r *Reference) CountryMultiplier(code string) float64 {
	if m, ok := r.GeographicMultipliers[strings.ToUpper(code)]; ok {
		return m
	}
	return 1.0
}

// IsSanctioned reports membership in the sanctioned-country set.
func (r *Reference) IsSanctioned(country string) bool {
	return containsFold(r.SanctionedCountries, country)
}

// IsConflictZone reports membership in the conflict-zone set.
func (r *Reference) IsConflictZone(country string) bool {
	return containsFold(r.ConflictZones, country)
}

// IsFamilyAssociateRole reports whether the role counts as indirect exposure.
func (r *Reference) IsFamilyAssociateRole(role string) bool {
	return containsFold(r.FamilyAssociateRoles, role)
}

// SynergyBoost returns the configured boost for a category/sub-category pair,
// 1.0 for unconfigured pairs.
func (r *Reference) SynergyBoost(category, subCategory string) float64 {
	if b, ok := r.SynergyBoosts[category+":"+subCategory]; ok {
		return b
	}
	return 1.0
}

// DecayParams returns the temporal decay rate and floor for a category.
func (r *Reference) DecayParams(category string) (rate, floor float64) {
	for _, rule := range r.DecayRules {
		if containsFold(rule.Categories, category) {
			return rule.Rate, rule.Floor
		}
	}
	return r.DecayDefault.Rate, r.DecayDefault.Floor
}

// TierFor returns the tier a score falls into: the first tier (descending by
// Min) whose lower bound the score reaches.  Scores below every bound map to
// the last tier.
func (r *Reference) TierFor(score float64) Tier {
	for _, t := range r.Tiers {
		if score >= t.Min {
			return t
		}
	}
	if n := len(r.Tiers); n > 0 {
		return r.Tiers[n-1]
	}
	return Tier{Label: "Unclassified"}
}

// Validate checks the structural invariants the engine depends on: ensemble
// weights summing to 1, and tiers sorted descending with the bottom tier
// anchored at 0 so the bands partition [0,100] without gap or overlap.
func (r *Reference) Validate() error {
	if s := r.Weights.Sum(); s < 0.999 || s > 1.001 {
		return fmt.Errorf("reference: ensemble weights must sum to 1.0, got %.4f", s)
	}
	if len(r.Tiers) == 0 {
		return fmt.Errorf("reference: at least one risk tier is required")
	}
	if !sort.SliceIsSorted(r.Tiers, func(i, j int) bool { return r.Tiers[i].Min > r.Tiers[j].Min }) {
		return fmt.Errorf("reference: tiers must be ordered by descending lower bound")
	}
	for i := 0; i < len(r.Tiers)-1; i++ {
		if r.Tiers[i].Min == r.Tiers[i+1].Min {
			return fmt.Errorf("reference: tiers %q and %q share lower bound %.2f",
				r.Tiers[i].Label, r.Tiers[i+1].Label, r.Tiers[i].Min)
		}
	}
	if last := r.Tiers[len(r.Tiers)-1]; last.Min != 0 {
		return fmt.Errorf("reference: bottom tier %q must start at 0, got %.2f", last.Label, last.Min)
	}
	if r.DecayDefault.Floor < 0 || r.DecayDefault.Floor > 1 {
		return fmt.Errorf("reference: default decay floor must lie in [0,1]")
	}
	for i, rule := range r.DecayRules {
		if rule.Floor < 0 || rule.Floor > 1 {
			return fmt.Errorf("reference: decay rule %d floor must lie in [0,1]", i)
		}
		if rule.Rate < 0 {
			return fmt.Errorf("reference: decay rule %d rate must be >= 0", i)
		}
	}
	return nil
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
