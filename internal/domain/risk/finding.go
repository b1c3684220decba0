package risk

import "time"

// FindingKind discriminates the typed findings the classifier recovers from
// raw attribute tags.
type FindingKind string

const (
	// FindingPEPRole is a political-exposure role, optionally with a level.
	FindingPEPRole FindingKind = "pep_role"
	// FindingPartyRating is a source rating code with an optional as-of date.
	FindingPartyRating FindingKind = "party_rating"
	// FindingAssociation is a relationship sentence linking the entity to a
	// politically exposed person.
	FindingAssociation FindingKind = "association"
	// FindingOrganizationHint flags attribute text that names a corporate
	// vehicle rather than a person.
	FindingOrganizationHint FindingKind = "organization_hint"
)

// Finding is one classified attribute.  Only the fields relevant to Kind are
// populated.
type Finding struct {
	Kind FindingKind `json:"kind"`

	// PEP role fields.
	Role       string  `json:"role,omitempty"`
	Level      string  `json:"level,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`

	// Party rating fields.
	Rating   string     `json:"rating,omitempty"`
	AsOfDate *time.Time `json:"as_of_date,omitempty"`

	// Free text carried by association and organization findings.
	Text string `json:"text,omitempty"`
}

// PartyRating is a source-assigned rating with its as-of date.
type PartyRating struct {
	Rating   string     `json:"rating"`
	AsOfDate *time.Time `json:"as_of_date,omitempty"`
}

// AttributeProfile aggregates all findings for one entity.  It is the
// classifier's output and the PEP extractor's input.
type AttributeProfile struct {
	// IsPEP is true when at least one role finding was recovered.
	IsPEP bool `json:"is_pep"`

	// Roles, Levels and Descriptions are the distinct role codes, levels and
	// human-readable role names seen, in first-seen order.
	Roles        []string `json:"roles,omitempty"`
	Levels       []string `json:"levels,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`

	// RoleFindings keeps every individual role finding, duplicates included;
	// the PEP extractor derives its diversity counts from this.
	RoleFindings []Finding `json:"role_findings,omitempty"`

	// RoleMultiplier is the highest risk multiplier across role findings,
	// never below 1.0.
	RoleMultiplier float64 `json:"role_multiplier"`

	Associations      []string      `json:"associations,omitempty"`
	OrganizationHints []string      `json:"organization_hints,omitempty"`
	Ratings           []PartyRating `json:"ratings,omitempty"`
}

func (p *AttributeProfile) addRole(f Finding) {
	p.IsPEP = true
	p.RoleFindings = append(p.RoleFindings, f)
	if !containsFold(p.Roles, f.Role) {
		p.Roles = append(p.Roles, f.Role)
	}
	if f.Level != "" && !containsFold(p.Levels, f.Level) {
		p.Levels = append(p.Levels, f.Level)
	}
	if f.Multiplier > p.RoleMultiplier {
		p.RoleMultiplier = f.Multiplier
	}
}
