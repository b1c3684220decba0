package risk

import (
	"strings"
	"time"

	"github.com/sentineldata/riskintel/internal/domain/entity"
)

// Attribute namespaces recognised by the classifier.  Tags from any other
// namespace are ignored.
const (
	RoleTagType   = "PTY"
	RatingTagType = "PRT"
)

// ratingDateLayout is the as-of date format embedded in rating tag values
// ("A:01/12/2023").
const ratingDateLayout = "01/02/2006"

var pepLevels = map[string]struct{}{
	"L1": {}, "L2": {}, "L3": {}, "L4": {}, "L5": {}, "L6": {},
}

// relationshipPhrases are the sentence openers that mark an attribute value
// as describing a relationship to an exposed person rather than a role held
// by the entity itself.
var relationshipPhrases = []string{
	"family member of",
	"senior official of",
	"associate of",
	"close associate of",
	"linked to",
}

var kinshipWords = []string{
	"mother", "father", "parent", "sibling", "brother", "sister",
	"son", "daughter", "child", "spouse", "wife", "husband",
	"uncle", "aunt", "cousin", "nephew", "niece", "relative",
}

var corporateSuffixes = []string{
	"LLC", "L.L.C", "LTD", "LIMITED", "INC", "CORP", "CORPORATION",
	"GMBH", "S.A.", "PLC", "HOLDING", "HOLDINGS",
}

// Classifier turns raw attribute tags into typed findings by running an
// ordered sequence of pattern rules; the first matching rule wins for a tag.
// Rules go from most to least structured so that a precise "CODE:LEVEL" value
// is never swallowed by the fuzzy keyword fallback.
type Classifier struct {
	ref *Reference
}

// NewClassifier builds a classifier over a reference snapshot.
func NewClassifier(ref *Reference) *Classifier {
	return &Classifier{ref: ref}
}

// Classify runs all tags through the rule chain and aggregates the findings
// into a profile.  Unrecognised tags are skipped silently; classification
// never fails.
func (c *Classifier) Classify(tags []entity.AttributeTag) *AttributeProfile {
	profile := &AttributeProfile{RoleMultiplier: 1.0}
	for _, tag := range tags {
		for _, f := range c.classifyTag(tag) {
			switch f.Kind {
			case FindingPEPRole:
				profile.addRole(f)
				if name := c.ref.Role(f.Role).Name; !containsFold(profile.Descriptions, name) {
					profile.Descriptions = append(profile.Descriptions, name)
				}
			case FindingPartyRating:
				profile.Ratings = append(profile.Ratings, PartyRating{Rating: f.Rating, AsOfDate: f.AsOfDate})
			case FindingAssociation:
				profile.Associations = append(profile.Associations, f.Text)
			case FindingOrganizationHint:
				profile.OrganizationHints = append(profile.OrganizationHints, f.Text)
			}
		}
	}
	return profile
}

// classifyTag applies the rule chain to a single tag.  A tag can yield more
// than one finding: a relationship sentence produces both an inferred role
// and an association.
func (c *Classifier) classifyTag(tag entity.AttributeTag) []Finding {
	value := strings.TrimSpace(tag.RawValue)
	if value == "" {
		return nil
	}

	switch tag.CodeType {
	case RatingTagType:
		return []Finding{c.classifyRating(value)}
	case RoleTagType:
		return c.classifyRole(value)
	default:
		return nil
	}
}

func (c *Classifier) classifyRating(value string) Finding {
	f := Finding{Kind: FindingPartyRating, Rating: value}
	if i := strings.IndexByte(value, ':'); i >= 0 {
		f.Rating = strings.TrimSpace(value[:i])
		if d, err := time.Parse(ratingDateLayout, strings.TrimSpace(value[i+1:])); err == nil {
			f.AsOfDate = &d
		}
	}
	return f
}

func (c *Classifier) classifyRole(value string) []Finding {
	upper := strings.ToUpper(value)
	lower := strings.ToLower(value)

	// Rule 1: "CODE:LEVEL" with a known role code and a valid level.
	if i := strings.IndexByte(upper, ':'); i >= 0 {
		code := strings.TrimSpace(upper[:i])
		level := strings.TrimSpace(upper[i+1:])
		if _, ok := pepLevels[level]; ok && c.ref.KnownRole(code) {
			return []Finding{{
				Kind:       FindingPEPRole,
				Role:       code,
				Level:      level,
				Multiplier: c.ref.Role(code).RiskMultiplier,
			}}
		}
	}

	// Rule 2: the value is exactly a known role code.
	if c.ref.KnownRole(upper) {
		role := c.ref.Role(upper)
		return []Finding{{
			Kind:       FindingPEPRole,
			Role:       upper,
			Level:      role.Level,
			Multiplier: role.RiskMultiplier,
		}}
	}

	// Rule 3: relationship sentence or kinship wording.  Yields both an
	// inferred indirect-exposure role and the association text.
	if phrase, ok := matchRelationship(lower); ok {
		role := "ASC"
		if phrase == "family member of" || isKinship(lower) {
			role = "FAM"
		}
		return []Finding{
			{Kind: FindingPEPRole, Role: role, Level: c.ref.Role(role).Level, Multiplier: c.ref.Role(role).RiskMultiplier},
			{Kind: FindingAssociation, Text: value},
		}
	}
	if isKinship(lower) {
		return []Finding{
			{Kind: FindingPEPRole, Role: "FAM", Level: c.ref.Role("FAM").Level, Multiplier: c.ref.Role("FAM").RiskMultiplier},
			{Kind: FindingAssociation, Text: value},
		}
	}

	// Rule 4: corporate-suffix tokens mark the attribute as naming an
	// organization, not a person.
	if hasCorporateSuffix(upper) {
		return []Finding{{Kind: FindingOrganizationHint, Text: value}}
	}

	// Rule 5: fuzzy keyword fallback over the configured role vocabularies.
	for _, role := range []string{"HOS", "CAB", "MIL", "JUD", "FAM", "ASC"} {
		for _, kw := range c.ref.PEPKeywords[role] {
			if strings.Contains(lower, kw) {
				return []Finding{{
					Kind:       FindingPEPRole,
					Role:       role,
					Level:      c.ref.Role(role).Level,
					Multiplier: c.ref.Role(role).RiskMultiplier,
				}}
			}
		}
	}

	return nil
}

func matchRelationship(lower string) (string, bool) {
	for _, p := range relationshipPhrases {
		if strings.Contains(lower, p) {
			return p, true
		}
	}
	return "", false
}

func isKinship(lower string) bool {
	for _, w := range kinshipWords {
		for _, tok := range strings.FieldsFunc(lower, func(r rune) bool {
			return r == ' ' || r == ',' || r == '.' || r == ';'
		}) {
			if tok == w {
				return true
			}
		}
	}
	return false
}

func hasCorporateSuffix(upper string) bool {
	for _, tok := range strings.Fields(upper) {
		tok = strings.Trim(tok, ".,;")
		for _, s := range corporateSuffixes {
			if tok == s {
				return true
			}
		}
	}
	return false
}
