package recommend

import (
	"strings"

	"cardwise/pkg/domain"
)

// Rule maps spending-category keywords to a product-name hint and the
// rationale shown to the user.
type Rule struct {
	Name      string
	Keywords  []string
	Hint      string
	Rationale string
}

// matches reports whether the lower-cased category contains any keyword.
// A rule without keywords matches everything.
func (r Rule) matches(category string) bool {
	if len(r.Keywords) == 0 {
		return true
	}
	for _, kw := range r.Keywords {
		if strings.Contains(category, kw) {
			return true
		}
	}
	return false
}

// rules is evaluated in order; the last entry is the catch-all.
var rules = []Rule{
	{Name: "dining", Keywords: []string{"dining", "restaurant", "coffee"}, Hint: "Sapphire", Rationale: "3× on dining"},
	{Name: "grocery", Keywords: []string{"grocery", "grocer"}, Hint: "Blue Cash Preferred", Rationale: "6% groceries"},
	{Name: "gas", Keywords: []string{"gas", "fuel"}, Hint: "Custom Cash", Rationale: "5% on gas"},
	{Name: "travel", Keywords: []string{"travel", "air", "hotel"}, Hint: "Sapphire Reserve", Rationale: "Premium travel perks"},
	{Name: "everyday", Hint: "Freedom Unlimited", Rationale: "1.5× everywhere"},
}

// Result is the outcome of a recommendation. Card is nil when no candidate
// matches the hint; Rationale is always set.
type Result struct {
	Card      *domain.Card `json:"card,omitempty"`
	Rule      string       `json:"rule"`
	Hint      string       `json:"hint"`
	Rationale string       `json:"rationale"`
}

// Recommend selects a card for a spending category.
// This is pure domain logic - no I/O, no side effects.
func Recommend(category string, candidates []domain.Card) Result {
	rule := selectRule(strings.ToLower(category))
	result := Result{
		Rule:      rule.Name,
		Hint:      rule.Hint,
		Rationale: rule.Rationale,
	}
	if card, ok := findCard(rule.Hint, candidates); ok {
		result.Card = &card
	}
	return result
}

func selectRule(category string) Rule {
	for _, r := range rules {
		if r.matches(category) {
			return r
		}
	}
	return rules[len(rules)-1]
}

// findCard returns the first candidate, in list order, whose product name
// contains hint case-insensitively.
func findCard(hint string, candidates []domain.Card) (domain.Card, bool) {
	needle := strings.ToLower(hint)
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.ProductName), needle) {
			return c, true
		}
	}
	return domain.Card{}, false
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Keywords = append([]string(nil), r.Keywords...)
		out[i] = r
	}
	return out
}
