// Package catalog describes the rewards of known card products.
package catalog

import "strings"

// FallbackBenefits is returned when no known product fragment matches.
const FallbackBenefits = "General rewards card (est.)"

// Entry pairs a product-name fragment with its benefits summary.
type Entry struct {
	Fragment string `json:"fragment"`
	Benefits string `json:"benefits"`
}

// entries is evaluated top to bottom; the first fragment contained in the
// selection key wins, so more specific fragments must come first.
var entries = []Entry{
	{Fragment: "Sapphire Reserve", Benefits: "3× dining & travel, $300 travel credit, lounge access (est.)"},
	{Fragment: "Sapphire Preferred", Benefits: "3× dining, 2× travel, primary rental CDW (est.)"},
	{Fragment: "Freedom Unlimited", Benefits: "1.5× everywhere, 3× dining & drugstores (est.)"},
	{Fragment: "Freedom Flex", Benefits: "5× rotating categories, 3× dining (est.)"},
	{Fragment: "Blue Cash Preferred", Benefits: "6% groceries & streaming, 3% transit and gas (est.)"},
	{Fragment: "Blue Cash Everyday", Benefits: "3% groceries, online retail and gas (est.)"},
	{Fragment: "Custom Cash", Benefits: "5% top spend category incl. gas (est.)"},
	{Fragment: "Double Cash", Benefits: "2% cash back everywhere (est.)"},
	{Fragment: "Venture X", Benefits: "2× everywhere, 10× hotels via portal, lounge access (est.)"},
	{Fragment: "Gold", Benefits: "4× dining & U.S. groceries, 3× flights (est.)"},
	{Fragment: "Platinum", Benefits: "5× flights & prepaid hotels, lounge access (est.)"},
}

// Benefits returns the benefits summary for the first catalog fragment that
// selectionKey contains. Matching is case-sensitive.
func Benefits(selectionKey string) string {
	for _, e := range entries {
		if strings.Contains(selectionKey, e.Fragment) {
			return e.Benefits
		}
	}
	return FallbackBenefits
}

// Entries returns a copy of the ordered catalog.
func Entries() []Entry {
	return append([]Entry(nil), entries...)
}
