// Package normalize canonicalizes free-text purchase sources. Years of
// quick data entry left the same shop spelled a dozen ways; these rules
// fold them into a stable "Chain - Location" form.
package normalize

import "strings"

// aliases maps whole lowercased values to their canonical form.
var aliases = map[string]string{
	"fb":           "Facebook Marketplace",
	"facebook":     "Facebook Marketplace",
	"facebook m":   "Facebook Marketplace",
	"home":         "Home",
	"adverts":      "Adverts",
	"vinted":       "Vinted",
	"tk max":       "TK Maxx",
	"tk maxx":      "TK Maxx",
	"temu":         "Temu",
	"charity shop": "Charity Shop",
	"free":         "Free",
	"dump":         "Dump",
}

// Prefix rules map a lowercased prefix to the canonical chain name;
// whatever follows the prefix becomes the title-cased location. The split
// into two groups matters: the contains-rules for car boot, auction,
// wholesale and thrift run between them, so "oxfam car boot" is a car
// boot, not an Oxfam branch.
type prefixRule struct {
	prefix string
	chain  string
}

var earlyPrefixes = []prefixRule{
	{"svp ", "SVP"},
	{"vision ireland ", "Vision Ireland"},
	{"vision ", "Vision Ireland"},
	{"sue ryder ", "Sue Ryder"},
	{"cancer research ", "Cancer Research"},
	{"cancer ", "Cancer Research"},
}

var latePrefixes = []prefixRule{
	{"oxfam ", "Oxfam"},
	{"jack and jill ", "Jack and Jill"},
	{"enable ", "Enable Ireland"},
	{"barnardos ", "Barnardos"},
	{"ark ", "Ark"},
}

// Source returns the canonical form of a purchase source, or the input
// unchanged when no rule applies.
func Source(value string) string {
	source := strings.TrimSpace(value)
	if source == "" {
		return source
	}

	lower := strings.Join(strings.Fields(strings.ToLower(source)), " ")

	if canonical, ok := aliases[lower]; ok {
		return canonical
	}

	if canonical, ok := matchPrefix(lower, earlyPrefixes); ok {
		return canonical
	}

	switch {
	case strings.Contains(lower, "car boot") || strings.Contains(lower, "carboot"):
		loc := strings.ReplaceAll(lower, "car boot", "")
		loc = trimDash(strings.ReplaceAll(loc, "carboot", ""))

		return location("Car Boot", orOther(loc))
	case strings.Contains(lower, "auction"):
		return "Auction - " + auctionHouse(lower)
	case strings.Contains(lower, "wholesale"):
		return "Wholesale - " + wholesaleKind(lower)
	case strings.Contains(lower, "thrift"):
		loc := trimDash(strings.ReplaceAll(lower, "thrift", ""))
		return location("Thrift", orOther(loc))
	}

	if canonical, ok := matchPrefix(lower, latePrefixes); ok {
		return canonical
	}

	if lower == "ark" {
		return "Ark - Bray"
	}

	return source
}

func matchPrefix(lower string, rules []prefixRule) (string, bool) {
	for _, p := range rules {
		if strings.HasPrefix(lower, p.prefix) {
			return location(p.chain, trimDash(strings.TrimPrefix(lower, p.prefix))), true
		}
	}

	return "", false
}

func location(chain, loc string) string {
	return chain + " - " + title(loc)
}

// trimDash keeps already-canonical "Chain - Location" values stable on a
// second run.
func trimDash(loc string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(loc), "-"))
}

func orOther(loc string) string {
	if loc == "" {
		return "Other"
	}

	return loc
}

func auctionHouse(lower string) string {
	switch {
	case strings.Contains(lower, "lockes"):
		return "Lockes"
	case strings.Contains(lower, "matthews"):
		return "Matthews"
	case strings.Contains(lower, "south dublin"):
		return "South Dublin"
	case strings.Contains(lower, "downs"):
		return "Downs"
	}

	return "Other"
}

func wholesaleKind(lower string) string {
	switch {
	case strings.Contains(lower, "italian vintage"):
		return "Italian Vintage"
	case strings.Contains(lower, "vintage"):
		return "Vintage"
	}

	return "Other"
}

// title uppercases the first letter of each space-separated word. Good
// enough for town names; strings.Title is deprecated and x/text/cases is
// overkill for ASCII place names.
func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
