package classify

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Category is one of the dashboard's article categories.
type Category string

const (
	Energy  Category = "Energy"
	Policy  Category = "Policy"
	Tech    Category = "Tech"
	Climate Category = "Climate"
)

// AllCategories returns the categories in tie-break order.
func AllCategories() []Category {
	return []Category{Energy, Policy, Tech, Climate}
}

var categoryKeywords = map[Category][]string{
	Energy: {
		"solar", "wind", "turbine", "renewable", "renewables", "grid", "battery",
		"storage", "hydrogen", "geothermal", "nuclear", "power plant", "offshore",
		"electricity", "utility", "energy", "photovoltaic", "hydro",
	},
	Policy: {
		"policy", "law", "legislation", "regulation", "regulator", "treaty",
		"government", "minister", "parliament", "congress", "tax", "subsidy",
		"carbon tax", "cap and trade", "agreement", "accord", "summit", "cop",
		"pledge", "standard", "mandate", "ban",
	},
	Tech: {
		"technology", "startup", "innovation", "carbon capture", "direct air capture",
		"electric vehicle", "ev", "charging", "software", "ai", "sensor",
		"prototype", "breakthrough", "material", "recycling", "chip", "algae",
	},
	Climate: {
		"climate", "warming", "emissions", "drought", "flood", "wildfire",
		"heatwave", "biodiversity", "deforestation", "ocean", "glacier",
		"adaptation", "resilience", "weather",
	},
}

// Aliases maps short command-line names to categories.
var Aliases = map[string]Category{
	"energy":  Energy,
	"policy":  Policy,
	"tech":    Tech,
	"climate": Climate,
	"power":   Energy,
	"law":     Policy,
}

// ResolveAlias maps an alias or a category name (any case) to a Category.
func ResolveAlias(alias string) (Category, error) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	if cat, ok := Aliases[alias]; ok {
		return cat, nil
	}
	for _, cat := range AllCategories() {
		if strings.EqualFold(string(cat), alias) {
			return cat, nil
		}
	}
	valid := make([]string, 0, len(Aliases))
	for k := range Aliases {
		valid = append(valid, k)
	}
	sort.Strings(valid)
	return "", fmt.Errorf("unknown category %q (valid: %s)", alias, strings.Join(valid, ", "))
}

// Classify picks the category for a feed item from its title and summary.
// Title matches count double; ties go to the earlier category and an item
// with no matches is Climate.
func Classify(title, description string) Category {
	titleTokens := tokenize(title)
	descTokens := tokenize(description)
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	bestCat := Climate
	bestScore := 0

	for _, cat := range AllCategories() {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(kw, " ") {
				if strings.Contains(titleLower, kw) {
					score += 2
				}
				if strings.Contains(descLower, kw) {
					score++
				}
				continue
			}
			// Short keywords like "ev" only match whole words.
			exact := len(kw) <= 3
			score += 2 * countMatches(titleTokens, kw, exact)
			score += countMatches(descTokens, kw, exact)
		}
		if score > bestScore {
			bestScore = score
			bestCat = cat
		}
	}
	return bestCat
}

func countMatches(tokens []string, kw string, exact bool) int {
	n := 0
	for _, t := range tokens {
		if t == kw || (!exact && strings.HasPrefix(t, kw)) {
			n++
		}
	}
	return n
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
