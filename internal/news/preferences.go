package news

import "strings"

// DefaultName is the profile name used before the user edits their profile.
const DefaultName = "Dr. Anya Sharma"

// Preferences drive the For You view. Categories and sources are sets;
// keywords keep the order they were entered in.
type Preferences struct {
	Name                string   `json:"name"`
	PreferredCategories []string `json:"preferredCategories"`
	PreferredSources    []string `json:"preferredSources"`
	TrackedKeywords     []string `json:"trackedKeywords"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Name:                DefaultName,
		PreferredCategories: []string{"Energy", "Tech"},
		PreferredSources:    []string{},
		TrackedKeywords:     []string{},
	}
}

// PreferencesFromForm builds a preference record from the profile form.
// keywords is the raw comma-separated text field.
func PreferencesFromForm(name string, categories, sources []string, keywords string) Preferences {
	return Preferences{
		Name:                name,
		PreferredCategories: dedupe(categories),
		PreferredSources:    dedupe(sources),
		TrackedKeywords:     ParseKeywords(keywords),
	}
}

// ParseKeywords splits comma-separated text, trims each part and drops
// empty ones.
func ParseKeywords(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// KeywordText is the inverse of ParseKeywords, used to prefill the form.
func (p Preferences) KeywordText() string {
	return strings.Join(p.TrackedKeywords, ", ")
}

func (p Preferences) HasCategory(c string) bool { return contains(p.PreferredCategories, c) }

func (p Preferences) HasSource(s string) bool { return contains(p.PreferredSources, s) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
