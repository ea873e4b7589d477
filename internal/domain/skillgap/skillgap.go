// Package skillgap computes the gap between a role's required skills and a
// user's declared skills, plus an ordered learning recommendation.
package skillgap

import (
	"strings"

	"github.com/okian/pathway/internal/domain/catalog"
)

// Fixed recommendation templates. Which set is emitted depends only on
// whether anything is missing.
const (
	recFocusPrefix    = "Focus on learning: "
	recFoundational   = "Start with foundational skills first, then move to advanced topics"
	recPractice       = "Practice through projects and real-world applications"
	recAllCovered     = "Great! You have all the required skills for this role."
	recSpecialization = "Consider learning advanced topics and specializations"
)

// Result is the outcome of a skill-gap analysis. All skill lists carry the
// role's canonical casing; Matched and Missing preserve the role's skill
// order and are disjoint, together covering the role's full skill set.
type Result struct {
	Matched         []string `json:"matchedSkills"`
	Missing         []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
	LearningOrder   []string `json:"suggestedLearningOrder"`
}

// Analyzer matches user skills against role requirements.
type Analyzer struct {
	foundational map[string]struct{}
}

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithFoundationalSkills replaces the closed set of skills that are
// prioritized first in the suggested learning order. Names are lowercased.
func WithFoundationalSkills(skills ...string) Option {
	return func(a *Analyzer) {
		if len(skills) == 0 {
			return
		}
		a.foundational = make(map[string]struct{}, len(skills))
		for _, s := range skills {
			a.foundational[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
		}
	}
}

// New creates an Analyzer with the default foundational skill set.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		foundational: map[string]struct{}{
			"html": {}, "css": {}, "javascript": {}, "java": {},
			"sql": {}, "python": {}, "excel": {}, "git": {},
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SplitSkills turns a comma-separated skill string into normalized entries.
// Whitespace is trimmed, casing lowered, empty entries dropped.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := strings.ToLower(strings.TrimSpace(p)); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Normalize trims and lowercases every skill, dropping empty entries.
func Normalize(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if n := strings.ToLower(strings.TrimSpace(s)); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Analyze computes the skill gap for a role given normalized or raw user
// skills. A required skill counts as matched when some user skill equals it
// or either contains the other as a substring. The permissive bidirectional
// rule is intentional and preserved for output compatibility ("java" matches
// "javascript" both ways).
func (a *Analyzer) Analyze(role catalog.Role, userSkills []string) Result {
	users := Normalize(userSkills)

	// Work on the lowercased required list in canonical order.
	matched := make([]string, 0, len(role.Skills))
	missing := make([]string, 0, len(role.Skills))
	canonical := make(map[string]string, len(role.Skills))
	for _, skill := range role.Skills {
		lower := strings.ToLower(skill)
		canonical[lower] = skill
		if matchesAny(users, lower) {
			matched = append(matched, lower)
		} else {
			missing = append(missing, lower)
		}
	}

	res := Result{
		Matched:         project(matched, canonical),
		Missing:         project(missing, canonical),
		Recommendations: a.recommend(project(missing, canonical)),
		LearningOrder:   project(a.order(missing), canonical),
	}
	return res
}

// matchesAny reports whether any user skill matches the required skill under
// bidirectional substring containment.
func matchesAny(users []string, required string) bool {
	for _, u := range users {
		if u == required || strings.Contains(required, u) || strings.Contains(u, required) {
			return true
		}
	}
	return false
}

// order partitions missing skills into foundational and advanced, keeping
// each partition's canonical relative order, foundational first.
func (a *Analyzer) order(missing []string) []string {
	out := make([]string, 0, len(missing))
	for _, s := range missing {
		if _, ok := a.foundational[s]; ok {
			out = append(out, s)
		}
	}
	for _, s := range missing {
		if _, ok := a.foundational[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// recommend emits the fixed guidance strings for the missing/complete branch.
func (a *Analyzer) recommend(missing []string) []string {
	if len(missing) == 0 {
		return []string{recAllCovered, recSpecialization}
	}
	return []string{
		recFocusPrefix + strings.Join(missing, ", "),
		recFoundational,
		recPractice,
	}
}

// project maps lowercased skill names back onto their originally-cased
// catalog spelling, preserving input order.
func project(lower []string, canonical map[string]string) []string {
	out := make([]string, 0, len(lower))
	for _, s := range lower {
		if name, ok := canonical[s]; ok {
			out = append(out, name)
		}
	}
	return out
}
