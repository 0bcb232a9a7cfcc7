// Package threatanalysis provides stateless pattern classifiers over plain
// text: prompt-injection phrases, PII, SQL and shell command fragments.
// It exchanges only text in and human-readable threat labels out, and
// makes no assumption about whether scanned text carries a watermark
// frame.
//
// All patterns live in a fixed table of (compiled matcher, weight, label)
// built once by NewAnalyzer, never recompiled per call. A report's Score
// is the maximum weight among matched patterns — one deterministic rule,
// so repeated matches of a weak pattern cannot outrank a single strong
// one.
package threatanalysis

// Category groups related patterns.
type Category string

const (
	// CategoryPromptInjection covers attempts to override model
	// instructions embedded in user-supplied text.
	CategoryPromptInjection Category = "prompt_injection"
	// CategoryPII covers personally identifiable information.
	CategoryPII Category = "pii"
	// CategorySQLInjection covers SQL fragments typical of injection.
	CategorySQLInjection Category = "sql_injection"
	// CategoryCommandInjection covers shell command fragments.
	CategoryCommandInjection Category = "command_injection"
)

// Match is a single triggered pattern.
type Match struct {
	// Label is the human-readable threat label (e.g. "INSTRUCTION_OVERRIDE").
	Label string `json:"label"`
	// Category is the pattern's group.
	Category Category `json:"category"`
	// Weight is the pattern's severity contribution, 0.0-1.0.
	Weight float64 `json:"weight"`
	// Value is the first matched text fragment.
	Value string `json:"value,omitempty"`
}

// Report is the result of analyzing one piece of text.
type Report struct {
	// Labels lists the distinct labels of all triggered patterns, in
	// table order.
	Labels []string `json:"labels"`
	// Matches lists every triggered pattern with its matched fragment.
	Matches []Match `json:"matches,omitempty"`
	// Score is the maximum weight among triggered patterns, 0 when
	// nothing matched.
	Score float64 `json:"score"`
}

// Flagged reports whether any pattern matched.
func (r *Report) Flagged() bool {
	return r != nil && len(r.Matches) > 0
}

// Analyzer scans text against the fixed pattern table. It is stateless
// and safe for concurrent use.
type Analyzer struct {
	patterns []pattern
}

// NewAnalyzer builds an analyzer over the full pattern table. Patterns
// are compiled here, once.
func NewAnalyzer() *Analyzer {
	return &Analyzer{patterns: patternTable()}
}

// Analyze scans text and reports every triggered pattern. It never
// fails; empty text yields an empty report.
func (a *Analyzer) Analyze(text string) *Report {
	report := &Report{}
	for _, p := range a.patterns {
		loc := p.re.FindString(text)
		if loc == "" {
			continue
		}
		report.Matches = append(report.Matches, Match{
			Label:    p.label,
			Category: p.category,
			Weight:   p.weight,
			Value:    loc,
		})
		report.Labels = append(report.Labels, p.label)
		if p.weight > report.Score {
			report.Score = p.weight
		}
	}
	return report
}

// ByCategory filters a report's matches to one category.
func (r *Report) ByCategory(c Category) []Match {
	var out []Match
	for _, m := range r.Matches {
		if m.Category == c {
			out = append(out, m)
		}
	}
	return out
}
