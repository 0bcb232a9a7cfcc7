package threatanalysis

import "regexp"

// pattern is one row of the fixed classifier table.
type pattern struct {
	re       *regexp.Regexp
	weight   float64
	label    string
	category Category
}

// patternTable returns the full classifier table. Regexps are compiled
// here and nowhere else; MustCompile is acceptable because the table is
// static and covered by tests.
func patternTable() []pattern {
	return []pattern{
		// Prompt injection
		{
			re:       regexp.MustCompile(`(?i)ignore\s+(all\s+)?(previous|prior|above)\s+(instructions|prompts|rules)`),
			weight:   0.9,
			label:    "INSTRUCTION_OVERRIDE",
			category: CategoryPromptInjection,
		},
		{
			re:       regexp.MustCompile(`(?i)disregard\s+(the\s+)?(system|initial)\s+prompt`),
			weight:   0.9,
			label:    "SYSTEM_PROMPT_OVERRIDE",
			category: CategoryPromptInjection,
		},
		{
			re:       regexp.MustCompile(`(?i)you\s+are\s+now\s+(a|an|in)\b`),
			weight:   0.7,
			label:    "ROLE_REASSIGNMENT",
			category: CategoryPromptInjection,
		},
		{
			re:       regexp.MustCompile(`(?i)\b(jailbreak|dan\s+mode|developer\s+mode)\b`),
			weight:   0.8,
			label:    "JAILBREAK_PHRASE",
			category: CategoryPromptInjection,
		},
		{
			re:       regexp.MustCompile(`(?i)reveal\s+(your\s+)?(system\s+prompt|initial\s+instructions|hidden\s+rules)`),
			weight:   0.8,
			label:    "PROMPT_EXFILTRATION",
			category: CategoryPromptInjection,
		},

		// PII
		{
			re:       regexp.MustCompile(`\b[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}\b`),
			weight:   0.4,
			label:    "EMAIL_ADDRESS",
			category: CategoryPII,
		},
		{
			re:       regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
			weight:   0.8,
			label:    "US_SSN",
			category: CategoryPII,
		},
		{
			re:       regexp.MustCompile(`\b(?:\d[ \-]?){13,16}\b`),
			weight:   0.7,
			label:    "PAYMENT_CARD",
			category: CategoryPII,
		},
		{
			re:       regexp.MustCompile(`(?i)\b(password|passwd|api[_\-]?key|secret|token)\s*[=:]\s*\S+`),
			weight:   0.8,
			label:    "CREDENTIAL_PAIR",
			category: CategoryPII,
		},

		// SQL injection
		{
			re:       regexp.MustCompile(`(?i)\b(union\s+select|select\s+\*\s+from|insert\s+into|drop\s+table|delete\s+from)\b`),
			weight:   0.8,
			label:    "SQL_STATEMENT",
			category: CategorySQLInjection,
		},
		{
			re:       regexp.MustCompile(`(?i)('\s*or\s*'1'\s*=\s*'1|--\s*$|;\s*--)`),
			weight:   0.9,
			label:    "SQL_TAUTOLOGY",
			category: CategorySQLInjection,
		},

		// Command injection
		{
			re:       regexp.MustCompile(`(?i)\b(rm\s+-rf|curl\s+[^|;]+\|\s*(ba)?sh|wget\s+[^|;]+\|\s*(ba)?sh)\b`),
			weight:   0.9,
			label:    "SHELL_PIPELINE",
			category: CategoryCommandInjection,
		},
		{
			re:       regexp.MustCompile("[;`]\\s*(cat|ls|whoami|id|nc|netcat)\\b"),
			weight:   0.7,
			label:    "COMMAND_CHAIN",
			category: CategoryCommandInjection,
		},
	}
}
