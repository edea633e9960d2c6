package models

import "strings"

// Level is one rung of a plan's abstraction ladder: a fixed description,
// the questions an agent should weigh while working at this level, and an
// instruction on where to focus attention. Levels are immutable once a
// plan is created (spec.md §3).
type Level struct {
	Description       string   `json:"description" validate:"required"`
	AbstractionFocus  string   `json:"abstraction_focus" validate:"required"`
	Questions         []string `json:"questions" validate:"required,min=1,dive,required"`
}

// Guidance formats the level into the human-readable orientation string an
// agent reads before working at this abstraction. The format is fixed:
// description, then focus instruction, then a bulleted question list.
func (l Level) Guidance() string {
	var qs strings.Builder
	for i, q := range l.Questions {
		if i > 0 {
			qs.WriteByte('\n')
		}
		qs.WriteString("- ")
		qs.WriteString(q)
	}
	return "Abstraction level: " + l.Description +
		"\n\nFocus instruction: " + l.AbstractionFocus +
		"\n\nRelevant questions to consider:\n" + qs.String()
}

// Name derives a short label from the description's first meaningful
// phrase (up to the first semicolon or comma, whichever comes first), used
// by the distilled-context assembler's level summaries.
func (l Level) Name() string {
	cut := len(l.Description)
	if i := strings.IndexAny(l.Description, ";,"); i >= 0 && i < cut {
		cut = i
	}
	return strings.TrimSpace(l.Description[:cut])
}

// Catalog is the ordered list of abstraction levels a plan owns. Lower
// index means higher abstraction (planning is catalog[0]).
type Catalog []Level

// Valid reports whether idx names a level in the catalog.
func (c Catalog) Valid(idx int) bool {
	return idx >= 0 && idx < len(c)
}

// At returns the level at idx, validating the reference (spec.md §4.2:
// "Level indices are validated on every reference into the catalog").
func (c Catalog) At(idx int) (Level, error) {
	if !c.Valid(idx) {
		return Level{}, ErrLevelOutOfRange(idx, len(c))
	}
	return c[idx], nil
}

// DefaultCatalog returns the built-in four-level ladder: planning,
// isolation, ordering, implementation (spec.md §3; originally
// src/levels.rs in the Rust predecessor).
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Description:      "high level planning; identifying architecture, scope, and approach",
			AbstractionFocus: "Maintain altitude by focusing on system wholes. Avoid implementation details. Think about conceptual patterns rather than code structures. Consider how components will interact without specifying their internal workings.",
			Questions: []string{
				"Is this approach simple?",
				"Is this approach extensible?",
				"Does this approach provide good, minimally leaking abstractions?",
			},
		},
		{
			Description:      "identifying discrete parts of the plan which can be completed independently",
			AbstractionFocus: "Focus on interfaces and boundaries between components. Define clear inputs and outputs for each part. Identify dependencies while preserving modularity. Look for natural divisions in the problem space.",
			Questions: []string{
				"If possible, can each part be completed and verified independently?",
				"Are the boundaries between pieces modular and extensible?",
			},
		},
		{
			Description:      "ordering the parts of the plan",
			AbstractionFocus: "Think about sequence and progression. Identify dependencies and build order without diving into implementation details. Consider critical paths and bottlenecks. Focus on logical flow and execution constraints.",
			Questions: []string{
				"Do we move from foundational building blocks to more complex concepts?",
				"Do we follow idiomatic design patterns?",
			},
		},
		{
			Description:      "turning each part into an ordered list of tasks",
			AbstractionFocus: "Focus on concrete, actionable steps. Define specific code changes or artifacts to produce. Reference higher abstractions when needed but maintain focus on precise implementation. Consider error cases and edge conditions.",
			Questions: []string{
				"Can each task be completed independently?",
				"Is each task complementary to, or does it build upon, the previous tasks?",
				"Does each task minimize the execution risk of the other tasks?",
			},
		},
	}
}
