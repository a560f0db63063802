package val

//go:generate go tool stringer --linecomment --type Outcome --output outcome_string.go

// Outcome classifies an evaluation.
type Outcome int

// Evaluation outcomes.
const (
	NoMatch   Outcome = iota // no-match
	Matched                  // matched
	Malformed                // malformed
)
