package constants

// Extraction limits shared by the parser and its callers.
const (
	// MaxLinesPerDocument caps how many item lines a single document may
	// emit; extraction stops once the cap is reached.
	MaxLinesPerDocument = 200

	// MaxUnitPrice is the exclusive upper bound for a plausible unit price.
	// Candidates at or above it are discarded.
	MaxUnitPrice = 10000.0

	// DefaultScoreCutoff is the minimum fuzzy-match score (0-100) for a
	// catalog name to be accepted.
	DefaultScoreCutoff = 80.0
)
