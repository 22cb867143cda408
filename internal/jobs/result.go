package jobs

// SkipReason tags a pull request the pipeline deliberately did not review.
type SkipReason int

const (
	SkipNone SkipReason = iota
	// SkipBump marks a dependency bump excluded by title.
	SkipBump
	// SkipEmptyDiff marks a pull request without changed files.
	SkipEmptyDiff
	// SkipTooLarge marks a pull request with more than MaxChangedFiles files.
	SkipTooLarge
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipBump:
		return "bump pull request"
	case SkipEmptyDiff:
		return "no diff found"
	case SkipTooLarge:
		return "too many changed files"
	default:
		return "unknown"
	}
}

// Result is the outcome of one pipeline run.
type Result struct {
	Number int
	Title  string
	Skip   SkipReason
	// Comment is the rendered review body. Empty when skipped.
	Comment string
	// Published is false in dry-run mode, where Comment is only returned.
	Published bool
}

// Skipped reports whether the pipeline stopped before generating a review.
func (r Result) Skipped() bool {
	return r.Skip != SkipNone
}
