package domain

// OutcomeStatus classifies what happened to a single uploaded file.
type OutcomeStatus string

const (
	OutcomeStored    OutcomeStatus = "stored"
	OutcomeDuplicate OutcomeStatus = "duplicate"
	OutcomeSkipped   OutcomeStatus = "skipped"
)

// Outcome is the per-file result of the screening pipeline. Failures are
// reported here instead of being swallowed, so the caller decides what to
// surface.
type Outcome struct {
	FileName string
	Status   OutcomeStatus
	Resume   *Resume
	Reason   string
}
