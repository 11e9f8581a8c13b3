package model

// Decision represents an archived review outcome.
type Decision struct {
	ID          string
	PostID      int64
	SubmitterID string
	AdminID     string
	Verdict     string
	DecidedAt   int64
}
