package models

// Resolution source and outcome constants
const (
	SourceLocal  = "local"
	SourceRemote = "remote"

	OutcomeFailed = "failed"
)

// Resolution is a name resolved to an age, with where the age came from.
type Resolution struct {
	Name   string
	Age    string
	Source string
}

// MaxAgeResult is the oldest age among tracked names.
// Found is false when no tracked name could be resolved.
type MaxAgeResult struct {
	Name  string
	Age   int
	Found bool
}
