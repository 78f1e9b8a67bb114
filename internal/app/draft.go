package app

import (
	"strings"

	"github.com/rsoares/foodlog/internal/journal"
)

// Phase is the capture workflow state for the current draft.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhasePhotoLoading
	PhaseAnalyzing
	PhaseReady
)

// Draft is the in-memory meal being assembled. Exactly one exists per
// session; it is destroyed on successful submission.
type Draft struct {
	Type        journal.MealType
	Time        string
	Description string
	Photo       string
	Calories    *int
	Analysis    *journal.EstimationResult
	Analyzing   bool
}

// Complete reports whether the draft can be submitted: photo, type,
// time, and description all present, and no analysis outstanding.
func (d Draft) Complete() bool {
	return d.Photo != "" &&
		d.Type.Valid() &&
		strings.TrimSpace(d.Time) != "" &&
		strings.TrimSpace(d.Description) != "" &&
		!d.Analyzing
}
