package app

import "github.com/rsoares/foodlog/internal/journal"

// PhotoLoadedMsg is sent when a selected photo has been read into memory.
// Gen identifies the selection it belongs to; stale generations are dropped.
type PhotoLoadedMsg struct {
	Gen     int
	Payload string
}

// PhotoIgnoredMsg is sent when the selected file is not an image.
// The selection is ignored silently, with no state change.
type PhotoIgnoredMsg struct {
	Gen int
}

// PhotoErrorMsg is sent when the selected file could not be read.
type PhotoErrorMsg struct {
	Gen int
	Err error
}

// AnalysisDoneMsg carries a completed calorie estimate for a selection.
type AnalysisDoneMsg struct {
	Gen    int
	Result journal.EstimationResult
}

// MealsLoadedMsg carries the full journal read from the store.
type MealsLoadedMsg struct {
	Records []journal.MealRecord
}

// MealSavedMsg is sent when a draft has been persisted.
type MealSavedMsg struct {
	Record journal.MealRecord
}

// MealRemovedMsg is sent when a record has been deleted from the journal.
type MealRemovedMsg struct {
	ID string
}

// SaveErrorMsg is sent when a journal mutation failed. The journal is
// unchanged; the user may re-attempt.
type SaveErrorMsg struct {
	Err error
}

// ClearTransientErrorMsg clears a transient error after a timeout.
type ClearTransientErrorMsg struct{}
