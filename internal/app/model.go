package app

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/rsoares/foodlog/internal/estimate"
	"github.com/rsoares/foodlog/internal/journal"
	"github.com/rsoares/foodlog/internal/photo"

	tea "github.com/charmbracelet/bubbletea"
)

// Field tracks which form element has keyboard focus.
type Field int

const (
	FieldPhoto Field = iota
	FieldType
	FieldTime
	FieldDesc
	FieldList
	fieldCount
)

var mealTypes = []journal.MealType{
	journal.Breakfast,
	journal.Lunch,
	journal.Dinner,
	journal.Snack,
}

// Model is the root bubbletea model for the food log TUI.
type Model struct {
	// Collaborators
	store     *journal.Store
	estimator estimate.Estimator
	delay     time.Duration
	log       *zap.SugaredLogger

	// Draft state
	draft    Draft
	phase    Phase
	photoGen int
	saving   bool

	// Today's meals, newest first
	meals    []journal.MealRecord
	selected int

	// Form state
	focus     Field
	pathInput textinput.Model
	timeInput textinput.Model
	descInput textinput.Model
	typeIndex int

	// UI state
	width  int
	height int

	// Errors
	errorMessage   string
	errorTransient bool

	// Status
	statusText string
}

// New creates a new Model with an empty draft.
func New(store *journal.Store, estimator estimate.Estimator, delay time.Duration, log *zap.SugaredLogger) Model {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if delay <= 0 {
		delay = estimate.DefaultDelay
	}

	path := textinput.New()
	path.Placeholder = "path to a meal photo"
	path.Focus()

	timeIn := textinput.New()
	timeIn.Placeholder = time.Now().Format("15:04")
	timeIn.CharLimit = 5

	desc := textinput.New()
	desc.Placeholder = "describe your meal"

	return Model{
		store:      store,
		estimator:  estimator,
		delay:      delay,
		log:        log,
		pathInput:  path,
		timeInput:  timeIn,
		descInput:  desc,
		typeIndex:  -1,
		statusText: "Add a meal photo to begin",
	}
}

// Init returns the initial command — load the persisted journal.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadMealsCmd(m.store), textinput.Blink)
}

// loadMealsCmd reads the full journal from the store.
func loadMealsCmd(store *journal.Store) tea.Cmd {
	return func() tea.Msg {
		return MealsLoadedMsg{Records: store.LoadAll()}
	}
}

// loadPhotoCmd reads the selected file and classifies it.
func loadPhotoCmd(path string, gen int) tea.Cmd {
	return func() tea.Msg {
		payload, err := photo.Read(path)
		if err != nil {
			if errors.Is(err, photo.ErrNotImage) {
				return PhotoIgnoredMsg{Gen: gen}
			}
			return PhotoErrorMsg{Gen: gen, Err: err}
		}
		return PhotoLoadedMsg{Gen: gen, Payload: payload}
	}
}

// analyzeCmd runs the estimator after the simulated inference delay.
func analyzeCmd(estimator estimate.Estimator, payload string, delay time.Duration, gen int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return AnalysisDoneMsg{Gen: gen, Result: estimator.Estimate(payload)}
	})
}

// saveMealCmd persists a completed draft.
func saveMealCmd(store *journal.Store, rec journal.MealRecord) tea.Cmd {
	return func() tea.Msg {
		stored, err := store.Append(rec)
		if err != nil {
			return SaveErrorMsg{Err: err}
		}
		return MealSavedMsg{Record: stored}
	}
}

// removeMealCmd deletes a record from the journal.
func removeMealCmd(store *journal.Store, id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := store.Remove(id); err != nil {
			return SaveErrorMsg{Err: err}
		}
		return MealRemovedMsg{ID: id}
	}
}

// clearTransientErrorCmd fires after a delay to clear transient errors.
func clearTransientErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearTransientErrorMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MealsLoadedMsg:
		m.meals = journal.TodaysMeals(msg.Records, time.Now())
		if vis := m.visibleMeals(); m.selected >= vis {
			m.selected = max(0, vis-1)
		}
		return m, nil

	case PhotoLoadedMsg:
		if msg.Gen != m.photoGen {
			return m, nil
		}
		m.draft.Photo = msg.Payload
		m.draft.Calories = nil
		m.draft.Analysis = nil
		m.draft.Analyzing = true
		m.phase = PhaseAnalyzing
		m.statusText = "Analyzing calories..."
		return m, analyzeCmd(m.estimator, msg.Payload, m.delay, msg.Gen)

	case PhotoIgnoredMsg:
		// Non-image selection: no state change, no error.
		if msg.Gen != m.photoGen {
			return m, nil
		}
		m.restorePhase()
		return m, m.resumeAnalysis()

	case PhotoErrorMsg:
		if msg.Gen != m.photoGen {
			return m, nil
		}
		m.restorePhase()
		m.errorMessage = msg.Err.Error()
		m.errorTransient = true
		return m, tea.Batch(m.resumeAnalysis(), clearTransientErrorCmd())

	case AnalysisDoneMsg:
		// A result for a superseded selection must never touch the draft.
		if msg.Gen != m.photoGen {
			return m, nil
		}
		res := msg.Result
		m.draft.Calories = &res.TotalCalories
		m.draft.Analysis = &res
		m.draft.Analyzing = false
		m.phase = PhaseReady
		m.statusText = "Estimate ready"
		return m, nil

	case MealSavedMsg:
		m.saving = false
		m.resetDraft()
		m.statusText = "Meal added"
		return m, loadMealsCmd(m.store)

	case MealRemovedMsg:
		return m, loadMealsCmd(m.store)

	case SaveErrorMsg:
		m.saving = false
		m.log.Errorw("journal write failed", "error", msg.Err)
		m.errorMessage = msg.Err.Error()
		m.errorTransient = true
		return m, clearTransientErrorCmd()

	case ClearTransientErrorMsg:
		if m.errorTransient {
			m.errorMessage = ""
			m.errorTransient = false
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit:
		return m, tea.Quit

	case KeyFocusNext:
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case KeyFocusPrev:
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case KeySubmit:
		return m.submit()
	}

	switch m.focus {
	case FieldPhoto:
		if msg.String() == KeyEnter {
			return m.selectPhoto()
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd

	case FieldType:
		switch msg.String() {
		case KeyLeft, "h":
			m.cycleType(-1)
		case KeyRight, "l", KeySpace:
			m.cycleType(1)
		}
		return m, nil

	case FieldTime:
		if msg.String() == KeyNow {
			m.timeInput.SetValue(time.Now().Format("15:04"))
			m.draft.Time = m.timeInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.timeInput, cmd = m.timeInput.Update(msg)
		m.draft.Time = m.timeInput.Value()
		return m, cmd

	case FieldDesc:
		var cmd tea.Cmd
		m.descInput, cmd = m.descInput.Update(msg)
		m.draft.Description = m.descInput.Value()
		return m, cmd

	case FieldList:
		switch msg.String() {
		case "j", KeyDown:
			if m.selected < m.visibleMeals()-1 {
				m.selected++
			}
		case "k", KeyUp:
			if m.selected > 0 {
				m.selected--
			}
		case KeyDelete:
			if m.selected < len(m.meals) {
				return m, removeMealCmd(m.store, m.meals[m.selected].ID)
			}
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// selectPhoto starts a new capture cycle. Bumping the generation
// implicitly cancels any selection still in flight.
func (m Model) selectPhoto() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.pathInput.Value())
	if path == "" {
		return m, nil
	}
	m.photoGen++
	m.phase = PhasePhotoLoading
	m.statusText = "Loading photo..."
	return m, loadPhotoCmd(path, m.photoGen)
}

// submit validates the draft and hands it to the store. A no-op while a
// prior submit is completing or while any required field is missing.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.saving || !m.draft.Complete() {
		return m, nil
	}
	m.saving = true
	rec := journal.MealRecord{
		MealType:          m.draft.Type,
		MealTime:          strings.TrimSpace(m.draft.Time),
		Description:       strings.TrimSpace(m.draft.Description),
		PhotoData:         m.draft.Photo,
		EstimatedCalories: m.draft.Calories,
		Analysis:          m.draft.Analysis,
	}
	return m, saveMealCmd(m.store, rec)
}

// resumeAnalysis restarts estimation for the retained photo when a
// failed selection interrupted one in flight. The interrupted run's
// completion carries a superseded generation and will be dropped, so
// without a fresh run under the current generation the draft would
// stay analyzing forever.
func (m *Model) resumeAnalysis() tea.Cmd {
	if !m.draft.Analyzing {
		return nil
	}
	m.statusText = "Analyzing calories..."
	return analyzeCmd(m.estimator, m.draft.Photo, m.delay, m.photoGen)
}

// restorePhase puts the workflow back where the draft content says it
// belongs, after an ignored or failed selection.
func (m *Model) restorePhase() {
	switch {
	case m.draft.Analyzing:
		m.phase = PhaseAnalyzing
	case m.draft.Photo != "":
		m.phase = PhaseReady
	default:
		m.phase = PhaseEmpty
	}
}

// resetDraft clears the draft after a successful submission.
func (m *Model) resetDraft() {
	m.photoGen++
	m.draft = Draft{}
	m.phase = PhaseEmpty
	m.typeIndex = -1
	m.pathInput.SetValue("")
	m.timeInput.SetValue("")
	m.descInput.SetValue("")
	m.timeInput.Placeholder = time.Now().Format("15:04")
}

// visibleMeals is how many list entries the cursor may reach; the list
// renders at most maxListEntries.
func (m Model) visibleMeals() int {
	return min(len(m.meals), maxListEntries)
}

func (m *Model) setFocus(f Field) {
	m.focus = f
	m.pathInput.Blur()
	m.timeInput.Blur()
	m.descInput.Blur()
	switch f {
	case FieldPhoto:
		m.pathInput.Focus()
	case FieldTime:
		m.timeInput.Focus()
	case FieldDesc:
		m.descInput.Focus()
	}
}

func (m *Model) cycleType(delta int) {
	if m.typeIndex < 0 {
		if delta > 0 {
			m.typeIndex = 0
		} else {
			m.typeIndex = len(mealTypes) - 1
		}
	} else {
		m.typeIndex = (m.typeIndex + delta + len(mealTypes)) % len(mealTypes)
	}
	m.draft.Type = mealTypes[m.typeIndex]
}
