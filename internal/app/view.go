package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rsoares/foodlog/internal/journal"
	"github.com/rsoares/foodlog/internal/ui"
)

// maxListEntries bounds the visible daily list; totals still cover the
// whole day.
const maxListEntries = 10

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderForm())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderSummary())
	sections = append(sections, m.renderMealList())

	if m.errorMessage != "" {
		sections = append(sections, m.renderErrorBar())
	}

	sections = append(sections, ui.DimStyle.Render("Data stays on this machine."))
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("FOOD LOG")
	status := ui.StatusStyle.Render(" — " + m.statusText)
	return title + status
}

func (m Model) renderForm() string {
	var lines []string

	lines = append(lines, m.fieldLabel("Photo", FieldPhoto)+" "+m.pathInput.View())
	lines = append(lines, "  "+m.renderPhotoState())

	lines = append(lines, m.fieldLabel("Type", FieldType)+" "+m.renderTypePicker())
	lines = append(lines, m.fieldLabel("Time", FieldTime)+" "+m.timeInput.View())
	lines = append(lines, m.fieldLabel("Notes", FieldDesc)+" "+m.descInput.View())

	if m.draft.Complete() && !m.saving {
		lines = append(lines, ui.SelectedStyle.Render("  Ready — press Ctrl+S to add this meal"))
	} else if m.saving {
		lines = append(lines, ui.AnalyzingStyle.Render("  Saving..."))
	} else {
		lines = append(lines, ui.DimStyle.Render("  Fill in photo, type, time and notes to add"))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderPhotoState() string {
	switch m.phase {
	case PhasePhotoLoading:
		return ui.AnalyzingStyle.Render("Loading photo...")
	case PhaseAnalyzing:
		return ui.AnalyzingStyle.Render("⟳ Analyzing calories...")
	case PhaseReady:
		if m.draft.Calories == nil {
			return ui.DimStyle.Render("Photo loaded")
		}
		est := ui.CalorieStyle.Render(fmt.Sprintf("Estimate: %d calories", *m.draft.Calories))
		if m.draft.Analysis != nil {
			conf := ui.ConfidenceStyle.Render(fmt.Sprintf(" (%d%% confidence)",
				int(m.draft.Analysis.Confidence*100+0.5)))
			return est + conf
		}
		return est
	}
	return ui.DimStyle.Render("Drop in a PNG, JPG or GIF — Enter to load")
}

func (m Model) renderTypePicker() string {
	if m.typeIndex < 0 {
		return ui.DimStyle.Render("‹ select with ←/→ ›")
	}
	label := mealTypes[m.typeIndex].Label()
	if m.focus == FieldType {
		return ui.SelectedStyle.Render("‹ " + label + " ›")
	}
	return label
}

func (m Model) renderSummary() string {
	total := journal.TotalCalories(m.meals)
	header := ui.PanelTitleStyle.Render("TODAY")
	if m.focus == FieldList {
		header = ui.PanelTitleActiveStyle.Render("TODAY")
	}
	count := "meals"
	if len(m.meals) == 1 {
		count = "meal"
	}
	return fmt.Sprintf("%s  %s · %s",
		header,
		ui.DimStyle.Render(fmt.Sprintf("%d %s", len(m.meals), count)),
		ui.CalorieStyle.Render(fmt.Sprintf("%d calories", total)))
}

func (m Model) renderMealList() string {
	if len(m.meals) == 0 {
		return ui.DimStyle.Render("  No meals logged today")
	}

	shown := m.meals
	if len(shown) > maxListEntries {
		shown = shown[:maxListEntries]
	}

	var lines []string
	for i, meal := range shown {
		ts := ui.TimestampStyle.Render("[" + meal.MealTime + "]")
		label := ui.LabelStyle.Render(meal.MealType.Label())

		cal := ""
		if meal.EstimatedCalories != nil {
			cal = ui.CalorieStyle.Render(fmt.Sprintf(" %d cal", *meal.EstimatedCalories))
		}

		desc := meal.Description
		line := fmt.Sprintf("%s %s — %s%s", ts, label, desc, cal)
		if i == m.selected && m.focus == FieldList {
			line = ui.SelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, truncateToWidth(line, m.width))
	}

	if len(m.meals) > maxListEntries {
		lines = append(lines, ui.DimStyle.Render(
			fmt.Sprintf("  ...and %d more", len(m.meals)-maxListEntries)))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderErrorBar() string {
	return ui.ErrorStyle.Render("Error: ") + ui.ErrorTextStyle.Render(m.errorMessage)
}

func (m Model) renderFooter() string {
	var parts []string

	parts = append(parts, ui.FooterKeyStyle.Render("Tab")+ui.FooterDescStyle.Render(" Field"))
	switch m.focus {
	case FieldPhoto:
		parts = append(parts, ui.FooterKeyStyle.Render("Enter")+ui.FooterDescStyle.Render(" Load photo"))
	case FieldType:
		parts = append(parts, ui.FooterKeyStyle.Render("←/→")+ui.FooterDescStyle.Render(" Type"))
	case FieldTime:
		parts = append(parts, ui.FooterKeyStyle.Render("Ctrl+T")+ui.FooterDescStyle.Render(" Now"))
	case FieldList:
		parts = append(parts, ui.FooterKeyStyle.Render("j/k")+ui.FooterDescStyle.Render(" Nav"))
		parts = append(parts, ui.FooterKeyStyle.Render("d")+ui.FooterDescStyle.Render(" Delete"))
	}
	parts = append(parts, ui.FooterKeyStyle.Render("Ctrl+S")+ui.FooterDescStyle.Render(" Add meal"))
	parts = append(parts, ui.FooterKeyStyle.Render("Ctrl+C")+ui.FooterDescStyle.Render(" Quit"))

	return strings.Join(parts, "  ")
}

func (m Model) fieldLabel(name string, f Field) string {
	padded := fmt.Sprintf("%-6s", name)
	if m.focus == f {
		return ui.PanelTitleActiveStyle.Render(padded)
	}
	return ui.PanelTitleStyle.Render(padded)
}

// truncateToWidth cuts a possibly styled line to the given cell width
// without splitting escape sequences.
func truncateToWidth(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
