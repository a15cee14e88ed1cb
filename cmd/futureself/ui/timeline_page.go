package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"futureself/internal/timeline"
)

// pollInterval is how often the page checks the orchestrator for slot
// transitions. Generation settles asynchronously; the page never blocks on it.
const pollInterval = 250 * time.Millisecond

type pollMsg struct{}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}

// TimelinePageModel is the main screen: a slider over the timeline slots with
// the projected health panel and generation controls.
type TimelinePageModel struct {
	ctx    context.Context
	orch   *timeline.Orchestrator
	styles Styles
	outDir string

	cursor      int
	lastVersion uint64
	status      string
	statusIsErr bool

	customMode  bool
	customInput textinput.Model

	spin   spinner.Model
	width  int
	height int
}

// NewTimelinePageModel creates the timeline screen over a ready orchestrator.
func NewTimelinePageModel(ctx context.Context, orch *timeline.Orchestrator, styles Styles, outDir string) TimelinePageModel {
	ti := textinput.New()
	ti.Placeholder = "show me at age 70 hiking a mountain"
	ti.CharLimit = 200
	ti.Width = 56

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SlotActive

	return TimelinePageModel{
		ctx:         ctx,
		orch:        orch,
		styles:      styles,
		outDir:      outDir,
		customInput: ti,
		spin:        sp,
	}
}

// SetSize records the terminal size for layout.
func (m *TimelinePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m TimelinePageModel) Init() tea.Cmd {
	return tea.Batch(pollCmd(), m.spin.Tick)
}

func (m TimelinePageModel) Update(msg tea.Msg) (TimelinePageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		if v := m.orch.Version(); v != m.lastVersion {
			m.lastVersion = v
		}
		return m, pollCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.customMode {
			return m.updateCustom(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m TimelinePageModel) updateKeys(key tea.KeyMsg) (TimelinePageModel, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit

	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "right", "l":
		if m.cursor < m.orch.Len()-1 {
			m.cursor++
		}
		return m, nil

	case "g":
		if err := m.orch.RequestSlot(m.ctx, m.cursor); err != nil {
			return m.setError(err), nil
		}
		return m.setStatus("generating..."), nil

	case "r":
		if err := m.orch.Retry(m.ctx, m.cursor); err != nil {
			return m.setError(err), nil
		}
		return m.setStatus("retrying..."), nil

	case "c":
		m.customMode = true
		m.customInput.SetValue("")
		m.customInput.Focus()
		return m, textinput.Blink

	case "s":
		return m.saveCurrent(), nil
	}
	return m, nil
}

func (m TimelinePageModel) updateCustom(key tea.KeyMsg) (TimelinePageModel, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.customMode = false
		return m, nil
	case tea.KeyEnter:
		req, err := timeline.ParseCustomRequest(
			m.customInput.Value(), m.orch.Info().Age, m.orch.LifeExpectancy())
		if err != nil {
			return m.setError(err), nil
		}
		idx, err := m.orch.RequestCustom(m.ctx, req)
		if err != nil {
			return m.setError(err), nil
		}
		m.customMode = false
		m.cursor = idx
		return m.setStatus(fmt.Sprintf("generating you at age %d...", req.TargetAge)), nil
	}

	var cmd tea.Cmd
	m.customInput, cmd = m.customInput.Update(key)
	return m, cmd
}

// saveCurrent writes the cursor slot's portrait to the output directory.
func (m TimelinePageModel) saveCurrent() TimelinePageModel {
	slot, err := m.orch.Slot(m.cursor)
	if err != nil {
		return m.setError(err)
	}
	if slot.State != timeline.StateReady {
		return m.setError(fmt.Errorf("nothing to save for this interval yet"))
	}
	path := filepath.Join(m.outDir, slot.Filename())
	if err := os.WriteFile(path, slot.Image, 0o644); err != nil {
		return m.setError(fmt.Errorf("failed to write %s: %w", path, err))
	}
	return m.setStatus("saved " + path)
}

func (m TimelinePageModel) setStatus(s string) TimelinePageModel {
	m.status = s
	m.statusIsErr = false
	return m
}

func (m TimelinePageModel) setError(err error) TimelinePageModel {
	m.status = err.Error()
	m.statusIsErr = true
	return m
}

func (m TimelinePageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Your timeline"))
	sb.WriteString("\n\n")
	sb.WriteString(m.stripView())
	sb.WriteString("\n\n")
	sb.WriteString(m.panelView())
	sb.WriteString("\n")

	if m.customMode {
		sb.WriteString("\n" + m.styles.Prompt.Render("Custom moment: "))
		sb.WriteString(m.customInput.View())
		sb.WriteString("\n" + m.styles.Footer.Render("enter to generate, esc to cancel"))
	} else {
		if m.status != "" {
			style := m.styles.Muted
			if m.statusIsErr {
				style = m.styles.Error
			}
			sb.WriteString("\n" + style.Render(m.status) + "\n")
		}
		sb.WriteString("\n" + m.styles.Footer.Render(
			"arrows to move, g generate, r retry, c custom, s save, q quit"))
	}
	return m.styles.Content.Render(sb.String()) + "\n"
}

// stripView renders one glyph per slot across the timeline.
func (m TimelinePageModel) stripView() string {
	slots := m.orch.Slots()
	parts := make([]string, len(slots))
	for i, slot := range slots {
		glyph := m.slotGlyph(slot)
		label := fmt.Sprintf("%s+%d", glyph, slot.Offset)
		if i == m.cursor {
			parts[i] = m.styles.SlotActive.Render("[" + label + "]")
		} else {
			parts[i] = m.styles.SlotIdle.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, "")
}

func (m TimelinePageModel) slotGlyph(slot timeline.Slot) string {
	switch slot.State {
	case timeline.StateGenerating:
		return m.spin.View()
	case timeline.StateReady:
		return "● "
	case timeline.StateDeceased:
		return "✝ "
	case timeline.StateFailed:
		return "✗ "
	default:
		return "· "
	}
}

// panelView renders the projected health panel for the cursor slot.
func (m TimelinePageModel) panelView() string {
	slot, err := m.orch.Slot(m.cursor)
	if err != nil {
		return m.styles.Error.Render(err.Error())
	}

	info := m.orch.Info()
	snap := m.orch.SnapshotFor(slot.Offset)
	factors := m.orch.Factors()
	age := info.Age + slot.Offset

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n", m.styles.Bold.Render(fmt.Sprintf("You at %d (+%d years)", age, slot.Offset)))

	if slot.State == timeline.StateDeceased {
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf(
			"Beyond your projected life expectancy of %d.", snap.LifeExpectancy)))
		sb.WriteString("\n")
		return m.styles.Panel.Render(sb.String())
	}

	fmt.Fprintf(&sb, "Weight    %d lbs\n", snap.ProjectedWeight)
	fmt.Fprintf(&sb, "Height    %s\n", snap.ProjectedHeight)
	fmt.Fprintf(&sb, "BMI       %.1f\n", snap.BMI)
	fmt.Fprintf(&sb, "Calories  %d kcal/day\n", snap.CalorieIntake)
	fmt.Fprintf(&sb, "Outlook   %s\n\n", factors.Mood.Description())

	switch slot.State {
	case timeline.StateGenerating:
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("Portrait in progress %s", m.spin.View())))
	case timeline.StateReady:
		sb.WriteString(m.styles.Success.Render(fmt.Sprintf(
			"Portrait ready (%d bytes, attempt %d). Press s to save %s.",
			len(slot.Image), slot.Attempts, slot.Filename())))
	case timeline.StateFailed:
		sb.WriteString(m.styles.Error.Render(fmt.Sprintf(
			"Generation failed after %d attempts: %v. Press r to retry.", slot.Attempts, slot.Err)))
	default:
		sb.WriteString(m.styles.Muted.Render("No portrait yet. Press g to generate."))
	}
	sb.WriteString("\n")
	return m.styles.Panel.Render(sb.String())
}
