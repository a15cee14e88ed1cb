package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"futureself/internal/survey"
)

// InfoPageModel collects age, height, and weight through three inputs.
type InfoPageModel struct {
	questions []survey.Question
	inputs    []textinput.Model
	focus     int
	styles    Styles
	errMsg    string
}

// NewInfoPageModel creates the basic-info form.
func NewInfoPageModel(styles Styles) InfoPageModel {
	questions := survey.BasicInfoQuestions()
	inputs := make([]textinput.Model, len(questions))
	for i, q := range questions {
		ti := textinput.New()
		ti.Placeholder = q.Placeholder
		ti.CharLimit = 6
		ti.Width = 12
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}
	return InfoPageModel{questions: questions, inputs: inputs, styles: styles}
}

func (m InfoPageModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m InfoPageModel) Update(msg tea.Msg) (InfoPageModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if m.focus < len(m.inputs)-1 {
				return m.setFocus(m.focus + 1), nil
			}
			return m.submit()
		case "tab", "down":
			return m.setFocus((m.focus + 1) % len(m.inputs)), nil
		case "shift+tab", "up":
			return m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs)), nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m InfoPageModel) setFocus(i int) InfoPageModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

// submit validates all three fields together so the first offending field is
// reported with its catalog message.
func (m InfoPageModel) submit() (InfoPageModel, tea.Cmd) {
	values := make([]float64, len(m.inputs))
	for i, input := range m.inputs {
		v, err := strconv.ParseFloat(strings.TrimSpace(input.Value()), 64)
		if err != nil {
			m.errMsg = m.questions[i].ValidationMessage
			return m.setFocus(i), nil
		}
		values[i] = v
	}

	info, err := survey.ParseBasicInfo(values[0], values[1], values[2])
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	return m, func() tea.Msg { return infoEnteredMsg{info: info} }
}

func (m InfoPageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("About you"))
	sb.WriteString("\n\n")
	for i, q := range m.questions {
		label := m.styles.Body
		if i == m.focus {
			label = m.styles.Prompt
		}
		sb.WriteString(label.Render(q.Text))
		sb.WriteString("\n")
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n\n")
	}
	if m.errMsg != "" {
		sb.WriteString(m.styles.Error.Render(m.errMsg) + "\n\n")
	}
	sb.WriteString(m.styles.Footer.Render("tab to move, enter to continue"))
	return m.styles.Content.Render(sb.String()) + "\n"
}
