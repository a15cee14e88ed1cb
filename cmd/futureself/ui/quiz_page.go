package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"futureself/internal/survey"
)

// QuizPageModel walks through the wellness questions one at a time. The
// widget shown depends on the question type; answers accumulate into a
// survey.Answers map handed to the timeline page.
type QuizPageModel struct {
	questions []survey.Question
	idx       int
	answers   survey.Answers
	styles    Styles

	rating    int     // stars cursor, 1..5
	slider    float64 // slider value
	choice    int     // checkboxes cursor
	textInput textinput.Model

	offerMore bool // showing the extended-pool prompt
	extended  bool
	errMsg    string
}

// NewQuizPageModel creates the quiz starting at the core question set.
func NewQuizPageModel(styles Styles) QuizPageModel {
	ti := textinput.New()
	ti.CharLimit = 280
	ti.Width = 60
	m := QuizPageModel{
		questions: survey.InitialQuestions(),
		answers:   survey.Answers{},
		styles:    styles,
		textInput: ti,
	}
	m.resetWidget()
	return m
}

func (m QuizPageModel) Init() tea.Cmd {
	return textinput.Blink
}

// resetWidget prepares the input widget for the current question.
func (m *QuizPageModel) resetWidget() {
	if m.idx >= len(m.questions) {
		return
	}
	q := m.questions[m.idx]
	m.errMsg = ""
	switch q.Type {
	case survey.TypeStars:
		m.rating = 3
	case survey.TypeSlider:
		m.slider = q.Min
	case survey.TypeCheckboxes:
		m.choice = 0
	case survey.TypeText:
		m.textInput.SetValue("")
		m.textInput.Focus()
	}
}

func (m QuizPageModel) Update(msg tea.Msg) (QuizPageModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.idx < len(m.questions) && m.questions[m.idx].Type == survey.TypeText {
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.offerMore {
		switch key.String() {
		case "a":
			m.questions = append(m.questions, survey.AdditionalQuestions()...)
			m.extended = true
			m.offerMore = false
			m.resetWidget()
			return m, nil
		case "enter":
			return m, m.done()
		}
		return m, nil
	}

	if m.idx >= len(m.questions) {
		return m, nil
	}

	q := m.questions[m.idx]
	switch q.Type {
	case survey.TypeStars:
		return m.updateStars(key)
	case survey.TypeSlider:
		return m.updateSlider(key, q)
	case survey.TypeCheckboxes:
		return m.updateChoice(key, q)
	default:
		return m.updateText(key, q, msg)
	}
}

func (m QuizPageModel) updateStars(key tea.KeyMsg) (QuizPageModel, tea.Cmd) {
	switch key.String() {
	case "1", "2", "3", "4", "5":
		m.rating = int(key.String()[0] - '0')
		return m, nil
	case "left", "h":
		if m.rating > 1 {
			m.rating--
		}
		return m, nil
	case "right", "l":
		if m.rating < 5 {
			m.rating++
		}
		return m, nil
	case "enter":
		return m.commit(survey.NumberAnswer(float64(m.rating)))
	}
	return m, nil
}

func (m QuizPageModel) updateSlider(key tea.KeyMsg, q survey.Question) (QuizPageModel, tea.Cmd) {
	step := q.Step
	if step == 0 {
		step = 1
	}
	switch key.String() {
	case "left", "h":
		if m.slider-step >= q.Min {
			m.slider -= step
		}
		return m, nil
	case "right", "l":
		if m.slider+step <= q.Max {
			m.slider += step
		}
		return m, nil
	case "enter":
		return m.commit(survey.NumberAnswer(m.slider))
	}
	return m, nil
}

func (m QuizPageModel) updateChoice(key tea.KeyMsg, q survey.Question) (QuizPageModel, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.choice > 0 {
			m.choice--
		}
		return m, nil
	case "down", "j":
		if m.choice < len(q.Options)-1 {
			m.choice++
		}
		return m, nil
	case "enter":
		return m.commit(survey.ChoiceAnswer(q.Options[m.choice].Value))
	}
	return m, nil
}

func (m QuizPageModel) updateText(key tea.KeyMsg, q survey.Question, msg tea.Msg) (QuizPageModel, tea.Cmd) {
	if key.Type == tea.KeyEnter {
		text := strings.TrimSpace(m.textInput.Value())
		if text == "" {
			if q.Optional {
				return m.advance()
			}
			m.errMsg = "an answer is required here"
			return m, nil
		}
		return m.commit(survey.TextAnswer(text))
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// commit stores the answer for the current question and advances.
func (m QuizPageModel) commit(ans survey.Answer) (QuizPageModel, tea.Cmd) {
	m.answers[m.questions[m.idx].ID] = ans
	return m.advance()
}

func (m QuizPageModel) advance() (QuizPageModel, tea.Cmd) {
	m.idx++
	if m.idx < len(m.questions) {
		m.resetWidget()
		return m, nil
	}
	if !m.extended {
		m.offerMore = true
		return m, nil
	}
	return m, m.done()
}

func (m QuizPageModel) done() tea.Cmd {
	answers := m.answers.Clone()
	return func() tea.Msg { return quizDoneMsg{answers: answers} }
}

func (m QuizPageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Wellness check-in"))
	sb.WriteString("\n\n")

	if m.offerMore {
		sb.WriteString(m.styles.Body.Render("That covers the essentials."))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Body.Render("Answer a few more questions for a sharper picture?"))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Footer.Render("a for more questions, enter to see your timeline"))
		return m.styles.Content.Render(sb.String()) + "\n"
	}

	if m.idx >= len(m.questions) {
		return m.styles.Content.Render(sb.String()) + "\n"
	}

	q := m.questions[m.idx]
	sb.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Question %d of %d", m.idx+1, len(m.questions))))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Bold.Render(q.Text))
	sb.WriteString("\n\n")
	sb.WriteString(m.widgetView(q))
	sb.WriteString("\n")
	if m.errMsg != "" {
		sb.WriteString("\n" + m.styles.Error.Render(m.errMsg) + "\n")
	}
	sb.WriteString("\n" + m.styles.Footer.Render(m.hint(q)))
	return m.styles.Content.Render(sb.String()) + "\n"
}

func (m QuizPageModel) widgetView(q survey.Question) string {
	switch q.Type {
	case survey.TypeStars:
		stars := strings.Repeat("★", m.rating) + strings.Repeat("☆", 5-m.rating)
		return m.styles.Stars.Render(stars) + m.styles.Muted.Render(fmt.Sprintf("  %d/5", m.rating))

	case survey.TypeSlider:
		steps := int((q.Max - q.Min) / maxFloat(q.Step, 1))
		pos := int((m.slider - q.Min) / maxFloat(q.Step, 1))
		var bar strings.Builder
		for i := 0; i <= steps; i++ {
			if i == pos {
				bar.WriteString("●")
			} else {
				bar.WriteString("─")
			}
		}
		line := m.styles.Selected.Render(bar.String()) + m.styles.Muted.Render(fmt.Sprintf("  %.0f", m.slider))
		if len(q.Labels) > 0 {
			line += "\n" + m.styles.Muted.Render(strings.Join(q.Labels, "  /  "))
		}
		return line

	case survey.TypeCheckboxes:
		var sb strings.Builder
		for i, opt := range q.Options {
			if i == m.choice {
				sb.WriteString(m.styles.Selected.Render("▸ " + opt.Label))
			} else {
				sb.WriteString(m.styles.Body.Render("  " + opt.Label))
			}
			sb.WriteString("\n")
		}
		return sb.String()

	default:
		return m.textInput.View()
	}
}

func (m QuizPageModel) hint(q survey.Question) string {
	switch q.Type {
	case survey.TypeStars:
		return "1-5 or arrows to rate, enter to confirm"
	case survey.TypeSlider:
		return "arrows to adjust, enter to confirm"
	case survey.TypeCheckboxes:
		return "arrows to choose, enter to confirm"
	default:
		if q.Optional {
			return "type your answer, enter to continue (optional)"
		}
		return "type your answer, enter to continue"
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
