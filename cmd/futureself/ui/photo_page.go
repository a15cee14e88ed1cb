package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"futureself/internal/generate"
)

// PhotoPageModel asks for the path to the base photo.
type PhotoPageModel struct {
	input  textinput.Model
	styles Styles
	errMsg string
}

// NewPhotoPageModel creates the photo entry page.
func NewPhotoPageModel(styles Styles) PhotoPageModel {
	ti := textinput.New()
	ti.Placeholder = "path/to/photo.jpg"
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()
	return PhotoPageModel{input: ti, styles: styles}
}

func (m PhotoPageModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PhotoPageModel) Update(msg tea.Msg) (PhotoPageModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			m.errMsg = "enter the path to a photo"
			return m, nil
		}
		data, mime, err := generate.LoadPhoto(path)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return photoLoadedMsg{data: data, mime: mime} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PhotoPageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Meet your future self"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Body.Render("Start with a clear photo of your face."))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Prompt.Render("Photo file: "))
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.errMsg != "" {
		sb.WriteString("\n" + m.styles.Error.Render(m.errMsg) + "\n")
	}
	sb.WriteString("\n" + m.styles.Footer.Render("enter to continue, ctrl+c to quit"))
	return m.styles.Content.Render(sb.String()) + "\n"
}
