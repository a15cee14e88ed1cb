package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"futureself/internal/generate"
	"futureself/internal/survey"
	"futureself/internal/timeline"
)

// Options wires the interface to the rest of the system.
type Options struct {
	Generator generate.Generator
	Logger    *zap.Logger
	Retry     timeline.RetryPolicy
	OutDir    string
}

// page identifies the active screen.
type page int

const (
	pagePhoto page = iota
	pageInfo
	pageQuiz
	pageTimeline
)

// Transition messages emitted by the sub-pages.
type (
	photoLoadedMsg struct {
		data []byte
		mime string
	}
	infoEnteredMsg struct {
		info survey.BasicInfo
	}
	quizDoneMsg struct {
		answers survey.Answers
	}
)

// Model is the root interface model: a thin page router.
type Model struct {
	opts   Options
	styles Styles
	page   page

	photoPage    PhotoPageModel
	infoPage     InfoPageModel
	quizPage     QuizPageModel
	timelinePage TimelinePageModel

	photoData []byte
	photoMIME string
	basicInfo survey.BasicInfo

	width  int
	height int
	err    error
}

// NewModel builds the interface starting at the photo page.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	styles := DefaultStyles()
	return Model{
		opts:      opts,
		styles:    styles,
		page:      pagePhoto,
		photoPage: NewPhotoPageModel(styles),
		infoPage:  NewInfoPageModel(styles),
		quizPage:  NewQuizPageModel(styles),
	}
}

// Run drives the interface to completion.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.photoPage.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timelinePage.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case photoLoadedMsg:
		m.photoData = msg.data
		m.photoMIME = msg.mime
		m.page = pageInfo
		return m, m.infoPage.Init()

	case infoEnteredMsg:
		m.basicInfo = msg.info
		m.page = pageQuiz
		return m, m.quizPage.Init()

	case quizDoneMsg:
		orch, err := timeline.New(timeline.Config{
			Generator: m.opts.Generator,
			Logger:    m.opts.Logger,
			BasicInfo: m.basicInfo,
			Answers:   msg.answers,
			Photo:     m.photoData,
			PhotoMIME: m.photoMIME,
			Retry:     m.opts.Retry,
		})
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.timelinePage = NewTimelinePageModel(context.Background(), orch, m.styles, m.opts.OutDir)
		m.timelinePage.SetSize(m.width, m.height)
		m.page = pageTimeline
		return m, m.timelinePage.Init()
	}

	var cmd tea.Cmd
	switch m.page {
	case pagePhoto:
		m.photoPage, cmd = m.photoPage.Update(msg)
	case pageInfo:
		m.infoPage, cmd = m.infoPage.Update(msg)
	case pageQuiz:
		m.quizPage, cmd = m.quizPage.Update(msg)
	case pageTimeline:
		m.timelinePage, cmd = m.timelinePage.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("fatal: %v", m.err)) + "\n"
	}
	switch m.page {
	case pagePhoto:
		return m.photoPage.View()
	case pageInfo:
		return m.infoPage.View()
	case pageQuiz:
		return m.quizPage.View()
	case pageTimeline:
		return m.timelinePage.View()
	}
	return ""
}
