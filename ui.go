package cinemenu

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type MovieItem struct {
	movie MovieSummary
}

func (i MovieItem) Title() string {
	return fmt.Sprintf("%v (%v)", i.movie.Title, formatScore(i.movie.Score()))
}

func (i MovieItem) Description() string {
	if i.movie.ReleaseDate == "" {
		return TruncateOverview(i.movie.Overview)
	}
	return i.movie.ReleaseDate + " " + TruncateOverview(i.movie.Overview)
}

func (i MovieItem) FilterValue() string {
	return i.movie.Title
}

type model struct {
	list list.Model
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

func newModel(title string, movies []MovieSummary) model {
	items := make([]list.Item, 0, len(movies))
	for _, mv := range movies {
		items = append(items, MovieItem{movie: mv})
	}
	m := model{list: list.New(items, list.NewDefaultDelegate(), 0, 0)}
	m.list.Title = title
	return m
}

// NewUI shows a read only, filterable list of movies until the user quits
func NewUI(title string, movies []MovieSummary) error {
	p := tea.NewProgram(newModel(title, movies), tea.WithAltScreen())
	return p.Start()
}
