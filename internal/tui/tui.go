// Package tui is the terminal presentation layer. All game rules live behind
// the engine API; this package only renders snapshots and forwards left or
// right decisions.
package tui

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lapitia/Feelings-World/internal/config"
	"github.com/lapitia/Feelings-World/internal/engine"
	"github.com/lapitia/Feelings-World/internal/i18n"
	"github.com/lapitia/Feelings-World/internal/models"
)

type sessionState int

const (
	stateLanguage sessionState = iota
	statePlaying
	stateEnded
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F5F87")).
			Padding(1, 2)

	characterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EEEEEE"))

	leftStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D75F5F"))

	rightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FAF5F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	statNameStyle = lipgloss.NewStyle().
			Width(12).
			Foreground(lipgloss.Color("#AAAAAA"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)
)

type model struct {
	state  sessionState
	eng    *engine.Engine
	tr     *i18n.Translator
	langs  []string
	cursor int
	bar    progress.Model
	width  int
	height int
	err    error
}

// NewModel builds the TUI model. When a language is already loaded the
// language menu is skipped.
func NewModel(eng *engine.Engine, tr *i18n.Translator) model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30

	state := stateLanguage
	if tr.Lang() != "" {
		state = statePlaying
	}

	return model{
		state: state,
		eng:   eng,
		tr:    tr,
		langs: i18n.Languages(),
		bar:   bar,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

		switch m.state {
		case stateLanguage:
			return m.updateLanguage(msg)
		case statePlaying:
			return m.updatePlaying(msg)
		case stateEnded:
			return m.updateEnded(msg)
		}
	}

	return m, nil
}

func (m model) updateLanguage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.langs)-1 {
			m.cursor++
		}
	case "enter":
		if err := m.tr.Load(m.langs[m.cursor]); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.state = statePlaying
	}
	return m, nil
}

func (m model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var dir models.Direction
	switch msg.String() {
	case "left", "h":
		dir = models.DirectionLeft
	case "right", "l":
		dir = models.DirectionRight
	default:
		return m, nil
	}

	if err := m.eng.SubmitDecision(dir); err != nil {
		m.err = err
		return m, tea.Quit
	}
	if m.eng.IsEnded() {
		m.state = stateEnded
	}
	return m, nil
}

func (m model) updateEnded(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		if err := m.eng.Restart(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.state = statePlaying
	case "m":
		if err := m.eng.Restart(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.state = stateLanguage
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateLanguage:
		return m.viewLanguage()
	case statePlaying:
		return m.viewPlaying()
	case stateEnded:
		return m.viewEnded()
	}
	return ""
}

func (m model) viewLanguage() string {
	title := titleStyle.Render(m.tr.T("app.title"))
	subtitle := m.tr.T("menu.choose_language")

	names := map[string]string{"en": "English", "pl": "Polski", "ru": "Русский"}
	list := ""
	for i, lang := range m.langs {
		name, ok := names[lang]
		if !ok {
			name = lang
		}
		line := "  " + name
		if i == m.cursor {
			line = selectedStyle.Render("> " + name)
		}
		list += line + "\n"
	}

	return fmt.Sprintf("\n%s\n\n%s\n\n%s", title, subtitle, list)
}

func (m model) viewPlaying() string {
	message := m.tr.T("ui.survive", m.eng.Deck().MaxTurns)
	if turn := m.eng.CurrentTurn(); turn > 0 {
		message = m.tr.T("ui.turn", turn, m.eng.Deck().MaxTurns)
	}

	card := m.eng.CurrentCard()
	cardBox := ""
	if card != nil {
		prompt := lipgloss.NewStyle().Width(52).Render(m.tr.T(card.PromptKey))
		left := leftStyle.Render("← " + m.tr.T("ui.left") + ": " + m.tr.T(card.LeftKey))
		right := rightStyle.Render("→ " + m.tr.T("ui.right") + ": " + m.tr.T(card.RightKey))
		cardBox = cardStyle.Render(
			characterStyle.Render(m.tr.T(card.TitleKey)) + "\n\n" +
				prompt + "\n\n" +
				left + "\n" + right,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"\n"+titleStyle.Render(m.tr.T("app.title")),
		message,
		"",
		m.viewStats(),
		cardBox,
		helpStyle.Render(m.tr.T("ui.choose_hint")),
	)
}

func (m model) viewEnded() string {
	outcome := m.eng.EndingOutcome()
	title := titleStyle.Render(m.tr.T(outcome.TitleKey()))
	body := lipgloss.NewStyle().Width(56).Render(m.tr.T(outcome.BodyKey()))

	help := helpStyle.Render(fmt.Sprintf("r %s · m %s · q %s",
		m.tr.T("ui.restart"), m.tr.T("ui.back_menu"), m.tr.T("ui.quit")))

	return lipgloss.JoinVertical(lipgloss.Left,
		"\n"+m.tr.T("ui.run_ended"),
		"",
		title,
		"",
		body,
		"",
		m.viewStats(),
		help,
	)
}

func (m model) viewStats() string {
	stats := m.eng.CurrentStats()
	out := ""
	for _, key := range m.eng.Deck().Stats {
		v := stats[key]
		out += statNameStyle.Render(m.tr.T("stat."+string(key))) +
			m.bar.ViewAs(float64(v)/float64(models.StatMax)) +
			fmt.Sprintf(" %3d", v) + "\n"
	}
	return out
}

// Run starts the TUI over an already-constructed engine and translator.
func Run(eng *engine.Engine, tr *i18n.Translator) error {
	final, err := tea.NewProgram(NewModel(eng, tr), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// Start wires configuration, deck, roller and translator together and runs
// the TUI. This is the default entry point.
func Start() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	deck, err := models.LoadDeck(cfg.DeckPath)
	if err != nil {
		return err
	}

	var roller dice.Roller = dice.DefaultRoller
	if cfg.Seed != 0 {
		roller = engine.NewSeededRoller(cfg.Seed)
	}

	eng, err := engine.New(&engine.Config{Deck: deck, Roller: roller})
	if err != nil {
		return err
	}

	tr := i18n.New()
	if cfg.Language != "" {
		if err := tr.Load(cfg.Language); err != nil {
			return err
		}
	}

	return Run(eng, tr)
}
