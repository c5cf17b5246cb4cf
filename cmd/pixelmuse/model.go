package main

import (
	"github.com/madhoundes/pixelmuse/internal/debug"
	"github.com/madhoundes/pixelmuse/pkg/app"
	"github.com/madhoundes/pixelmuse/pkg/common"
	"github.com/madhoundes/pixelmuse/pkg/config"
	"github.com/madhoundes/pixelmuse/pkg/gui/components"
	"github.com/madhoundes/pixelmuse/pkg/gui/layout"
	"github.com/madhoundes/pixelmuse/pkg/gui/overlays"
	"github.com/madhoundes/pixelmuse/pkg/gui/panes"
	"github.com/madhoundes/pixelmuse/pkg/gui/theme"
	"github.com/madhoundes/pixelmuse/pkg/motion"
	"github.com/madhoundes/pixelmuse/pkg/typewriter"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appConfig is everything the model needs that is read from disk at startup
type appConfig struct {
	suggestions []string
	quality     app.QualityConfig
	history     []app.GenerationRequest
	motion      motion.Preference
	twOpts      []components.TypewriterOption
}

// historyClearedMsg reports the result of clearing the persisted history
type historyClearedMsg struct {
	err error
}

type model struct {
	layout *layout.Layout
	ready  bool
	keys   *common.GlobalKeyMap

	prompt  *panes.PromptPane
	history *panes.HistoryPane

	shortcutOverlay  *common.ShortcutOverlay
	footer           *common.Footer
	helpDialog       *overlays.HelpDialog
	showHelp         bool
	debugOverlay     *overlays.DebugOverlay
	showDebugOverlay bool

	motion    motion.Preference
	lastPhase typewriter.Phase
}

func initialModel(cfg appConfig) model {
	shortcutOverlay := common.NewShortcutOverlay(common.GlobalKeys)
	shortcutOverlay.SetFocus(common.FocusNone)

	footer := common.NewFooter()
	footer.SetShortcutOverlay(shortcutOverlay)
	footer.SetFocus(common.FocusNone)

	history := panes.NewHistoryPane()
	history.SetRequests(cfg.history)

	debug.DebugLog("Reduced motion: %t (from %s)", cfg.motion.Reduced, cfg.motion.Source)

	return model{
		layout:          layout.NewLayout(0, 0),
		keys:            common.GlobalKeys,
		prompt:          panes.NewPromptPane(cfg.suggestions, cfg.quality, cfg.motion.Reduced, cfg.twOpts...),
		history:         history,
		shortcutOverlay: shortcutOverlay,
		footer:          footer,
		helpDialog:      overlays.NewHelpDialog(common.GlobalKeys),
		debugOverlay:    overlays.NewDebugOverlay(""),
		motion:          cfg.motion,
	}
}

func (m model) Init() tea.Cmd {
	return m.prompt.Init()
}

// saveRequest persists req and remembers its quality for the next launch
func saveRequest(req app.GenerationRequest) tea.Cmd {
	return func() tea.Msg {
		err := app.SaveRequest(req)
		if err == nil {
			if qerr := config.SetLastQuality(req.Quality.Name); qerr != nil {
				debug.DebugLog("Failed to remember quality %s: %v", req.Quality.Name, qerr)
			}
		}
		return panes.GenerationSavedMsg{Request: req, Err: err}
	}
}

func clearHistory() tea.Msg {
	return historyClearedMsg{err: config.ClearHistory()}
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.prompt.Teardown()
	debug.DebugLog("Quitting")
	return m, tea.Quit
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.ready = true

		m.prompt.SetSize(m.layout.GetContentWidth(), 0)
		m.resizeHistory()

		m.footer.SetSize(msg.Width, layout.FooterRows)
		m.helpDialog.SetSize(msg.Width, msg.Height)
		m.debugOverlay.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}

		if m.showDebugOverlay {
			var cmd tea.Cmd
			m.debugOverlay, cmd = m.debugOverlay.Update(msg)
			return m, cmd
		}

		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if !m.prompt.Editing() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m.quit()
			case key.Matches(msg, m.keys.Keybindings):
				m.showHelp = true
				return m, nil
			case key.Matches(msg, m.keys.DebugLog):
				m.debugOverlay.Refresh()
				m.showDebugOverlay = true
				return m, nil
			case key.Matches(msg, m.keys.ClearHistory):
				return m, clearHistory
			}
		}

	case overlays.DebugOverlayClosedMsg:
		m.showDebugOverlay = false
		return m, nil

	case panes.GenerationRequestedMsg:
		cmds = append(cmds, saveRequest(msg.Request))

	case panes.GenerationSavedMsg:
		if msg.Err != nil {
			debug.DebugLog("Failed to save generation request: %v", msg.Err)
		} else {
			m.history.Prepend(msg.Request)
		}

	case historyClearedMsg:
		if msg.err != nil {
			debug.DebugLog("Failed to clear history: %v", msg.err)
		} else {
			m.history.SetRequests(nil)
		}
		return m, nil
	}

	if m.showDebugOverlay {
		var cmd tea.Cmd
		m.debugOverlay, cmd = m.debugOverlay.Update(msg)
		cmds = append(cmds, cmd)
	}

	_, cmd := m.prompt.Update(msg)
	cmds = append(cmds, cmd)

	m.footer.SetFocus(m.prompt.FocusName())
	m.resizeHistory()
	m.logPhase()

	return m, tea.Batch(cmds...)
}

// resizeHistory gives the recent requests list whatever the prompt form leaves
func (m *model) resizeHistory() {
	m.layout.SetPromptRows(lipgloss.Height(m.prompt.View()))
	m.history.SetSize(m.layout.GetContentWidth(), m.layout.GetHistoryHeight())
}

// logPhase records typewriter phase transitions in the debug log
func (m *model) logPhase() {
	phase := m.prompt.Typewriter().State().Phase
	if phase == m.lastPhase {
		return
	}
	debug.DebugLog("Suggestion phase %s -> %s", m.lastPhase, phase)
	m.lastPhase = phase
}

func (m model) renderPaneTitle(pane components.Pane) string {
	title := pane.GetTitleStyle()

	var style lipgloss.Style
	if pane.IsActive() {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(title.Color)).Bold(true)
	} else {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextDescription))
	}
	text := style.Render(title.Text)

	if title.Shortcuts != "" {
		hint := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextMuted))
		text += " " + hint.Render(title.Shortcuts)
	}
	return text
}

func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	mainView := m.layout.Render(
		m.renderPaneTitle(m.prompt),
		m.prompt.View(),
		m.renderPaneTitle(m.history),
		m.history.View(),
		m.footer.View(),
	)

	width, height := m.layout.GetWidth(), m.layout.GetHeight()
	if m.showHelp {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.helpDialog.View())
	}
	if m.showDebugOverlay {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.debugOverlay.View())
	}
	return mainView
}
