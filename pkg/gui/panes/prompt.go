package panes

import (
	"strings"
	"time"

	"github.com/madhoundes/pixelmuse/internal/debug"
	"github.com/madhoundes/pixelmuse/pkg/app"
	"github.com/madhoundes/pixelmuse/pkg/common"
	"github.com/madhoundes/pixelmuse/pkg/gui/components"
	"github.com/madhoundes/pixelmuse/pkg/gui/icons"
	"github.com/madhoundes/pixelmuse/pkg/gui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type promptField int

const (
	fieldNone promptField = iota
	fieldPrompt
	fieldQuality
)

// String returns the footer focus name of the field
func (f promptField) String() string {
	switch f {
	case fieldPrompt:
		return common.FocusPrompt
	case fieldQuality:
		return common.FocusQuality
	default:
		return common.FocusNone
	}
}

const promptMarker = "› "

var (
	promptLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TextDescription))

	promptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.BorderMuted)).
			Padding(0, 1)

	promptMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.MuseColor))

	qualityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextMuted)).
			Padding(0, 1)

	qualitySelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.HighlightText)).
				Background(lipgloss.Color(theme.InfoStatus)).
				Bold(true).
				Padding(0, 1)

	statusOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.SuccessStatus))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.ErrorStatus))
)

// PromptPane is the thumbnail prompt form: a prompt field with animated
// suggestions while empty and unfocused, and a quality selector.
type PromptPane struct {
	*components.BasePane
	input      textinput.Model
	typewriter *components.Typewriter
	loader     *components.StatusLoader
	keys       *common.GlobalKeyMap

	field     promptField
	quality   int
	status    string
	statusErr bool
	now       func() time.Time
}

// NewPromptPane creates the prompt form. The typewriter is not started until Init.
func NewPromptPane(suggestions []string, quality app.QualityConfig, reducedMotion bool, opts ...components.TypewriterOption) *PromptPane {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 200
	input.Width = 60
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextMuted))

	tw := components.NewTypewriter(suggestions, opts...)
	tw.SetReducedMotion(reducedMotion)

	return &PromptPane{
		BasePane:   components.NewBasePane(0, "Generate Thumbnail"),
		input:      input,
		typewriter: tw,
		loader:     components.NewStatusLoader(),
		keys:       common.GlobalKeys,
		quality:    app.QualityIndex(quality),
		now:        time.Now,
	}
}

// Init starts the suggestion animation
func (p *PromptPane) Init() tea.Cmd {
	return tea.Batch(p.typewriter.Init(), p.syncTypewriter())
}

// Teardown stops the suggestion animation for good
func (p *PromptPane) Teardown() {
	p.typewriter.Teardown()
}

// SetSize updates the pane and its field widths
func (p *PromptPane) SetSize(width, height int) {
	p.BasePane.SetSize(width, height)
	inner := width - promptBoxStyle.GetHorizontalFrameSize() - lipgloss.Width(promptMarker)
	if inner < 10 {
		inner = 10
	}
	p.input.Width = inner - 1
	p.typewriter.SetWidth(inner)
}

// SetReducedMotion switches the reduced-motion preference at runtime
func (p *PromptPane) SetReducedMotion(v bool) tea.Cmd {
	return p.typewriter.SetReducedMotion(v)
}

// ShouldAnimate reports whether suggestions may be shown: the prompt is empty and
// not focused
func (p *PromptPane) ShouldAnimate() bool {
	return p.input.Value() == "" && p.field != fieldPrompt
}

// Editing reports whether key presses are text input
func (p *PromptPane) Editing() bool {
	return p.field == fieldPrompt
}

// FocusName returns the focused field for the footer
func (p *PromptPane) FocusName() string {
	return p.field.String()
}

// Value returns the prompt text
func (p *PromptPane) Value() string {
	return p.input.Value()
}

// SetValue replaces the prompt text
func (p *PromptPane) SetValue(v string) tea.Cmd {
	p.input.SetValue(v)
	return p.syncTypewriter()
}

// Quality returns the selected quality tier
func (p *PromptPane) Quality() app.QualityConfig {
	return app.Qualities[p.quality]
}

// Typewriter exposes the suggestion animation
func (p *PromptPane) Typewriter() *components.Typewriter {
	return p.typewriter
}

// GetTitleStyle hints at the focus key while the form is not being edited
func (p *PromptPane) GetTitleStyle() components.TitleStyle {
	style := p.BasePane.GetTitleStyle()
	style.Text = icons.Prompt.Get() + " " + style.Text
	if p.field == fieldNone {
		style.Shortcuts = "[i write]"
	}
	return style
}

// Update handles messages for the prompt form
func (p *PromptPane) Update(msg tea.Msg) (components.Pane, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, p.handleKey(msg))

	case components.TypewriterTickMsg:
		return p, p.typewriter.Update(msg)

	case spinner.TickMsg:
		return p, p.loader.Update(msg)

	case GenerationSavedMsg:
		p.loader.Stop()
		if msg.Err != nil {
			p.setStatus("Could not save request: "+msg.Err.Error(), true)
		} else {
			p.setStatus("Queued "+msg.Request.Quality.Name+" thumbnail", false)
		}

	default:
		if p.field == fieldPrompt {
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, p.syncTypewriter())
	return p, tea.Batch(cmds...)
}

func (p *PromptPane) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch p.field {
	case fieldNone:
		if key.Matches(msg, p.keys.EditPrompt) {
			return p.focus(fieldPrompt)
		}

	case fieldPrompt:
		switch {
		case key.Matches(msg, p.keys.Blur):
			return p.focus(fieldNone)
		case key.Matches(msg, p.keys.NextField):
			return p.focus(fieldQuality)
		case key.Matches(msg, p.keys.Submit):
			return p.submit()
		default:
			p.status = ""
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return cmd
		}

	case fieldQuality:
		switch {
		case key.Matches(msg, p.keys.Blur):
			return p.focus(fieldNone)
		case key.Matches(msg, p.keys.NextField):
			return p.focus(fieldPrompt)
		case key.Matches(msg, p.keys.QualityPrev):
			if p.quality > 0 {
				p.quality--
			}
		case key.Matches(msg, p.keys.QualityNext):
			if p.quality < len(app.Qualities)-1 {
				p.quality++
			}
		case key.Matches(msg, p.keys.Submit):
			return p.submit()
		}
	}
	return nil
}

func (p *PromptPane) focus(f promptField) tea.Cmd {
	p.field = f
	p.SetActive(f != fieldNone)
	if f == fieldPrompt {
		return p.input.Focus()
	}
	p.input.Blur()
	return nil
}

func (p *PromptPane) submit() tea.Cmd {
	if p.loader.Active() {
		return nil
	}

	req, err := app.NewGenerationRequest(p.input.Value(), p.Quality(), p.now())
	if err != nil {
		p.setStatus("Write a prompt first", true)
		return nil
	}

	debug.DebugLog("Generation requested: id=%s quality=%s", req.ID, req.Quality.Name)
	p.status = ""
	return tea.Batch(
		p.loader.Start("Saving request..."),
		func() tea.Msg {
			return GenerationRequestedMsg{Request: req}
		},
	)
}

func (p *PromptPane) setStatus(text string, isErr bool) {
	p.status = text
	p.statusErr = isErr
}

// syncTypewriter feeds the current gating value to the animation
func (p *PromptPane) syncTypewriter() tea.Cmd {
	return p.typewriter.SetShouldAnimate(p.ShouldAnimate())
}

// View renders the prompt form
func (p *PromptPane) View() string {
	var field string
	if p.ShouldAnimate() {
		field = p.typewriter.View()
	} else {
		field = p.input.View()
	}

	box := promptBoxStyle
	if p.field == fieldPrompt {
		box = box.BorderForeground(lipgloss.Color(theme.MuseColor))
	}
	if w := p.GetWidth(); w > 0 {
		box = box.Width(w - box.GetHorizontalBorderSize())
	}

	var qualities []string
	for i, q := range app.Qualities {
		if i == p.quality {
			qualities = append(qualities, qualitySelectedStyle.Render(icons.GetQualityIcon(q.Name)+" "+q.Name))
		} else {
			qualities = append(qualities, qualityStyle.Render(q.Name))
		}
	}
	qualityLabel := "Quality:"
	if p.field == fieldQuality {
		qualityLabel = promptMarkerStyle.Render("Quality:")
	}
	qualityRow := promptLabelStyle.Render(qualityLabel) + " " +
		strings.Join(qualities, " ") + "  " +
		promptLabelStyle.Render(p.Quality().Description)

	lines := []string{
		promptLabelStyle.Render("Enter your thumbnail prompt:"),
		box.Render(promptMarkerStyle.Render(promptMarker) + field),
		qualityRow,
	}

	switch {
	case p.loader.Active():
		lines = append(lines, "", p.loader.View())
	case p.status != "" && p.statusErr:
		lines = append(lines, "", statusErrorStyle.Render(icons.Failed.Get()+" "+p.status))
	case p.status != "":
		lines = append(lines, "", statusOKStyle.Render(icons.Queued.Get()+" "+p.status))
	}

	return strings.Join(lines, "\n")
}

// GetPaneSpecificKeybindings returns the keys of the focused field
func (p *PromptPane) GetPaneSpecificKeybindings() []key.Binding {
	switch p.field {
	case fieldPrompt:
		return []key.Binding{p.keys.Submit, p.keys.NextField, p.keys.Blur}
	case fieldQuality:
		return []key.Binding{p.keys.QualityPrev, p.keys.QualityNext, p.keys.Submit}
	default:
		return []key.Binding{p.keys.EditPrompt}
	}
}
