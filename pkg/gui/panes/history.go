package panes

import (
	"fmt"
	"strings"

	"github.com/madhoundes/pixelmuse/pkg/app"
	"github.com/madhoundes/pixelmuse/pkg/gui/components"
	"github.com/madhoundes/pixelmuse/pkg/gui/icons"
	"github.com/madhoundes/pixelmuse/pkg/gui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const historyTimeLayout = "Jan 02 15:04"

var (
	historyTimeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TextMuted))

	historyQualityStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.InfoStatus)).
				Width(9)

	historyPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TextPrimary))

	historyEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TextMuted)).
				Italic(true)
)

// HistoryPane lists recently submitted generation requests
type HistoryPane struct {
	*components.BasePane
	requests []app.GenerationRequest
}

// NewHistoryPane creates an empty history pane
func NewHistoryPane() *HistoryPane {
	return &HistoryPane{
		BasePane: components.NewBasePane(1, "Recent"),
	}
}

// SetRequests replaces the listed requests (newest first)
func (h *HistoryPane) SetRequests(requests []app.GenerationRequest) {
	h.requests = requests
}

// Prepend adds a request at the top of the list
func (h *HistoryPane) Prepend(req app.GenerationRequest) {
	h.requests = append([]app.GenerationRequest{req}, h.requests...)
}

// Len returns the number of listed requests
func (h *HistoryPane) Len() int {
	return len(h.requests)
}

// GetTitleStyle shows the number of listed requests
func (h *HistoryPane) GetTitleStyle() components.TitleStyle {
	style := h.BasePane.GetTitleStyle()
	style.Text = icons.History.Get() + " " + style.Text
	if n := len(h.requests); n > 0 {
		style.Shortcuts = fmt.Sprintf("(%d)", n)
	}
	return style
}

// Update is a no-op; the list is driven by SetRequests and Prepend
func (h *HistoryPane) Update(msg tea.Msg) (components.Pane, tea.Cmd) {
	return h, nil
}

// View renders as many requests as fit in the pane height
func (h *HistoryPane) View() string {
	if len(h.requests) == 0 {
		return historyEmptyStyle.Render("No thumbnails requested yet")
	}

	limit := len(h.requests)
	if hgt := h.GetHeight(); hgt > 0 && hgt < limit {
		limit = hgt
	}

	lines := make([]string, 0, limit)
	for _, req := range h.requests[:limit] {
		lines = append(lines, FormatRequestLine(req, h.GetWidth()))
	}
	return strings.Join(lines, "\n")
}

// FormatRequestLine renders one request, truncating the prompt to fit width
// cells. A width of zero disables truncation.
func FormatRequestLine(req app.GenerationRequest, width int) string {
	stamp := historyTimeStyle.Render(req.CreatedAt.Local().Format(historyTimeLayout))
	quality := historyQualityStyle.Render(icons.GetQualityIcon(req.Quality.Name) + " " + req.Quality.Name)
	prefix := fmt.Sprintf("%s  %s ", stamp, quality)

	prompt := req.Prompt
	if width > 0 {
		room := width - lipgloss.Width(prefix)
		if room < 1 {
			room = 1
		}
		prompt = truncate.StringWithTail(prompt, uint(room), "…")
	}
	return prefix + historyPromptStyle.Render(prompt)
}
