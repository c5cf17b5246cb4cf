package overlays

import (
	"bufio"
	"os"
	"strings"

	"github.com/madhoundes/pixelmuse/internal/debug"
	"github.com/madhoundes/pixelmuse/pkg/gui/theme"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DebugOverlay provides a full-screen scrollable view of the debug log
type DebugOverlay struct {
	viewport viewport.Model
	path     string
	width    int
	height   int
}

// NewDebugOverlay creates a debug overlay reading the log at path. An empty path
// uses the default debug.log location.
func NewDebugOverlay(path string) *DebugOverlay {
	if path == "" {
		path, _ = debug.LogPath()
	}
	return &DebugOverlay{
		viewport: viewport.New(0, 0),
		path:     path,
	}
}

// SetSize updates the overlay dimensions
func (d *DebugOverlay) SetSize(width, height int) {
	d.width = width
	d.height = height

	// border, padding and the two header rows
	d.viewport.Width = width - 8
	d.viewport.Height = height - 10
}

// Refresh reloads the log file and scrolls to the newest entry
func (d *DebugOverlay) Refresh() {
	d.viewport.SetContent(strings.Join(d.readLines(), "\n"))
	d.viewport.GotoBottom()
}

// Update handles messages for the debug overlay
func (d *DebugOverlay) Update(msg tea.Msg) (*DebugOverlay, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "ctrl+d":
			return d, func() tea.Msg {
				return DebugOverlayClosedMsg{}
			}
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View renders the debug overlay
func (d *DebugOverlay) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.TextPrimary)).
		Bold(true)

	pathStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.TextMuted))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.TextDescription))

	header := titleStyle.Render("Debug Log") + " " + pathStyle.Render("("+d.path+")") + "\n" +
		helpStyle.Render("↑/↓ to scroll • esc to close")

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderActive)).
		Padding(1, 2)
	if d.width > 4 && d.height > 4 {
		overlayStyle = overlayStyle.Width(d.width - 4).Height(d.height - 4)
	}

	return overlayStyle.Render(header + "\n\n" + d.viewport.View())
}

func (d *DebugOverlay) readLines() []string {
	file, err := os.Open(d.path)
	if err != nil {
		return []string{"No debug log yet"}
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return []string{"Error: could not read " + d.path}
	}
	if len(lines) == 0 {
		return []string{"No debug logs available"}
	}
	return lines
}

// DebugOverlayClosedMsg indicates the debug overlay was closed
type DebugOverlayClosedMsg struct{}
