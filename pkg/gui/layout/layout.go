package layout

import (
	"strings"

	"github.com/madhoundes/pixelmuse/pkg/gui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	TopPaddingRows   = 1
	PaneTitleRows    = 1
	SectionGapRows   = 1
	SeparatorRows    = 1
	FooterRows       = 1
	HorizontalMargin = 2
	MinHistoryRows   = 1
)

// Layout manages section dimensions for the prompt screen: the prompt form on
// top, the recent requests list filling what is left, and the footer.
type Layout struct {
	width  int
	height int

	promptRows    int
	contentWidth  int
	historyHeight int
}

// NewLayout creates a new layout with the given terminal dimensions
func NewLayout(width, height int) *Layout {
	l := &Layout{
		width:  width,
		height: height,
	}
	l.calculate()
	return l
}

// Update recalculates the layout for new terminal dimensions
func (l *Layout) Update(width, height int) {
	l.width = width
	l.height = height
	l.calculate()
}

// SetPromptRows tells the layout how tall the rendered prompt form is
func (l *Layout) SetPromptRows(rows int) {
	if rows == l.promptRows {
		return
	}
	l.promptRows = rows
	l.calculate()
}

func (l *Layout) calculate() {
	l.contentWidth = l.width - HorizontalMargin*2
	if l.contentWidth < 0 {
		l.contentWidth = 0
	}

	chromeHeight := TopPaddingRows + PaneTitleRows*2 + SectionGapRows + SeparatorRows + FooterRows
	l.historyHeight = l.height - chromeHeight - l.promptRows
	if l.historyHeight < MinHistoryRows {
		l.historyHeight = MinHistoryRows
	}
}

// Render stacks the sections and pins the footer to the last row
func (l *Layout) Render(promptTitle, prompt, historyTitle, history, footer string) string {
	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.SeparatorColor)).
		Render(strings.Repeat("─", l.contentWidth))

	body := lipgloss.JoinVertical(lipgloss.Left,
		promptTitle,
		prompt,
		"",
		historyTitle,
		separator,
		history,
	)

	padded := lipgloss.NewStyle().
		PaddingTop(TopPaddingRows).
		PaddingLeft(HorizontalMargin).
		PaddingRight(HorizontalMargin).
		Render(body)

	if bodyHeight := l.height - FooterRows; bodyHeight > 0 && lipgloss.Height(padded) < bodyHeight {
		padded = lipgloss.PlaceVertical(bodyHeight, lipgloss.Top, padded)
	}
	return lipgloss.JoinVertical(lipgloss.Left, padded, footer)
}

// GetContentWidth returns the width available inside the horizontal margins
func (l *Layout) GetContentWidth() int {
	return l.contentWidth
}

// GetHistoryHeight returns the rows available to the recent requests list
func (l *Layout) GetHistoryHeight() int {
	return l.historyHeight
}

// GetWidth returns the terminal width
func (l *Layout) GetWidth() int {
	return l.width
}

// GetHeight returns the terminal height
func (l *Layout) GetHeight() int {
	return l.height
}
