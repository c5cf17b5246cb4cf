package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/madhoundes/pixelmuse/internal/debug"
	"github.com/madhoundes/pixelmuse/pkg/gui/components"
	"github.com/madhoundes/pixelmuse/pkg/typewriter"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// streamOptions controls the headless suggestions stream
type streamOptions struct {
	suggestions   []string
	reducedMotion bool
	tty           bool
	duration      time.Duration
	count         int
	engineOpts    []typewriter.EngineOption
}

// streamSuggestions runs the typewriter engine and writes its placeholder to out
// until ctx is done, duration elapses or count suggestions completed. On a
// terminal the line is redrawn in place; otherwise each completed suggestion is
// printed once.
func streamSuggestions(ctx context.Context, out io.Writer, opts streamOptions) error {
	if opts.reducedMotion {
		// nothing animates, so list the suggestions once
		for _, s := range opts.suggestions {
			if _, err := fmt.Fprintln(out, s); err != nil {
				return err
			}
		}
		return nil
	}

	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	// completed carries every suggestion that finished typing. The engine waits
	// for the reader, so none are skipped.
	completed := make(chan string)
	stopped := make(chan struct{})
	lastPhase := typewriter.PhaseIdle
	onChange := func(s typewriter.State) {
		if s.Phase == lastPhase {
			return
		}
		debug.DebugLog("Suggestion %d phase %s -> %s", s.Index, lastPhase, s.Phase)
		lastPhase = s.Phase
		if s.Phase != typewriter.PhaseHolding {
			return
		}
		select {
		case completed <- s.Text:
		case <-stopped:
		}
	}

	engine := typewriter.NewEngine(opts.suggestions, append(opts.engineOpts, typewriter.WithOnChange(onChange))...)
	defer engine.Close()

	var (
		output *termenv.Output
		states <-chan typewriter.State
	)
	if opts.tty {
		var unsubscribe func()
		states, unsubscribe = engine.Subscribe()
		defer unsubscribe()

		output = termenv.NewOutput(out)
		output.HideCursor()
		defer func() {
			output.ClearLine()
			_, _ = fmt.Fprint(output, "\r")
			output.ShowCursor()
		}()
	}

	// runs first on return, releasing a callback blocked on completed
	defer close(stopped)

	engine.SetShouldAnimate(true)

	count := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case s, ok := <-states:
			if !ok {
				return nil
			}
			renderLine(output, s)
		case text := <-completed:
			if output == nil {
				if _, err := fmt.Fprintln(out, text); err != nil {
					return err
				}
			}
			count++
			if opts.count > 0 && count >= opts.count {
				return nil
			}
		}
	}
}

func renderLine(output *termenv.Output, s typewriter.State) {
	caret := " "
	if s.CaretVisible {
		caret = components.CaretGlyph
	}
	output.ClearLine()
	_, _ = fmt.Fprint(output, "\r"+output.String(s.Text).Faint().String()+caret)
}

// stdoutIsTerminal reports whether stdout is an interactive terminal
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal
func terminalWidth() int {
	if !stdoutIsTerminal() {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
