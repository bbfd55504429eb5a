// Package cli provides an interactive terminal transport for the quiz engine,
// mainly for local use and manual testing without Telegram.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/dmpolyakov/vocabtrainer/internal/engine"
)

// QuizCLI runs a quiz session for a single local user on a terminal.
type QuizCLI struct {
	engine *engine.Engine
	userID int64
	in     *bufio.Scanner
	out    io.Writer

	lastOptions []string
}

// NewQuizCLI creates a terminal quiz for the given user identity.
func NewQuizCLI(eng *engine.Engine, userID int64, in io.Reader, out io.Writer) *QuizCLI {
	return &QuizCLI{
		engine: eng,
		userID: userID,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run drives the session until EOF, "exit", or ctx cancellation.
func (c *QuizCLI) Run(ctx context.Context) error {
	c.render(c.engine.HandleEvent(ctx, c.event(engine.CmdStart)))
	c.render(c.engine.HandleEvent(ctx, c.event(engine.CmdNext)))

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return c.in.Err()
		}
		input := strings.TrimSpace(c.in.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}

		// A bare number selects the corresponding option of the last prompt.
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(c.lastOptions) {
			input = c.lastOptions[n-1]
		}

		c.render(c.engine.HandleEvent(ctx, c.event(input)))
	}
}

func (c *QuizCLI) event(payload string) engine.Event {
	return engine.Event{
		UserID:    c.userID,
		Kind:      engine.EventText,
		Payload:   payload,
		FirstName: "local",
	}
}

func (c *QuizCLI) render(responses []engine.Response) {
	for _, r := range responses {
		fmt.Fprintln(c.out, r.Text)
		if len(r.Options) == 0 {
			continue
		}
		c.lastOptions = r.Options
		for i, opt := range r.Options {
			fmt.Fprintf(c.out, "  %s %s\n", color.GreenString("%d)", i+1), opt)
		}
	}
}
