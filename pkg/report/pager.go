// pkg/report/pager.go
package report

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// DefaultPagerCommand shows results through less: -R passes the colors
// through and +Gg keeps the view at the top with line counts known.
const DefaultPagerCommand = "less -R +Gg"

// fallbackHeight is assumed when the terminal size cannot be queried
const fallbackHeight = 24

// Pager decides between printing directly and handing the text to an
// external pager, based on how much of the terminal it would cover.
type Pager struct {
	Command string    // Pager command line, DefaultPagerCommand when empty
	Disable bool      // Always print directly
	Out     io.Writer // Destination for direct prints, os.Stdout when nil

	// Test seams; nil selects the real implementation
	height   func() int
	lookPath func(string) (string, error)
	run      func(ctx context.Context, path string, args []string, text string) error
}

// Display shows text, paging it when it would overflow the terminal.
// The text reaches the pager byte for byte; an unavailable pager falls
// back to printing directly.
func (p *Pager) Display(ctx context.Context, text string) error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	if p.Disable || !p.shouldPage(text) {
		_, err := io.WriteString(out, text)
		return err
	}

	command := p.Command
	if command == "" {
		command = DefaultPagerCommand
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		_, err := io.WriteString(out, text)
		return err
	}

	lookPath := p.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(fields[0])
	if err != nil {
		_, werr := io.WriteString(out, text)
		return werr
	}

	run := p.run
	if run == nil {
		run = runPager
	}
	return run(ctx, path, fields[1:], text)
}

// shouldPage reports whether text would overflow the usable screen,
// leaving two rows for the prompt
func (p *Pager) shouldPage(text string) bool {
	height := fallbackHeight
	if p.height != nil {
		height = p.height()
	} else if _, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil && rows > 0 {
		height = rows
	}
	return countLines(text) > height-2
}

// countLines counts display lines; a trailing newline does not open a
// new line
func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// runPager feeds text to the pager on stdin and waits for it to exit
func runPager(ctx context.Context, path string, args []string, text string) error {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
