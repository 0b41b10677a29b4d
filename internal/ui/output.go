package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects the helpers below. Nil leaves a stream unchanged.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Stdout is where Println and panels go.
func Stdout() io.Writer { return stdout }

func OK(msg string) {
	fmt.Fprintln(stdout, current.Success.Render(current.SymOK+" "+msg))
}

func Fail(msg string) {
	fmt.Fprintln(stderr, current.Error.Render(current.SymFail+" "+msg))
}

// Hint prints a muted follow-up line on stderr.
func Hint(msg string) {
	fmt.Fprintln(stderr, current.Muted.Render(msg))
}

func Println(a ...any) {
	fmt.Fprintln(stdout, a...)
}

// PanelString frames lines with the theme border.
func PanelString(lines []string) string {
	border := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Panel prints a framed box.
func Panel(lines []string) {
	fmt.Fprintln(stdout, PanelString(lines))
}
