package sequential

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	Padding(0, 1)

// Renderer writes a bordered view of each recorded thought, normally
// to stderr so stdout stays clean for the protocol. Disabled entirely
// when DISABLE_THOUGHT_LOGGING=true.
type Renderer struct {
	out      io.Writer
	disabled bool
}

// NewRenderer builds a stderr renderer honoring the environment.
func NewRenderer() *Renderer {
	return &Renderer{
		out:      os.Stderr,
		disabled: strings.EqualFold(os.Getenv("DISABLE_THOUGHT_LOGGING"), "true"),
	}
}

// Render prints the thought box. No-op when disabled.
func (r *Renderer) Render(t Thought) {
	if r.disabled {
		return
	}
	var header string
	switch {
	case t.IsRevision:
		header = fmt.Sprintf("🔄 Revision %d/%d (revises thought %d)",
			t.ThoughtNumber, t.TotalThoughts, t.RevisesThought)
	case t.BranchFromThought > 0:
		header = fmt.Sprintf("🌿 Branch %d/%d (from thought %d, id: %s)",
			t.ThoughtNumber, t.TotalThoughts, t.BranchFromThought, t.BranchID)
	default:
		header = fmt.Sprintf("💭 Thought %d/%d", t.ThoughtNumber, t.TotalThoughts)
	}
	fmt.Fprintln(r.out, boxStyle.Render(header+"\n"+t.Thought))
}
