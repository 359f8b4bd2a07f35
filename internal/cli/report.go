package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Report renders the outcomes as a markdown document.
func Report(outcomes []CheckOutcome) string {
	var b strings.Builder
	b.WriteString("# Equivalence report\n\n")
	for _, o := range outcomes {
		fmt.Fprintf(&b, "## %s\n\n", o.Name)
		if o.Err != nil {
			fmt.Fprintf(&b, "**Error**: %v\n\n", o.Err)
			continue
		}
		fmt.Fprintf(&b, "- Model: `%s`, equivalence: `%s`\n", o.Model, o.Kind)
		fmt.Fprintf(&b, "- Left: `%s`\n", o.Left)
		fmt.Fprintf(&b, "- Right: `%s`\n", o.Right)
		fmt.Fprintf(&b, "- Verdict: **%s**\n", verdict(o))
		if o.Result.Reason != "" {
			fmt.Fprintf(&b, "- Reason: %s\n", o.Result.Reason)
		}
		if len(o.Result.WitnessTrace) > 0 {
			fmt.Fprintf(&b, "- Witness trace: `%s`\n", o.Result.WitnessTrace)
		}
		if o.Result.WitnessPair != nil {
			fmt.Fprintf(&b, "- Witness states: `%s`\n", o.Result.WitnessPair)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func verdict(o CheckOutcome) string {
	switch {
	case o.Result.Inconclusive:
		return "INCONCLUSIVE"
	case o.Result.Equivalent && o.Result.Truncated:
		return "EQUIVALENT (up to depth bound)"
	case o.Result.Equivalent:
		return "EQUIVALENT"
	default:
		return "NOT EQUIVALENT"
	}
}

// RenderMarkdown pretty-prints the report for terminals. Plain markdown is
// returned unchanged when the terminal has no color support or rendering
// fails.
func RenderMarkdown(markdown string) string {
	if termenv.ColorProfile() == termenv.Ascii {
		return markdown
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
