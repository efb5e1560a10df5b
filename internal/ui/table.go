package ui

import (
	"fmt"
	"strings"

	"github.com/tillworks/receiptd/internal/discovery"
)

// RenderCandidates formats a ranked candidate list for terminal output.
// Candidates arrive sorted by confidence; the renderer preserves that order
// and shows the evidence notes when verbose is set.
func RenderCandidates(cands []discovery.Candidate, verbose bool) string {
	if len(cands) == 0 {
		return NoteStyle.Render("no printers found") + "\n"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Discovered printers"))
	b.WriteString("\n\n")

	for i, c := range cands {
		name := c.DisplayName
		if name == "" {
			name = "unknown device"
		}

		b.WriteString(fmt.Sprintf("%2d. %s  %s  %s\n",
			i+1,
			ConfidenceStyle(c.Confidence).Render(fmt.Sprintf("[%3d]", c.Confidence)),
			LocatorStyle.Render(c.Transport.String()),
			name,
		))

		if c.Serial != "" || c.VendorID != "" {
			b.WriteString("      ")
			if c.VendorID != "" {
				b.WriteString(NoteStyle.Render(fmt.Sprintf("id %s:%s  ", c.VendorID, c.ProductID)))
			}
			if c.Serial != "" {
				b.WriteString(NoteStyle.Render("serial " + c.Serial))
			}
			b.WriteString("\n")
		}

		if verbose {
			for _, note := range c.Notes {
				b.WriteString("      " + NoteStyle.Render("- "+note) + "\n")
			}
		}
	}

	return b.String()
}
