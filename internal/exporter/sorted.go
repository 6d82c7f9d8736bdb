package exporter

import (
	"fmt"
	"strings"

	"github.com/badele/sortingtool/internal/types"
)

// SortedText formats a sorted report: the total, then either the sorted
// elements or one "value: n time(s), p%" row per distinct value.
func SortedText(r types.SortedReport) string {
	var sb strings.Builder
	sb.WriteString(header(r.Kind, r.Total))

	if r.Mode == types.SortByCount {
		for _, e := range r.Frequencies {
			fmt.Fprintf(&sb, "%s: %d time(s), %d%%\n", e.Value, e.Count, e.Percentage)
		}
		return sb.String()
	}

	sb.WriteString("Sorted data:")
	if r.Kind == types.KindLine {
		sb.WriteString("\n")
		for _, line := range r.Elements {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		return sb.String()
	}

	for _, e := range r.Elements {
		sb.WriteString(" ")
		sb.WriteString(e)
	}
	sb.WriteString("\n")
	return sb.String()
}
