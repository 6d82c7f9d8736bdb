package exporter

import (
	"fmt"
	"strings"

	"github.com/badele/sortingtool/internal/types"
)

func header(kind types.Kind, total int) string {
	return fmt.Sprintf("Total %s: %d.\n", kind.Noun(), total)
}

// StatsText formats a statistics report. Lines are printed on their own row
// since they may contain spaces.
func StatsText(r types.StatsReport) string {
	var sb strings.Builder
	sb.WriteString(header(r.Kind, r.Total))

	if r.Empty || r.Total == 0 {
		sb.WriteString("No data.\n")
		return sb.String()
	}

	counts := fmt.Sprintf("%d time(s), %d%%", r.Occurrences, r.Percentage)
	if r.Kind == types.KindLine {
		fmt.Fprintf(&sb, "The %s %s:\n%s\n(%s).\n", r.Kind.Extreme(), r.Kind.Singular(), r.Extreme, counts)
	} else {
		fmt.Fprintf(&sb, "The %s %s: %s (%s).\n", r.Kind.Extreme(), r.Kind.Singular(), r.Extreme, counts)
	}

	return sb.String()
}
