package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/sortingtool/internal/types"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}

func writeText(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}

// WriteStats writes a statistics report as text or JSON.
func WriteStats(w io.Writer, r types.StatsReport, format string) error {
	if format == FormatJSON {
		return writeJSON(w, r)
	}
	return writeText(w, StatsText(r))
}

// WriteSorted writes a sorted report as text or JSON.
func WriteSorted(w io.Writer, r types.SortedReport, format string) error {
	if format == FormatJSON {
		return writeJSON(w, r)
	}
	return writeText(w, SortedText(r))
}
