// Package sortingtool provides a public API for collecting numbers, words or
// lines from a text stream and reporting on them.
//
// This package provides functions to:
//   - Convert input from legacy encodings (CP437, CP850, ISO-8859-1) to UTF-8
//   - Collect elements of one kind with an Analyzer
//   - Compute statistics or sorted renderings
//   - Write the reports as text or JSON
//
// Example usage:
//
//	import "github.com/badele/sortingtool/pkg/sortingtool"
//
//	a := sortingtool.New(sortingtool.ParseKind("word"), os.Stderr)
//	r, _ := sortingtool.ConvertReader(os.Stdin, "utf8")
//	_ = a.Collect(r)
//	_ = sortingtool.WriteSorted(os.Stdout, a.Render(sortingtool.SortByCount), "text")
package sortingtool

import (
	"io"

	"github.com/badele/sortingtool/internal/analyzer"
	"github.com/badele/sortingtool/internal/exporter"
	"github.com/badele/sortingtool/internal/input"
	"github.com/badele/sortingtool/internal/types"
)

// Type aliases for public API
type (
	// Analyzer collects one kind of element and reports on it
	Analyzer = types.Analyzer

	// Kind is the element kind (long, word, line)
	Kind = types.Kind

	// SortingType selects natural or by-count rendering
	SortingType = types.SortingType

	// StatsReport is the result of Analyzer.Describe
	StatsReport = types.StatsReport

	// SortedReport is the result of Analyzer.Render
	SortedReport = types.SortedReport

	// FrequencyEntry is one row of a by-count rendering
	FrequencyEntry = types.FrequencyEntry
)

// Kind constants
const (
	KindLong = types.KindLong
	KindWord = types.KindWord
	KindLine = types.KindLine
)

// Sorting type constants
const (
	SortNatural = types.SortNatural
	SortByCount = types.SortByCount
)

// Report formats
const (
	FormatText = exporter.FormatText
	FormatJSON = exporter.FormatJSON
)

// ErrFrozen is returned by Collect after a report has been produced.
var ErrFrozen = analyzer.ErrFrozen

// ParseKind maps "long", "word" or "line" to a Kind. Anything else is KindLong.
func ParseKind(name string) Kind {
	return analyzer.ParseKind(name)
}

// ParseSortingType maps "natural" or "byCount" to a SortingType. Anything
// else is SortNatural.
func ParseSortingType(name string) SortingType {
	return analyzer.ParseSortingType(name)
}

// New creates the analyzer for kind. warnings receives one line per skipped
// token (long kind only); nil discards them.
func New(kind Kind, warnings io.Writer) Analyzer {
	return analyzer.New(kind, warnings)
}

// ConvertReader wraps r so that it yields UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertReader(r io.Reader, sourceEncoding string) (io.Reader, error) {
	return input.Decode(r, sourceEncoding)
}

// WriteStats writes a statistics report in the given format ("text" or "json").
func WriteStats(w io.Writer, r StatsReport, format string) error {
	return exporter.WriteStats(w, r, format)
}

// WriteSorted writes a sorted report in the given format ("text" or "json").
func WriteSorted(w io.Writer, r SortedReport, format string) error {
	return exporter.WriteSorted(w, r, format)
}
