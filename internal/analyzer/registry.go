package analyzer

import (
	"io"
	"log/slog"

	"github.com/badele/sortingtool/internal/types"
)

// ParseKind maps a -dataType value to a Kind. Unknown or empty names fall
// back to KindLong.
func ParseKind(name string) types.Kind {
	switch name {
	case "long":
		return types.KindLong
	case "word":
		return types.KindWord
	case "line":
		return types.KindLine
	default:
		if name != "" {
			slog.Debug("Unknown data type, falling back to long.", "dataType", name)
		}
		return types.KindLong
	}
}

// ParseSortingType maps a -sortingType value to a SortingType. Unknown or
// empty names fall back to SortNatural.
func ParseSortingType(name string) types.SortingType {
	switch name {
	case "byCount":
		return types.SortByCount
	case "natural":
		return types.SortNatural
	default:
		if name != "" {
			slog.Debug("Unknown sorting type, falling back to natural.", "sortingType", name)
		}
		return types.SortNatural
	}
}

// New returns the analyzer for kind. Only the long analyzer emits warnings.
func New(kind types.Kind, warnings io.Writer) types.Analyzer {
	switch kind {
	case types.KindWord:
		return NewWordAnalyzer()
	case types.KindLine:
		return NewLineAnalyzer()
	default:
		return NewLongAnalyzer(warnings)
	}
}
