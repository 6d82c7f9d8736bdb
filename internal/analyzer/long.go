package analyzer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/badele/sortingtool/internal/types"
)

// LongAnalyzer collects whitespace separated base-10 signed integers.
type LongAnalyzer struct {
	collection[int64]
	warnings io.Writer
}

// NewLongAnalyzer creates a LongAnalyzer. Tokens that are not integers are
// reported on warnings and skipped; a nil writer discards the warnings.
func NewLongAnalyzer(warnings io.Writer) *LongAnalyzer {
	if warnings == nil {
		warnings = io.Discard
	}

	a := &LongAnalyzer{warnings: warnings}
	a.collection = collection[int64]{
		kind:      types.KindLong,
		parseLine: a.parseFields,
		format: func(v int64) string {
			return strconv.FormatInt(v, 10)
		},
		greater: func(x, y int64) bool {
			return x > y
		},
	}
	return a
}

func (a *LongAnalyzer) parseFields(line string, add func(int64)) {
	for _, field := range strings.Fields(line) {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			fmt.Fprintf(a.warnings, "\"%s\" is not a long. It will be skipped.\n", field)
			continue
		}
		add(n)
	}
}
