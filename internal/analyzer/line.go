package analyzer

import "github.com/badele/sortingtool/internal/types"

// LineAnalyzer collects whole input lines, internal whitespace included.
type LineAnalyzer struct {
	collection[string]
}

func NewLineAnalyzer() *LineAnalyzer {
	a := &LineAnalyzer{}
	a.collection = collection[string]{
		kind: types.KindLine,
		parseLine: func(line string, add func(string)) {
			add(line)
		},
		format:  identity,
		greater: longer,
	}
	return a
}
