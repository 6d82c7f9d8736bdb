package analyzer

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/badele/sortingtool/internal/types"
)

// WordAnalyzer collects maximal runs of non-whitespace characters.
type WordAnalyzer struct {
	collection[string]
}

func NewWordAnalyzer() *WordAnalyzer {
	a := &WordAnalyzer{}
	a.collection = collection[string]{
		kind: types.KindWord,
		parseLine: func(line string, add func(string)) {
			for _, word := range strings.Fields(line) {
				add(word)
			}
		},
		format:  identity,
		greater: longer,
	}
	return a
}

// Length is the number of user-perceived characters in s.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

func longer(a, b string) bool {
	return Length(a) > Length(b)
}

func identity(s string) string {
	return s
}
