package types

import (
	"encoding/json"
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// ELEMENT KIND
/////////////////////////////////////////////////////////////////////////////

type Kind int

const (
	KindLong Kind = iota
	KindWord
	KindLine
)

// String returns the name used on the command line.
func (k Kind) String() string {
	switch k {
	case KindLong:
		return "long"
	case KindWord:
		return "word"
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Noun is the plural used in report headers ("Total numbers: 3.").
func (k Kind) Noun() string {
	switch k {
	case KindWord:
		return "words"
	case KindLine:
		return "lines"
	default:
		return "numbers"
	}
}

// Singular is the noun used in the statistics line ("The greatest number").
func (k Kind) Singular() string {
	switch k {
	case KindWord:
		return "word"
	case KindLine:
		return "line"
	default:
		return "number"
	}
}

// Extreme names the statistics criterion for the kind.
func (k Kind) Extreme() string {
	if k == KindLong {
		return "greatest"
	}
	return "longest"
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

/////////////////////////////////////////////////////////////////////////////
// SORTING TYPE
/////////////////////////////////////////////////////////////////////////////

type SortingType int

const (
	SortNatural SortingType = iota
	SortByCount
)

func (s SortingType) String() string {
	switch s {
	case SortNatural:
		return "natural"
	case SortByCount:
		return "byCount"
	default:
		return fmt.Sprintf("SortingType(%d)", s)
	}
}

func (s SortingType) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

/////////////////////////////////////////////////////////////////////////////
// REPORTS
/////////////////////////////////////////////////////////////////////////////

// StatsReport is the result of the statistics mode. Empty is the only marker
// of a dataset without elements; a zero Percentage or an empty Extreme are
// valid values otherwise.
type StatsReport struct {
	Kind        Kind   `json:"kind"`
	Total       int    `json:"total"`
	Empty       bool   `json:"empty,omitempty"`
	Extreme     string `json:"extreme"`
	Occurrences int    `json:"occurrences"`
	Percentage  int    `json:"percentage"`
}

// FrequencyEntry is one distinct value of a dataset with its count.
type FrequencyEntry struct {
	Value      string `json:"value"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// SortedReport is the result of the sorted-output mode. Elements is filled
// for SortNatural, Frequencies for SortByCount.
type SortedReport struct {
	Kind        Kind             `json:"kind"`
	Mode        SortingType      `json:"sortingType"`
	Total       int              `json:"total"`
	Elements    []string         `json:"elements,omitempty"`
	Frequencies []FrequencyEntry `json:"frequencies,omitempty"`
}

// Percent returns floor(part * 100 / total), or 0 when total is 0.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}
