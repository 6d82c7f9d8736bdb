package types

import "io"

// Analyzer collects one kind of element and reports on it.
type Analyzer interface {
	Kind() Kind
	Collect(r io.Reader) error
	Elements() []string
	Describe() StatsReport
	Render(mode SortingType) SortedReport
}
