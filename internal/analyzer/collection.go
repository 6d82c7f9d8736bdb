// Package analyzer holds the three dataset variants (long, word, line). They
// share the collect/describe/render logic in collection and differ only in
// how a line is split into elements and how the extreme element is chosen.
package analyzer

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/badele/sortingtool/internal/types"
)

// ErrFrozen is returned by Collect once a report has been produced.
var ErrFrozen = errors.New("dataset is frozen: output already started")

type collection[T cmp.Ordered] struct {
	kind   types.Kind
	data   []T
	frozen bool

	// parseLine appends the elements found in one input line.
	parseLine func(line string, add func(T))
	format    func(T) string
	// greater reports whether a beats b as the extreme element.
	greater func(a, b T) bool
}

func (c *collection[T]) Kind() types.Kind {
	return c.kind
}

func (c *collection[T]) add(v T) {
	c.data = append(c.data, v)
}

// Collect reads r line by line until EOF. Lines have no length limit; the
// terminator and a trailing carriage return are dropped.
func (c *collection[T]) Collect(r io.Reader) error {
	if c.frozen {
		return ErrFrozen
	}

	reader := bufio.NewReader(r)
	before := len(c.data)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			c.parseLine(line, c.add)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
	}

	slog.Debug("Input collected.", "kind", c.kind.String(), "added", len(c.data)-before, "total", len(c.data))
	return nil
}

// Elements returns the dataset in input order.
func (c *collection[T]) Elements() []string {
	out := make([]string, len(c.data))
	for i, v := range c.data {
		out[i] = c.format(v)
	}
	return out
}

// Describe computes the statistics report. The first element in input order
// wins ties on the extreme criterion.
func (c *collection[T]) Describe() types.StatsReport {
	c.frozen = true

	report := types.StatsReport{Kind: c.kind, Total: len(c.data)}
	if len(c.data) == 0 {
		report.Empty = true
		return report
	}

	extreme := c.data[0]
	for _, v := range c.data[1:] {
		if c.greater(v, extreme) {
			extreme = v
		}
	}

	occurrences := 0
	for _, v := range c.data {
		if v == extreme {
			occurrences++
		}
	}

	report.Extreme = c.format(extreme)
	report.Occurrences = occurrences
	report.Percentage = types.Percent(occurrences, report.Total)
	return report
}

// Render sorts the dataset for display.
func (c *collection[T]) Render(mode types.SortingType) types.SortedReport {
	c.frozen = true

	report := types.SortedReport{Kind: c.kind, Mode: mode, Total: len(c.data)}

	if mode == types.SortByCount {
		report.Frequencies = c.frequencies()
		return report
	}

	sorted := slices.Clone(c.data)
	slices.Sort(sorted)
	report.Elements = make([]string, len(sorted))
	for i, v := range sorted {
		report.Elements[i] = c.format(v)
	}
	return report
}

// frequencies returns one entry per distinct value, ascending by
// (count, value).
func (c *collection[T]) frequencies() []types.FrequencyEntry {
	counts := make(map[T]int)
	for _, v := range c.data {
		counts[v]++
	}

	values := slices.Collect(maps.Keys(counts))
	slices.SortFunc(values, func(a, b T) int {
		return cmp.Or(cmp.Compare(counts[a], counts[b]), cmp.Compare(a, b))
	})

	entries := make([]types.FrequencyEntry, len(values))
	for i, v := range values {
		entries[i] = types.FrequencyEntry{
			Value:      c.format(v),
			Count:      counts[v],
			Percentage: types.Percent(counts[v], len(c.data)),
		}
	}
	return entries
}
