package sortingtool

import (
	"bytes"
	"strings"
	"testing"
)

func TestWordsByCount(t *testing.T) {
	a := New(ParseKind("word"), nil)
	if err := a.Collect(strings.NewReader("b a b\nc a b\n")); err != nil {
		t.Fatalf("unexpected collect error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteSorted(&buf, a.Render(ParseSortingType("byCount")), FormatText); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	want := "Total words: 6.\nc: 1 time(s), 16%\na: 2 time(s), 33%\nb: 3 time(s), 50%\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestConvertReaderCP437(t *testing.T) {
	r, err := ConvertReader(strings.NewReader("\x82t\x82 ou hiver"), "cp437")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := New(KindLine, nil)
	if err := a.Collect(r); err != nil {
		t.Fatalf("unexpected collect error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteStats(&buf, a.Describe(), FormatText); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	want := "Total lines: 1.\nThe longest line:\nété ou hiver\n(1 time(s), 100%).\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestCollectAfterReportIsRejected(t *testing.T) {
	a := New(KindLong, nil)
	_ = a.Describe()

	if err := a.Collect(strings.NewReader("1")); err != ErrFrozen {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
}
