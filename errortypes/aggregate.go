package errortypes

import (
	"bytes"
	"sort"
	"strconv"
)

// AggregateErrors represents one or more errors, typically one per offending input line.
type AggregateErrors struct {
	Message string
	Errors  []error
}

// NewAggregateErrors builds a AggregateErrors struct.
func NewAggregateErrors(msg string, errs []error) AggregateErrors {
	return AggregateErrors{
		Message: msg,
		Errors:  errs,
	}
}

// Error lists errors that concern an input line first, ordered by line number, followed by
// the remaining errors numbered in their original order.
func (e AggregateErrors) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}

	var lined, other []error
	lines := make(map[int]struct{})
	for _, err := range e.Errors {
		if line := LineNumber(err); line > 0 {
			lined = append(lined, err)
			lines[line] = struct{}{}
		} else {
			other = append(other, err)
		}
	}
	sort.SliceStable(lined, func(i, j int) bool {
		return LineNumber(lined[i]) < LineNumber(lined[j])
	})

	b := bytes.Buffer{}
	b.WriteString(e.Message)
	b.WriteString(" (")
	writeCount(&b, len(e.Errors), "error")
	if len(lines) > 0 {
		b.WriteString(" on ")
		writeCount(&b, len(lines), "line")
	}
	b.WriteString("):\n")

	for _, err := range lined {
		b.WriteString("  ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	for i, err := range other {
		b.WriteString("  ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}

	return b.String()
}

func writeCount(b *bytes.Buffer, n int, noun string) {
	b.WriteString(strconv.Itoa(n))
	b.WriteString(" ")
	b.WriteString(noun)
	if n != 1 {
		b.WriteString("s")
	}
}
