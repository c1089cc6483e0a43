package adstxt

import (
	"fmt"
	"strings"

	"github.com/prebid/adstxt/errortypes"
)

// Report summarizes every line of an ads.txt file.
type Report struct {
	// Lines counts lines per category. Lines that classify as a variable or an entry but whose
	// fields cannot be decoded are counted as LineInvalid.
	Lines map[LineKind]int
	// Problems holds one error per invalid line, in file order. Under InvalidLineActionFilter
	// they are *errortypes.Warning values, under InvalidLineActionThrow *errortypes.ParseError.
	Problems []error
}

// Inspect classifies every line of text with the default validators.
func Inspect(text string, options ParseOptions) (Report, error) {
	return Parser{}.Inspect(text, options)
}

// Inspect classifies every line of text the same way Parse does, without stopping at the first
// invalid line.
func (p Parser) Inspect(text string, options ParseOptions) (Report, error) {
	action, err := options.invalidLineAction()
	if err != nil {
		return Report{}, err
	}

	report := Report{Lines: make(map[LineKind]int, len(LineKinds))}

	var scratch Manifest
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		kind := p.Validators.Classify(line)
		switch {
		case kind == LineInvalid:
			report.Problems = append(report.Problems, problem(action, i+1, line, "invalid line", errortypes.InvalidLineWarningCode))
		case !p.parseLine(line, &scratch):
			report.Problems = append(report.Problems, problem(action, i+1, line, "undecodable "+kind.String(), errortypes.UndecodableFieldWarningCode))
			kind = LineInvalid
		}
		report.Lines[kind]++
	}
	return report, nil
}

func problem(action InvalidLineAction, lineNumber int, line, reason string, warningCode int) error {
	if action == InvalidLineActionThrow {
		return &errortypes.ParseError{
			Message: "Failed parsing ads.txt: " + reason,
			Line:    lineNumber,
			Text:    line,
		}
	}
	return &errortypes.Warning{
		Message:     fmt.Sprintf("%s: %q", reason, line),
		WarningCode: warningCode,
		Line:        lineNumber,
	}
}

// Valid reports whether a parse with the inspected options would succeed.
func (r Report) Valid() bool {
	return !errortypes.ContainsFatalError(r.Problems)
}
