package errortypes

import "strconv"

// ConfigurationError should be used when an option or configuration value is not recognized.
//
// These errors are never recovered from. The caller must fix the configuration and try again.
type ConfigurationError struct {
	Message string
}

func (err *ConfigurationError) Error() string {
	return err.Message
}

func (err *ConfigurationError) Code() int {
	return ConfigurationErrorCode
}

func (err *ConfigurationError) Severity() Severity {
	return SeverityFatal
}

// ParseError is returned when a line of ads.txt input could not be classified and the caller
// asked for invalid lines to be fatal.
//
// Line is 1-based. Text holds the raw line, without its line terminator.
type ParseError struct {
	Message string
	Line    int
	Text    string
}

func (err *ParseError) Error() string {
	if err.Line > 0 {
		return err.Message + " (line " + strconv.Itoa(err.Line) + "): " + strconv.Quote(err.Text)
	}
	return err.Message + ": " + strconv.Quote(err.Text)
}

func (err *ParseError) Code() int {
	return ParseErrorCode
}

func (err *ParseError) Severity() Severity {
	return SeverityFatal
}

func (err *ParseError) LineNumber() int {
	return err.Line
}

// ValidationError should be used when structured data fails its contract while being serialized,
// e.g. an entry with an invalid domain or a variable value of the wrong shape.
//
// A single ValidationError aborts the whole operation: no partial output is produced.
type ValidationError struct {
	Message string
}

func (err *ValidationError) Error() string {
	return err.Message
}

func (err *ValidationError) Code() int {
	return ValidationErrorCode
}

func (err *ValidationError) Severity() Severity {
	return SeverityFatal
}

// Warning is a non-fatal problem with the input. Line is the 1-based input line it concerns, or
// zero when it concerns no single line.
type Warning struct {
	Message     string
	WarningCode int
	Line        int
}

func (err *Warning) Error() string {
	if err.Line > 0 {
		return "line " + strconv.Itoa(err.Line) + ": " + err.Message
	}
	return err.Message
}

func (err *Warning) Code() int {
	return err.WarningCode
}

func (err *Warning) Severity() Severity {
	return SeverityWarning
}

func (err *Warning) LineNumber() int {
	return err.Line
}
