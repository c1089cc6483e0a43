package errortypes

// Defines numeric codes for well-known errors.
const (
	UnknownErrorCode       = 999
	ConfigurationErrorCode = iota
	ParseErrorCode
	ValidationErrorCode
)

// Defines numeric codes for well-known warnings.
const (
	UnknownWarningCode     = 10999
	InvalidLineWarningCode = iota + 10000
	UndecodableFieldWarningCode
)

// Coder provides an error or warning code with severity.
type Coder interface {
	Code() int
	Severity() Severity
}

// ReadCode returns the error or warning code, or UnknownErrorCode if unavailable.
func ReadCode(err error) int {
	if e, ok := err.(Coder); ok {
		return e.Code()
	}
	return UnknownErrorCode
}

// LineNumberer is implemented by errors that concern a single line of input.
type LineNumberer interface {
	LineNumber() int
}

// LineNumber returns the 1-based input line err concerns, or zero if unknown.
func LineNumber(err error) int {
	if e, ok := err.(LineNumberer); ok {
		return e.LineNumber()
	}
	return 0
}
