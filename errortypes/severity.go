package errortypes

// Severity tells whether a problem stops the operation that found it.
type Severity int

const (
	SeverityUnknown Severity = iota

	// SeverityFatal problems abort the operation: a parse in throw mode, a generation, a lint
	// whose findings would fail a parse.
	SeverityFatal

	// SeverityWarning problems leave the operation's result usable, e.g. an ads.txt line that
	// a filtering parse drops.
	SeverityWarning
)

// SeverityOf returns the severity err declares. Errors that declare none are fatal.
func SeverityOf(err error) Severity {
	if c, ok := err.(Coder); ok {
		return c.Severity()
	}
	return SeverityFatal
}

// IsWarning reports whether err is a *Warning or otherwise declares SeverityWarning.
func IsWarning(err error) bool {
	return SeverityOf(err) == SeverityWarning
}

// ContainsFatalError reports whether any of errs is fatal.
func ContainsFatalError(errs []error) bool {
	for _, err := range errs {
		if SeverityOf(err) == SeverityFatal {
			return true
		}
	}
	return false
}

// FatalOnly returns the fatal errors of errs, in order.
func FatalOnly(errs []error) []error {
	return withSeverity(errs, SeverityFatal)
}

// WarningOnly returns the warnings of errs, in order.
func WarningOnly(errs []error) []error {
	return withSeverity(errs, SeverityWarning)
}

func withSeverity(errs []error, severity Severity) []error {
	matched := make([]error, 0, len(errs))
	for _, err := range errs {
		if SeverityOf(err) == severity {
			matched = append(matched, err)
		}
	}
	return matched
}
