package adstxt

// LineKind is the category of a single line of ads.txt input.
type LineKind int

const (
	LineInvalid LineKind = iota
	LineEmpty
	LineComment
	LineVariable
	LineEntry
)

// LineKinds lists every LineKind.
var LineKinds = []LineKind{LineEmpty, LineComment, LineVariable, LineEntry, LineInvalid}

func (k LineKind) String() string {
	switch k {
	case LineEmpty:
		return "empty"
	case LineComment:
		return "comment"
	case LineVariable:
		return "variable"
	case LineEntry:
		return "entry"
	default:
		return "invalid"
	}
}

// Classify returns the category of line using the default validators.
func Classify(line string) LineKind {
	return Validators{}.Classify(line)
}

// Classify returns the category of line. Categories are checked in order: empty, comment,
// variable, entry. A line matching none of them is LineInvalid.
func (v Validators) Classify(line string) LineKind {
	switch {
	case IsEmptyLine(line):
		return LineEmpty
	case IsComment(line):
		return LineComment
	case IsVariableAssignment(line):
		return LineVariable
	case v.IsDataEntry(line):
		return LineEntry
	default:
		return LineInvalid
	}
}

// IsDataEntry reports whether line holds at least three fields, the first being a domain name and
// the third an account type. A line that cannot be split that way is not an entry.
func (v Validators) IsDataEntry(line string) bool {
	fields := splitFields(line)
	if len(fields) < 3 {
		return false
	}
	return v.isDomainName(fields[0]) && v.isAccountType(fields[2])
}
