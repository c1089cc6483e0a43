package adstxt

import (
	"regexp"
	"strings"
	"unicode"
)

// variableDefinition matches a KEY=VALUE line. KEY starts at the first column.
var variableDefinition = regexp.MustCompile(`^([a-zA-Z]+)=(.+)$`)

var variableKey = regexp.MustCompile(`^[a-zA-Z]+$`)

// IsEmptyLine reports whether line holds only whitespace.
func IsEmptyLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsComment reports whether the first non-whitespace character of line is '#'.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "#")
}

// IsVariableAssignment reports whether line is a KEY=VALUE directive.
func IsVariableAssignment(line string) bool {
	return variableDefinition.MatchString(line)
}

// StripComment splits line at the first '#'. main is everything before it, untouched. comment is
// everything after it, including any further '#', with surrounding whitespace removed.
func StripComment(line string) (main string, comment string) {
	main, comment, found := strings.Cut(line, "#")
	if !found {
		return line, ""
	}
	return main, strings.TrimSpace(comment)
}

func splitVariable(line string) (key string, value string, ok bool) {
	match := variableDefinition.FindStringSubmatch(line)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}

// splitFields returns the trimmed comma separated fields of an entry line, without its comment.
func splitFields(line string) []string {
	main, _ := StripComment(line)
	fields := strings.Split(main, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
