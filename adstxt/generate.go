package adstxt

import (
	"fmt"
	"strings"

	"github.com/prebid/adstxt/errortypes"
)

// Generator serializes a Manifest into canonical ads.txt text.
type Generator struct {
	Validators Validators
}

// GenerateAdsTxt generates an ads.txt file with the default validators.
func GenerateAdsTxt(manifest Manifest, header, footer string) (string, error) {
	return Generator{}.Generate(manifest, header, footer)
}

// GenerateLineForEntry formats a single entry with the default validators.
func GenerateLineForEntry(entry Entry) (string, error) {
	return Generator{}.LineForEntry(entry)
}

// Generate writes every entry, then every variable, one per line. A non-empty header or footer
// is emitted as '# ' prefixed comment lines before or after the content. The result has no
// trailing newline.
//
// Any invalid entry or variable fails the whole call with a *errortypes.ValidationError.
func (g Generator) Generate(manifest Manifest, header, footer string) (string, error) {
	lines := make([]string, 0, len(manifest.Entries)+manifest.Variables.Len())
	lines = append(lines, commentBlock(header)...)

	for _, entry := range manifest.Entries {
		line, err := g.LineForEntry(entry)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}

	for _, key := range manifest.Variables.Keys() {
		value, _ := manifest.Variables.Get(key)
		variableLines, err := linesForVariable(key, value)
		if err != nil {
			return "", err
		}
		lines = append(lines, variableLines...)
	}

	lines = append(lines, commentBlock(footer)...)
	return strings.Join(lines, "\n"), nil
}

// LineForEntry formats entry as "domain, accountId, TYPE[, certAuthId][ # comment]". A line
// break in any field is a *errortypes.ValidationError, since the output must stay one line.
func (g Generator) LineForEntry(entry Entry) (string, error) {
	if !g.Validators.isDomainName(entry.AdvertisingSystemDomainName) {
		return "", &errortypes.ValidationError{
			Message: fmt.Sprintf("Failed generating ads.txt line: Invalid domain: %s", entry.AdvertisingSystemDomainName),
		}
	}
	if entry.PublisherAccountID == "" {
		return "", &errortypes.ValidationError{
			Message: "Failed generating ads.txt line: Invalid or missing publisher account ID",
		}
	}
	if !g.Validators.isAccountType(string(entry.AccountType)) {
		return "", &errortypes.ValidationError{
			Message: fmt.Sprintf("Failed generating ads.txt line: Invalid account type: %s", entry.AccountType),
		}
	}
	accountType, err := ParseAccountType(string(entry.AccountType))
	if err != nil {
		return "", &errortypes.ValidationError{
			Message: fmt.Sprintf("Failed generating ads.txt line: Invalid account type: %s", entry.AccountType),
		}
	}
	for _, field := range []struct{ name, value string }{
		{"publisher account ID", entry.PublisherAccountID},
		{"certification authority ID", entry.CertificationAuthorityID},
		{"comment", entry.Comment},
	} {
		if strings.ContainsAny(field.value, "\r\n") {
			return "", &errortypes.ValidationError{
				Message: fmt.Sprintf("Failed generating ads.txt line: Line break in %s: %q", field.name, field.value),
			}
		}
	}

	var b strings.Builder
	b.WriteString(entry.AdvertisingSystemDomainName)
	b.WriteString(", ")
	b.WriteString(entry.PublisherAccountID)
	b.WriteString(", ")
	b.WriteString(string(accountType))
	if entry.CertificationAuthorityID != "" {
		b.WriteString(", ")
		b.WriteString(entry.CertificationAuthorityID)
	}
	if entry.Comment != "" {
		b.WriteString(" # ")
		b.WriteString(entry.Comment)
	}
	return b.String(), nil
}

// GenerateLineForVariable formats a variable as one "key=value" line per value, joined by
// newlines. An empty list produces an empty string.
//
// Besides a value that is neither single nor multi, a key that is not all letters and a value
// that is empty or holds a line break are *errortypes.ValidationError: such lines would not
// parse back as the same variable.
func GenerateLineForVariable(key string, value Value) (string, error) {
	lines, err := linesForVariable(key, value)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func linesForVariable(key string, value Value) ([]string, error) {
	if !variableKey.MatchString(key) {
		return nil, &errortypes.ValidationError{
			Message: fmt.Sprintf("Failed generating ads.txt variable line: Invalid variable name: %q", key),
		}
	}

	var values []string
	switch value.Kind {
	case SingleValue:
		if len(value.Values) != 1 {
			return nil, invalidVariableValue(key, value)
		}
		values = value.Values
	case MultiValue:
		values = value.Values
	default:
		return nil, invalidVariableValue(key, value)
	}

	lines := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || strings.ContainsAny(v, "\r\n") {
			return nil, &errortypes.ValidationError{
				Message: fmt.Sprintf("Failed generating ads.txt variable line: Invalid value for %s: %q", key, v),
			}
		}
		lines = append(lines, key+"="+v)
	}
	return lines, nil
}

func invalidVariableValue(key string, value Value) error {
	return &errortypes.ValidationError{
		Message: fmt.Sprintf("Failed generating ads.txt variable line: Invalid variable value for %s: %s value with %d element(s)", key, value.Kind, len(value.Values)),
	}
}

func commentBlock(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "# " + line
	}
	return lines
}
