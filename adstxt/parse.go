package adstxt

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/prebid/adstxt/errortypes"
)

// InvalidLineAction decides what the parser does with a line it cannot classify.
type InvalidLineAction string

const (
	// InvalidLineActionFilter silently drops invalid lines.
	InvalidLineActionFilter InvalidLineAction = "filter"
	// InvalidLineActionThrow aborts the parse with a *errortypes.ParseError.
	InvalidLineActionThrow InvalidLineAction = "throw"
)

// ParseOptions configures a parse. The zero value filters invalid lines.
type ParseOptions struct {
	InvalidLineAction InvalidLineAction `mapstructure:"invalid_line_action"`
}

func (o ParseOptions) invalidLineAction() (InvalidLineAction, error) {
	switch o.InvalidLineAction {
	case "", InvalidLineActionFilter:
		return InvalidLineActionFilter, nil
	case InvalidLineActionThrow:
		return InvalidLineActionThrow, nil
	default:
		return "", &errortypes.ConfigurationError{
			Message: fmt.Sprintf("Invalid option value for 'invalidLineAction' (must be 'filter' or 'throw'): %s", o.InvalidLineAction),
		}
	}
}

// Parser turns ads.txt text into a Manifest.
type Parser struct {
	Validators Validators
}

// ParseAdsTxt parses text with the default validators.
func ParseAdsTxt(text string, options ParseOptions) (Manifest, error) {
	return Parser{}.Parse(text, options)
}

// Parse reads text line by line. Empty lines and comments are skipped, variables are collected
// in first-seen order and entries are kept in file order.
//
// A line that is neither is dropped or, with InvalidLineActionThrow, fails the whole parse with
// a *errortypes.ParseError. An unrecognized InvalidLineAction fails with a
// *errortypes.ConfigurationError before any line is read.
func (p Parser) Parse(text string, options ParseOptions) (Manifest, error) {
	action, err := options.invalidLineAction()
	if err != nil {
		return Manifest{}, err
	}

	var manifest Manifest
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if p.parseLine(line, &manifest) {
			continue
		}
		if action == InvalidLineActionThrow {
			return Manifest{}, &errortypes.ParseError{
				Message: "Failed parsing ads.txt: Invalid line",
				Line:    i + 1,
				Text:    line,
			}
		}
	}
	return manifest, nil
}

// parseLine applies line to manifest and reports whether the line was valid.
func (p Parser) parseLine(line string, manifest *Manifest) bool {
	switch p.Validators.Classify(line) {
	case LineEmpty, LineComment:
		return true
	case LineVariable:
		key, value, ok := parseVariable(line)
		if ok {
			manifest.Variables.Add(key, value)
		}
		return ok
	case LineEntry:
		entry, ok := parseEntry(line)
		if ok {
			manifest.Entries = append(manifest.Entries, entry)
		}
		return ok
	default:
		return false
	}
}

func parseVariable(line string) (string, string, bool) {
	key, raw, ok := splitVariable(line)
	if !ok {
		return "", "", false
	}
	value, ok := decodeField(raw)
	if !ok {
		return "", "", false
	}
	return key, value, true
}

// decodeField percent-decodes s. Malformed escapes and escapes that decode to invalid UTF-8
// both fail.
func decodeField(s string) (string, bool) {
	value, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(value) {
		return "", false
	}
	return value, true
}

// parseEntry builds an Entry from a line already classified as LineEntry. Fields past the fourth
// are ignored.
func parseEntry(line string) (Entry, bool) {
	main, comment := StripComment(line)
	fields := strings.Split(main, ",")
	if len(fields) < 3 {
		return Entry{}, false
	}
	if len(fields) > 4 {
		fields = fields[:4]
	}

	decoded := make([]string, len(fields))
	for i, field := range fields {
		value, ok := decodeField(strings.TrimSpace(field))
		if !ok {
			return Entry{}, false
		}
		decoded[i] = value
	}

	accountType, err := ParseAccountType(decoded[2])
	if err != nil {
		return Entry{}, false
	}

	entry := Entry{
		AdvertisingSystemDomainName: strings.ToLower(decoded[0]),
		PublisherAccountID:          decoded[1],
		AccountType:                 accountType,
		Comment:                     comment,
	}
	if len(decoded) > 3 {
		entry.CertificationAuthorityID = decoded[3]
	}
	return entry, true
}
